package services

import (
	"context"
	"fmt"

	"github.com/refind-app/api-go/apperrors"
	"github.com/refind-app/api-go/models"
)

type fakeItemStore struct {
	lost  []*models.LostItem
	found []*models.FoundItem

	setLostErr  error
	setFoundErr error
	poolErr     error
}

func (f *fakeItemStore) CreateLostItem(_ context.Context, item *models.LostItem) error {
	item.ID = uint(len(f.lost) + 1)
	f.lost = append(f.lost, item)
	return nil
}

func (f *fakeItemStore) CreateFoundItem(_ context.Context, item *models.FoundItem) error {
	item.ID = uint(len(f.found) + 1)
	f.found = append(f.found, item)
	return nil
}

func (f *fakeItemStore) LostItemByID(_ context.Context, id uint) (*models.LostItem, error) {
	for _, it := range f.lost {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("lost item %d: %w", id, apperrors.ErrNotFound)
}

func (f *fakeItemStore) FoundItemByID(_ context.Context, id uint) (*models.FoundItem, error) {
	for _, it := range f.found {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("found item %d: %w", id, apperrors.ErrNotFound)
}

func (f *fakeItemStore) ActiveLostItems(_ context.Context, community string) ([]models.LostItem, error) {
	if f.poolErr != nil {
		return nil, f.poolErr
	}
	var out []models.LostItem
	for _, it := range f.lost {
		if it.Status == models.ItemStatusActive && it.Community == community {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeItemStore) ActiveFoundItems(_ context.Context, community string) ([]models.FoundItem, error) {
	if f.poolErr != nil {
		return nil, f.poolErr
	}
	var out []models.FoundItem
	for _, it := range f.found {
		if it.Status == models.ItemStatusActive && it.Community == community {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeItemStore) SetLostItemStatus(ctx context.Context, id uint, status string) error {
	if f.setLostErr != nil {
		return f.setLostErr
	}
	it, err := f.LostItemByID(ctx, id)
	if err != nil {
		return err
	}
	it.Status = status
	return nil
}

func (f *fakeItemStore) SetFoundItemStatus(ctx context.Context, id uint, status string) error {
	if f.setFoundErr != nil {
		return f.setFoundErr
	}
	it, err := f.FoundItemByID(ctx, id)
	if err != nil {
		return err
	}
	it.Status = status
	return nil
}

type fakeMatchStore struct {
	items   *fakeItemStore
	matches []*models.Match

	createErr        error
	failFirstCreate  bool
	createCallsSoFar int
}

func (f *fakeMatchStore) Create(_ context.Context, match *models.Match) error {
	f.createCallsSoFar++
	if f.createErr != nil {
		return f.createErr
	}
	if f.failFirstCreate && f.createCallsSoFar == 1 {
		return fmt.Errorf("simulated write failure")
	}
	match.ID = uint(len(f.matches) + 1)
	f.matches = append(f.matches, match)
	return nil
}

func (f *fakeMatchStore) ByID(ctx context.Context, id uint) (*models.Match, error) {
	for _, m := range f.matches {
		if m.ID == id {
			if f.items != nil {
				if li, err := f.items.LostItemByID(ctx, m.LostItemID); err == nil {
					m.LostItem = *li
				}
				if fi, err := f.items.FoundItemByID(ctx, m.FoundItemID); err == nil {
					m.FoundItem = *fi
				}
			}
			return m, nil
		}
	}
	return nil, fmt.Errorf("match %d: %w", id, apperrors.ErrNotFound)
}

func (f *fakeMatchStore) Save(_ context.Context, match *models.Match) error {
	for i, m := range f.matches {
		if m.ID == match.ID {
			f.matches[i] = match
			return nil
		}
	}
	return fmt.Errorf("match %d: %w", match.ID, apperrors.ErrNotFound)
}

func (f *fakeMatchStore) ForUser(_ context.Context, userID uint) ([]models.Match, error) {
	var out []models.Match
	for _, m := range f.matches {
		out = append(out, *m)
	}
	_ = userID
	return out, nil
}

type fakeBlacklistStore struct {
	pairs       map[[2]uint]*models.RejectedPair
	insertCalls int
	lookupErr   error
}

func newFakeBlacklistStore() *fakeBlacklistStore {
	return &fakeBlacklistStore{pairs: map[[2]uint]*models.RejectedPair{}}
}

func (f *fakeBlacklistStore) Insert(_ context.Context, pair *models.RejectedPair) error {
	f.insertCalls++
	key := [2]uint{pair.LostItemID, pair.FoundItemID}
	if _, exists := f.pairs[key]; exists {
		return nil // duplicate insert is a silent success
	}
	f.pairs[key] = pair
	return nil
}

func (f *fakeBlacklistStore) IsRejected(_ context.Context, lostItemID, foundItemID uint) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	_, ok := f.pairs[[2]uint{lostItemID, foundItemID}]
	return ok, nil
}

type fakeStatsStore struct {
	rows          map[uint]*models.UserRejectionStats
	rejectionErr  error
	acceptanceErr error
}

func newFakeStatsStore() *fakeStatsStore {
	return &fakeStatsStore{rows: map[uint]*models.UserRejectionStats{}}
}

func (f *fakeStatsStore) row(userID uint) *models.UserRejectionStats {
	if row, ok := f.rows[userID]; ok {
		return row
	}
	row := &models.UserRejectionStats{UserID: userID}
	f.rows[userID] = row
	return row
}

func (f *fakeStatsStore) RecordRejection(_ context.Context, userID uint, highScore bool) (*models.UserRejectionStats, error) {
	if f.rejectionErr != nil {
		return nil, f.rejectionErr
	}
	row := f.row(userID)
	row.TotalRejections++
	if highScore {
		row.HighScoreRejections++
	}
	row.Reevaluate()
	copied := *row
	return &copied, nil
}

func (f *fakeStatsStore) RecordAcceptance(_ context.Context, userID uint) error {
	if f.acceptanceErr != nil {
		return f.acceptanceErr
	}
	row := f.row(userID)
	row.TotalAcceptances++
	row.Reevaluate()
	return nil
}
