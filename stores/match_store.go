package stores

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/refind-app/api-go/apperrors"
	"github.com/refind-app/api-go/models"
)

type MatchStore struct {
	DB *gorm.DB
}

func NewMatchStore(db *gorm.DB) *MatchStore {
	return &MatchStore{DB: db}
}

func (s *MatchStore) Create(ctx context.Context, match *models.Match) error {
	if err := s.DB.WithContext(ctx).Create(match).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("match for pair (%d,%d) already exists: %w",
				match.LostItemID, match.FoundItemID, apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

func (s *MatchStore) ByID(ctx context.Context, id uint) (*models.Match, error) {
	var match models.Match
	err := s.DB.WithContext(ctx).
		Preload("LostItem").
		Preload("FoundItem").
		First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &match, nil
}

func (s *MatchStore) Save(ctx context.Context, match *models.Match) error {
	return s.DB.WithContext(ctx).Omit("LostItem", "FoundItem").Save(match).Error
}

// ForUser lists matches where the user owns either side of the pair,
// newest first.
func (s *MatchStore) ForUser(ctx context.Context, userID uint) ([]models.Match, error) {
	lostIDs := s.DB.Model(&models.LostItem{}).Select("id").Where("user_id = ?", userID)
	foundIDs := s.DB.Model(&models.FoundItem{}).Select("id").Where("user_id = ?", userID)

	var matches []models.Match
	err := s.DB.WithContext(ctx).
		Preload("LostItem").
		Preload("FoundItem").
		Where("lost_item_id IN (?) OR found_item_id IN (?)", lostIDs, foundIDs).
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}
