package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/refind-app/api-go/matching"
	"github.com/refind-app/api-go/models"
)

// MatchService runs the matching pipeline when a new report arrives:
// assemble the opposite-type candidate pool, score it, persist the
// resulting matches and flip item statuses.
type MatchService struct {
	items     ItemStore
	matches   MatchStore
	blacklist BlacklistStore
	cfg       matching.Config
	log       *zap.SugaredLogger
}

func NewMatchService(items ItemStore, matches MatchStore, blacklist BlacklistStore,
	cfg matching.Config, log *zap.SugaredLogger) *MatchService {
	return &MatchService{
		items:     items,
		matches:   matches,
		blacklist: blacklist,
		cfg:       cfg,
		log:       log,
	}
}

// MatchNewLostItem searches the active found items in the lost item's
// community and returns the number of matches created. Failures are
// logged and reported as fewer (or zero) matches, never as an error:
// a storage hiccup must not block report submission.
func (s *MatchService) MatchNewLostItem(ctx context.Context, lost *models.LostItem) int {
	pool, err := s.items.ActiveFoundItems(ctx, lost.Community)
	if err != nil {
		s.log.Errorw("fetching found-item candidate pool failed", "lost_item_id", lost.ID, "error", err)
		return 0
	}

	candidates := make([]matching.Item, 0, len(pool))
	for i := range pool {
		cand := &pool[i]
		if cand.UserID == lost.UserID {
			continue // self-matching forbidden
		}
		if s.pairBlacklisted(ctx, lost.ID, cand.ID) {
			continue
		}
		candidates = append(candidates, cand.MatchingItem())
	}

	found, err := matching.FindMatches(ctx, lost.MatchingItem(), candidates, s.cfg)
	if err != nil {
		s.log.Errorw("scoring candidate pool failed", "lost_item_id", lost.ID, "error", err)
		return 0
	}

	created := 0
	for _, cand := range found {
		if !s.persistMatch(ctx, lost.ID, cand.Item.ID, cand.Breakdown) {
			continue
		}
		created++
		if err := s.items.SetFoundItemStatus(ctx, cand.Item.ID, models.ItemStatusMatched); err != nil {
			s.log.Warnw("updating found item status failed", "found_item_id", cand.Item.ID, "error", err)
		}
	}
	if created > 0 {
		if err := s.items.SetLostItemStatus(ctx, lost.ID, models.ItemStatusMatched); err != nil {
			s.log.Warnw("updating lost item status failed", "lost_item_id", lost.ID, "error", err)
		}
	}
	return created
}

// MatchNewFoundItem is the mirror search for a new found report. Match
// rows are always stored lost->found, so scoring results are identical
// no matter which side triggered the search.
func (s *MatchService) MatchNewFoundItem(ctx context.Context, found *models.FoundItem) int {
	pool, err := s.items.ActiveLostItems(ctx, found.Community)
	if err != nil {
		s.log.Errorw("fetching lost-item candidate pool failed", "found_item_id", found.ID, "error", err)
		return 0
	}

	candidates := make([]matching.Item, 0, len(pool))
	for i := range pool {
		cand := &pool[i]
		if cand.UserID == found.UserID {
			continue
		}
		if s.pairBlacklisted(ctx, cand.ID, found.ID) {
			continue
		}
		candidates = append(candidates, cand.MatchingItem())
	}

	lost, err := matching.FindMatches(ctx, found.MatchingItem(), candidates, s.cfg)
	if err != nil {
		s.log.Errorw("scoring candidate pool failed", "found_item_id", found.ID, "error", err)
		return 0
	}

	created := 0
	for _, cand := range lost {
		if !s.persistMatch(ctx, cand.Item.ID, found.ID, cand.Breakdown) {
			continue
		}
		created++
		if err := s.items.SetLostItemStatus(ctx, cand.Item.ID, models.ItemStatusMatched); err != nil {
			s.log.Warnw("updating lost item status failed", "lost_item_id", cand.Item.ID, "error", err)
		}
	}
	if created > 0 {
		if err := s.items.SetFoundItemStatus(ctx, found.ID, models.ItemStatusMatched); err != nil {
			s.log.Warnw("updating found item status failed", "found_item_id", found.ID, "error", err)
		}
	}
	return created
}

// pairBlacklisted errs on the side of exclusion: if the blacklist
// cannot be read, the pair is skipped rather than risking re-surfacing
// a rejected match.
func (s *MatchService) pairBlacklisted(ctx context.Context, lostID, foundID uint) bool {
	rejected, err := s.blacklist.IsRejected(ctx, lostID, foundID)
	if err != nil {
		s.log.Warnw("blacklist lookup failed, skipping pair", "lost_item_id", lostID, "found_item_id", foundID, "error", err)
		return true
	}
	return rejected
}

// persistMatch writes one match row. A failure is logged and skipped so
// the rest of the batch is still attempted.
func (s *MatchService) persistMatch(ctx context.Context, lostID, foundID uint, b matching.Breakdown) bool {
	match := &models.Match{
		LostItemID:  lostID,
		FoundItemID: foundID,
		Status:      models.MatchStatusPending,
	}
	match.SetBreakdown(b)
	if err := s.matches.Create(ctx, match); err != nil {
		s.log.Errorw("persisting match failed", "lost_item_id", lostID, "found_item_id", foundID, "error", err)
		return false
	}
	s.log.Infow("match created", "match_id", match.ID, "lost_item_id", lostID, "found_item_id", foundID, "score", b.TotalScore)
	return true
}
