package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/refind-app/api-go/apperrors"
	"github.com/refind-app/api-go/matching"
	"github.com/refind-app/api-go/models"
)

// RejectionFeedback is the optional structured reason a user gives when
// rejecting a match.
type RejectionFeedback struct {
	Reason  string
	Details string
}

// RejectResult reports the outcome of a rejection. Suspicious is a
// non-fatal signal; the rejection itself succeeded either way.
type RejectResult struct {
	AlreadyRejected bool
	Suspicious      bool

	// NextMatch would carry a replacement suggestion; re-matching after
	// a rejection is currently left to the next report submission, so
	// it is always nil.
	NextMatch *models.Match
}

// RejectionService owns the pending -> rejected transition, the pair
// blacklist and the per-user abuse counters. It also carries the
// acceptance and return-confirmation transitions so no other code path
// mutates match or item status.
type RejectionService struct {
	items     ItemStore
	matches   MatchStore
	blacklist BlacklistStore
	stats     StatsStore
	cfg       matching.Config
	log       *zap.SugaredLogger
}

func NewRejectionService(items ItemStore, matches MatchStore, blacklist BlacklistStore,
	stats StatsStore, cfg matching.Config, log *zap.SugaredLogger) *RejectionService {
	return &RejectionService{
		items:     items,
		matches:   matches,
		blacklist: blacklist,
		stats:     stats,
		cfg:       cfg,
		log:       log,
	}
}

// RejectMatch permanently rejects a match on behalf of userID. The
// rejection record is the authoritative signal: item status reverts and
// stats updates are best-effort and never roll it back. Re-rejecting an
// already-rejected match is an idempotent no-op, so client retries
// cannot double-increment stats or duplicate blacklist rows.
func (s *RejectionService) RejectMatch(ctx context.Context, matchID, userID uint, feedback *RejectionFeedback) (*RejectResult, error) {
	match, err := s.matches.ByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("loading match %d: %w", matchID, err)
	}

	switch match.Status {
	case models.MatchStatusRejected:
		return &RejectResult{AlreadyRejected: true}, nil
	case models.MatchStatusSuccess:
		return nil, fmt.Errorf("match %d already completed: %w", matchID, apperrors.ErrConflict)
	}

	if feedback != nil && feedback.Reason != "" && !models.IsValidRejectReason(feedback.Reason) {
		return nil, fmt.Errorf("unknown rejection reason %q: %w", feedback.Reason, apperrors.ErrValidation)
	}

	now := time.Now()
	match.Status = models.MatchStatusRejected
	match.RejectedByUserID = &userID
	match.RejectedAt = &now
	match.RejectionCount++
	if feedback != nil {
		match.RejectionReason = feedback.Reason
		match.RejectionDetails = feedback.Details
	}
	if err := s.matches.Save(ctx, match); err != nil {
		return nil, fmt.Errorf("rejecting match %d: %w", matchID, err)
	}

	// Revert both items so they re-enter future candidate pools. A
	// failed revert is logged, not fatal: the rejection record already
	// holds the authoritative state.
	if err := s.items.SetLostItemStatus(ctx, match.LostItemID, models.ItemStatusActive); err != nil {
		s.log.Warnw("reverting lost item status failed", "lost_item_id", match.LostItemID, "error", err)
	}
	if err := s.items.SetFoundItemStatus(ctx, match.FoundItemID, models.ItemStatusActive); err != nil {
		s.log.Warnw("reverting found item status failed", "found_item_id", match.FoundItemID, "error", err)
	}

	pair := &models.RejectedPair{
		LostItemID:       match.LostItemID,
		FoundItemID:      match.FoundItemID,
		RejectedByUserID: userID,
	}
	if feedback != nil {
		pair.Reason = feedback.Reason
		pair.Details = feedback.Details
	}
	if err := s.blacklist.Insert(ctx, pair); err != nil {
		return nil, fmt.Errorf("blacklisting pair (%d,%d): %w", match.LostItemID, match.FoundItemID, err)
	}

	result := &RejectResult{}
	highScore := match.Score >= s.cfg.HighScoreThreshold
	stats, err := s.stats.RecordRejection(ctx, userID, highScore)
	if err != nil {
		s.log.Errorw("updating rejection stats failed", "user_id", userID, "error", err)
	} else if stats.Suspicious {
		s.log.Warnw("suspicious rejection pattern",
			"user_id", userID,
			"total_rejections", stats.TotalRejections,
			"high_score_rejections", stats.HighScoreRejections)
		result.Suspicious = true
	}
	return result, nil
}

// AcceptMatch records the caller's side of the two-sided acceptance.
// Both flags set unlocks the finder's contact details (chat itself is
// handled outside this service). Accepting twice is a no-op.
func (s *RejectionService) AcceptMatch(ctx context.Context, matchID, userID uint) (*models.Match, error) {
	match, err := s.matches.ByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("loading match %d: %w", matchID, err)
	}
	if match.Status == models.MatchStatusRejected {
		return nil, fmt.Errorf("match %d was rejected: %w", matchID, apperrors.ErrConflict)
	}

	switch userID {
	case match.LostItem.UserID:
		if match.OwnerAccepted {
			return match, nil
		}
		match.OwnerAccepted = true
	case match.FoundItem.UserID:
		if match.FinderAccepted {
			return match, nil
		}
		match.FinderAccepted = true
	default:
		return nil, fmt.Errorf("user %d is not part of match %d: %w", userID, matchID, apperrors.ErrForbidden)
	}

	if err := s.matches.Save(ctx, match); err != nil {
		return nil, fmt.Errorf("accepting match %d: %w", matchID, err)
	}
	if err := s.stats.RecordAcceptance(ctx, userID); err != nil {
		s.log.Warnw("updating acceptance stats failed", "user_id", userID, "error", err)
	}
	return match, nil
}

// ConfirmReturn is the owner-only terminal transition: the item came
// back, the match completes and both items leave the matching pool for
// good. Reward issuance happens downstream of the success status.
func (s *RejectionService) ConfirmReturn(ctx context.Context, matchID, userID uint) (*models.Match, error) {
	match, err := s.matches.ByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("loading match %d: %w", matchID, err)
	}
	if userID != match.LostItem.UserID {
		return nil, fmt.Errorf("only the owner can confirm a return: %w", apperrors.ErrForbidden)
	}
	switch match.Status {
	case models.MatchStatusSuccess:
		return match, nil
	case models.MatchStatusRejected:
		return nil, fmt.Errorf("match %d was rejected: %w", matchID, apperrors.ErrConflict)
	}
	if !match.OwnerAccepted || !match.FinderAccepted {
		return nil, fmt.Errorf("match %d not accepted by both sides: %w", matchID, apperrors.ErrConflict)
	}

	now := time.Now()
	match.Status = models.MatchStatusSuccess
	match.ReturnedAt = &now
	if err := s.matches.Save(ctx, match); err != nil {
		return nil, fmt.Errorf("completing match %d: %w", matchID, err)
	}

	if err := s.items.SetLostItemStatus(ctx, match.LostItemID, models.ItemStatusReturned); err != nil {
		s.log.Warnw("marking lost item returned failed", "lost_item_id", match.LostItemID, "error", err)
	}
	if err := s.items.SetFoundItemStatus(ctx, match.FoundItemID, models.ItemStatusReturned); err != nil {
		s.log.Warnw("marking found item returned failed", "found_item_id", match.FoundItemID, "error", err)
	}
	return match, nil
}

// IsRejectedPair reports whether the pair has ever been rejected.
func (s *RejectionService) IsRejectedPair(ctx context.Context, lostItemID, foundItemID uint) (bool, error) {
	return s.blacklist.IsRejected(ctx, lostItemID, foundItemID)
}
