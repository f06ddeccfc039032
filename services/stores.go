// Package services holds the match orchestration and rejection flows.
// Persistence is reached only through the store interfaces below; the
// gorm implementations live in the stores package.
package services

import (
	"context"

	"github.com/refind-app/api-go/models"
)

type ItemStore interface {
	CreateLostItem(ctx context.Context, item *models.LostItem) error
	CreateFoundItem(ctx context.Context, item *models.FoundItem) error
	LostItemByID(ctx context.Context, id uint) (*models.LostItem, error)
	FoundItemByID(ctx context.Context, id uint) (*models.FoundItem, error)

	// Candidate pools: active items of one type within a community.
	ActiveLostItems(ctx context.Context, community string) ([]models.LostItem, error)
	ActiveFoundItems(ctx context.Context, community string) ([]models.FoundItem, error)

	SetLostItemStatus(ctx context.Context, id uint, status string) error
	SetFoundItemStatus(ctx context.Context, id uint, status string) error
}

type MatchStore interface {
	Create(ctx context.Context, match *models.Match) error
	ByID(ctx context.Context, id uint) (*models.Match, error)
	Save(ctx context.Context, match *models.Match) error
	ForUser(ctx context.Context, userID uint) ([]models.Match, error)
}

type BlacklistStore interface {
	// Insert records a rejected pair; inserting an already-recorded
	// pair is a no-op, not an error.
	Insert(ctx context.Context, pair *models.RejectedPair) error
	IsRejected(ctx context.Context, lostItemID, foundItemID uint) (bool, error)
}

type StatsStore interface {
	// RecordRejection atomically increments the user's rejection
	// counters (the high-score counter too when highScore is set),
	// recomputes the abuse flags and returns the updated row.
	RecordRejection(ctx context.Context, userID uint, highScore bool) (*models.UserRejectionStats, error)
	RecordAcceptance(ctx context.Context, userID uint) error
}
