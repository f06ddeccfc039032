package stores

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/refind-app/api-go/models"
)

type BlacklistStore struct {
	DB *gorm.DB
}

func NewBlacklistStore(db *gorm.DB) *BlacklistStore {
	return &BlacklistStore{DB: db}
}

// Insert records a rejected pair. The composite unique index makes
// duplicate inserts race-safe: a second writer hits the duplicate-key
// error and treats it as success.
func (s *BlacklistStore) Insert(ctx context.Context, pair *models.RejectedPair) error {
	err := s.DB.WithContext(ctx).Create(pair).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (s *BlacklistStore) IsRejected(ctx context.Context, lostItemID, foundItemID uint) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.RejectedPair{}).
		Where("lost_item_id = ? AND found_item_id = ?", lostItemID, foundItemID).
		Count(&count).Error
	return count > 0, err
}
