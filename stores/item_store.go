// Package stores provides the gorm-backed implementations of the
// service store interfaces.
package stores

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/refind-app/api-go/apperrors"
	"github.com/refind-app/api-go/models"
)

type ItemStore struct {
	DB *gorm.DB
}

func NewItemStore(db *gorm.DB) *ItemStore {
	return &ItemStore{DB: db}
}

func (s *ItemStore) CreateLostItem(ctx context.Context, item *models.LostItem) error {
	return s.DB.WithContext(ctx).Create(item).Error
}

func (s *ItemStore) CreateFoundItem(ctx context.Context, item *models.FoundItem) error {
	return s.DB.WithContext(ctx).Create(item).Error
}

func (s *ItemStore) LostItemByID(ctx context.Context, id uint) (*models.LostItem, error) {
	var item models.LostItem
	if err := s.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lost item %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

func (s *ItemStore) FoundItemByID(ctx context.Context, id uint) (*models.FoundItem, error) {
	var item models.FoundItem
	if err := s.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("found item %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

// ActiveLostItems returns the candidate pool for a new found report,
// newest reports first.
func (s *ItemStore) ActiveLostItems(ctx context.Context, community string) ([]models.LostItem, error) {
	var items []models.LostItem
	err := s.DB.WithContext(ctx).
		Where("status = ? AND community = ?", models.ItemStatusActive, community).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// ActiveFoundItems returns the candidate pool for a new lost report,
// newest reports first.
func (s *ItemStore) ActiveFoundItems(ctx context.Context, community string) ([]models.FoundItem, error) {
	var items []models.FoundItem
	err := s.DB.WithContext(ctx).
		Where("status = ? AND community = ?", models.ItemStatusActive, community).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (s *ItemStore) SetLostItemStatus(ctx context.Context, id uint, status string) error {
	res := s.DB.WithContext(ctx).Model(&models.LostItem{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("lost item %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *ItemStore) SetFoundItemStatus(ctx context.Context, id uint, status string) error {
	res := s.DB.WithContext(ctx).Model(&models.FoundItem{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("found item %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
