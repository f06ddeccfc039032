package stores

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/refind-app/api-go/models"
)

type StatsStore struct {
	DB *gorm.DB
}

func NewStatsStore(db *gorm.DB) *StatsStore {
	return &StatsStore{DB: db}
}

// RecordRejection increments the user's rejection counters and
// recomputes the abuse flags in one transaction. The row lock
// serializes concurrent rejections by the same user so counters never
// race.
func (s *StatsStore) RecordRejection(ctx context.Context, userID uint, highScore bool) (*models.UserRejectionStats, error) {
	var stats models.UserRejectionStats
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockRow(tx, userID, &stats); err != nil {
			return err
		}
		stats.TotalRejections++
		if highScore {
			stats.HighScoreRejections++
		}
		stats.Reevaluate()
		return tx.Save(&stats).Error
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecordAcceptance increments the user's acceptance counter under the
// same row lock; acceptances can clear a previously raised flag.
func (s *StatsStore) RecordAcceptance(ctx context.Context, userID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stats models.UserRejectionStats
		if err := lockRow(tx, userID, &stats); err != nil {
			return err
		}
		stats.TotalAcceptances++
		stats.Reevaluate()
		return tx.Save(&stats).Error
	})
}

func lockRow(tx *gorm.DB, userID uint, stats *models.UserRejectionStats) error {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(models.UserRejectionStats{UserID: userID}).
		FirstOrCreate(stats).Error
}
