package models

import (
	"time"
)

// UserRejectionStats keeps per-user running counters feeding the abuse
// signal. One row per user, updated inside a row-locking transaction.
type UserRejectionStats struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID              uint `gorm:"not null;uniqueIndex" json:"user_id"`
	TotalRejections     int  `gorm:"not null;default:0" json:"total_rejections"`
	HighScoreRejections int  `gorm:"not null;default:0" json:"high_score_rejections"`
	TotalAcceptances    int  `gorm:"not null;default:0" json:"total_acceptances"`
	Suspicious          bool `gorm:"not null;default:false" json:"suspicious"`
	RewardsDisabled     bool `gorm:"not null;default:false" json:"rewards_disabled"`
}

// Abuse policy thresholds. A user rejecting several matches the engine
// scored highly is likely gaming the flow (for example fishing for
// finder contact details and bailing out).
const (
	SuspiciousHighScoreRejections = 3
	RewardsDisableHighScoreCount  = 5
)

// Reevaluate recomputes the derived flags from the counters. Call it
// inside the same transaction that updated the counters.
func (s *UserRejectionStats) Reevaluate() {
	s.Suspicious = s.HighScoreRejections >= SuspiciousHighScoreRejections &&
		s.HighScoreRejections > s.TotalAcceptances
	s.RewardsDisabled = s.HighScoreRejections >= RewardsDisableHighScoreCount
}
