package models

import (
	"time"
)

// RejectedPair permanently blacklists a lost/found pairing. The composite
// unique index makes inserts naturally idempotent under client retries.
type RejectedPair struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	LostItemID       uint   `gorm:"not null;uniqueIndex:idx_rejected_pair" json:"lost_item_id"`
	FoundItemID      uint   `gorm:"not null;uniqueIndex:idx_rejected_pair" json:"found_item_id"`
	RejectedByUserID uint   `gorm:"not null;index" json:"rejected_by_user_id"`
	Reason           string `gorm:"type:varchar(30)" json:"reason"`
	Details          string `gorm:"type:text" json:"details"`
}
