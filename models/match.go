package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/refind-app/api-go/matching"
)

// Match pairs one lost item with one found item. The pair is stored
// lost->found; the score and its breakdown are computed once at creation.
type Match struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	LostItemID  uint      `gorm:"not null;uniqueIndex:idx_match_pair" json:"lost_item_id"`
	FoundItemID uint      `gorm:"not null;uniqueIndex:idx_match_pair" json:"found_item_id"`
	LostItem    LostItem  `gorm:"foreignKey:LostItemID" json:"lost_item"`
	FoundItem   FoundItem `gorm:"foreignKey:FoundItemID" json:"found_item"`

	Score          int `gorm:"not null" json:"score"`
	CategoryScore  int `json:"category_score"`
	LocationScore  int `json:"location_score"`
	TFIDFScore     int `json:"tfidf_score"`
	FuzzyScore     int `json:"fuzzy_score"`
	ImageScore     int `json:"image_score"`
	PurposeScore   int `json:"purpose_score"`
	AttributeScore int `json:"attribute_score"`
	DateScore      int `json:"date_score"`

	// Both sides must accept before contact details unlock.
	OwnerAccepted  bool `gorm:"not null;default:false" json:"owner_accepted"`
	FinderAccepted bool `gorm:"not null;default:false" json:"finder_accepted"`

	Status           string     `gorm:"not null;default:'pending';type:varchar(20);index" json:"status"` // pending, success, rejected
	RejectionCount   int        `gorm:"not null;default:0" json:"rejection_count"`
	RejectedByUserID *uint      `json:"rejected_by_user_id"`
	RejectedAt       *time.Time `json:"rejected_at"`
	RejectionReason  string     `gorm:"type:varchar(30)" json:"rejection_reason"`
	RejectionDetails string     `gorm:"type:text" json:"rejection_details"`
	ReturnedAt       *time.Time `json:"returned_at"`
}

// SetBreakdown copies the per-signal scores onto the record.
func (m *Match) SetBreakdown(b matching.Breakdown) {
	m.Score = b.TotalScore
	m.CategoryScore = b.CategoryScore
	m.LocationScore = b.LocationScore
	m.TFIDFScore = b.TFIDFScore
	m.FuzzyScore = b.FuzzyScore
	m.ImageScore = b.ImageScore
	m.PurposeScore = b.PurposeScore
	m.AttributeScore = b.AttributeScore
	m.DateScore = b.DateScore
}

// Breakdown reassembles the per-signal scores stored on the record.
func (m *Match) Breakdown() matching.Breakdown {
	return matching.Breakdown{
		CategoryScore:  m.CategoryScore,
		LocationScore:  m.LocationScore,
		TFIDFScore:     m.TFIDFScore,
		FuzzyScore:     m.FuzzyScore,
		ImageScore:     m.ImageScore,
		PurposeScore:   m.PurposeScore,
		AttributeScore: m.AttributeScore,
		DateScore:      m.DateScore,
		TotalScore:     m.Score,
	}
}
