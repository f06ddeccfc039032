package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/refind-app/api-go/matching"
)

type LostItem struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	Community string `gorm:"not null;index;type:varchar(100)" json:"community"` // college code or "common"
	SubArea   string `gorm:"type:varchar(100)" json:"sub_area"`

	Name        string `gorm:"not null" json:"name"`
	Category    string `gorm:"not null;type:varchar(50)" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Purpose     string `gorm:"type:text" json:"purpose"`

	// Location is the free-text primary signal. The GPS fields reflect
	// where the reporter was when submitting, not where the item is.
	Location          string   `gorm:"not null" json:"location"`
	Latitude          *float64 `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude         *float64 `gorm:"type:decimal(11,8)" json:"longitude"`
	LocationAccuracyM *float64 `json:"location_accuracy_m"`

	ImageURL  string          `json:"image_url"`
	Embedding pq.Float64Array `gorm:"type:float8[]" json:"-"`

	LostDate time.Time `gorm:"not null" json:"lost_date"`
	Status   string    `gorm:"not null;default:'active';type:varchar(20);index" json:"status"` // active, matched, returned
}

// MatchingItem projects the record into the pure matching core's shape.
func (li *LostItem) MatchingItem() matching.Item {
	return matching.Item{
		ID:          li.ID,
		UserID:      li.UserID,
		Type:        matching.ItemTypeLost,
		Community:   li.Community,
		SubArea:     li.SubArea,
		Name:        li.Name,
		Category:    li.Category,
		Description: li.Description,
		Purpose:     li.Purpose,
		Location:    li.Location,
		Latitude:    li.Latitude,
		Longitude:   li.Longitude,
		Embedding:   []float64(li.Embedding),
		EventDate:   li.LostDate,
	}
}
