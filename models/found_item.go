package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/refind-app/api-go/matching"
)

type FoundItem struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	Community string `gorm:"not null;index;type:varchar(100)" json:"community"`
	SubArea   string `gorm:"type:varchar(100)" json:"sub_area"`

	Name        string `gorm:"not null" json:"name"`
	Category    string `gorm:"not null;type:varchar(50)" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Purpose     string `gorm:"type:text" json:"purpose"`

	Location          string   `gorm:"not null" json:"location"`
	Latitude          *float64 `gorm:"type:decimal(10,8)" json:"latitude"`
	Longitude         *float64 `gorm:"type:decimal(11,8)" json:"longitude"`
	LocationAccuracyM *float64 `json:"location_accuracy_m"`

	ImageURL  string          `json:"image_url"`
	Embedding pq.Float64Array `gorm:"type:float8[]" json:"-"`

	// Finder-side contact details, shown to the owner once both sides accept.
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	StorageLocation string `json:"storage_location"` // where the item is being kept

	FoundDate time.Time `gorm:"not null" json:"found_date"`
	Status    string    `gorm:"not null;default:'active';type:varchar(20);index" json:"status"`
}

// MatchingItem projects the record into the pure matching core's shape.
func (fi *FoundItem) MatchingItem() matching.Item {
	return matching.Item{
		ID:          fi.ID,
		UserID:      fi.UserID,
		Type:        matching.ItemTypeFound,
		Community:   fi.Community,
		SubArea:     fi.SubArea,
		Name:        fi.Name,
		Category:    fi.Category,
		Description: fi.Description,
		Purpose:     fi.Purpose,
		Location:    fi.Location,
		Latitude:    fi.Latitude,
		Longitude:   fi.Longitude,
		Embedding:   []float64(fi.Embedding),
		EventDate:   fi.FoundDate,
	}
}
