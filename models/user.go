package models

import (
	"time"

	"gorm.io/gorm"
)

// User mirrors the account record owned by the external auth system.
// Only the fields the matching flows need are kept here; credentials and
// sessions never touch this service.
type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Phone     string         `json:"phone"`
	Community string         `gorm:"not null;type:varchar(100)" json:"community"`
	Avatar    string         `json:"avatar"`
}
