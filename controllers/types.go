package controllers

import "time"

type CreateLostItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Purpose     string `json:"purpose"`

	Community string `json:"community" binding:"required"`
	SubArea   string `json:"sub_area"`

	Location          string   `json:"location" binding:"required"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	LocationAccuracyM *float64 `json:"location_accuracy_m"`

	ImageURL string    `json:"image_url"`
	LostDate time.Time `json:"lost_date" binding:"required"`
}

type CreateFoundItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Purpose     string `json:"purpose"`

	Community string `json:"community" binding:"required"`
	SubArea   string `json:"sub_area"`

	Location          string   `json:"location" binding:"required"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	LocationAccuracyM *float64 `json:"location_accuracy_m"`

	ImageURL  string    `json:"image_url"`
	FoundDate time.Time `json:"found_date" binding:"required"`

	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	StorageLocation string `json:"storage_location"`
}

type RejectMatchRequest struct {
	Reason  string `json:"reason"`
	Details string `json:"details"`
}
