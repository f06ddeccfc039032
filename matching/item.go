// Package matching implements the scoring core that decides whether a
// lost report and a found report describe the same physical object. All
// functions here are pure and safe for concurrent use.
package matching

import (
	"time"
)

type ItemType string

const (
	ItemTypeLost  ItemType = "lost"
	ItemTypeFound ItemType = "found"
)

// Item is the storage-independent projection of a report that the
// scoring functions operate on.
type Item struct {
	ID        uint
	UserID    uint
	Type      ItemType
	Community string
	SubArea   string

	Name        string
	Category    string
	Description string
	Purpose     string

	Location  string
	Latitude  *float64
	Longitude *float64

	// Embedding is the pre-computed visual feature vector, nil when no
	// image was supplied or extraction failed.
	Embedding []float64

	EventDate time.Time
}

// HasCoordinates reports whether the item carries a GPS fix.
func (it Item) HasCoordinates() bool {
	return it.Latitude != nil && it.Longitude != nil
}
