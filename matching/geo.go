package matching

import (
	"math"
	"strings"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two coordinate
// pairs in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// LocationScore scores location agreement out of weight points. Text
// signals strictly dominate GPS: the coordinates record where the
// reporter stood at submission time, not where the item is, so even a
// large GPS gap must not override an exact text match.
//
// Tiers: exact text match -> full weight; one location containing the
// other -> 70%; matching sub-area -> 50%; otherwise a small bonus from
// GPS proximity when both reports carry coordinates.
func LocationScore(lost, found Item, weight int) int {
	lostLoc := strings.ToLower(strings.TrimSpace(lost.Location))
	foundLoc := strings.ToLower(strings.TrimSpace(found.Location))

	if lostLoc != "" && lostLoc == foundLoc {
		return weight
	}
	if lostLoc != "" && foundLoc != "" &&
		(strings.Contains(lostLoc, foundLoc) || strings.Contains(foundLoc, lostLoc)) {
		return roundScore(0.7 * float64(weight))
	}

	lostArea := strings.ToLower(strings.TrimSpace(lost.SubArea))
	foundArea := strings.ToLower(strings.TrimSpace(found.SubArea))
	if lostArea != "" && lostArea == foundArea {
		return roundScore(0.5 * float64(weight))
	}

	if !lost.HasCoordinates() || !found.HasCoordinates() {
		return 0
	}
	dist := HaversineKm(*lost.Latitude, *lost.Longitude, *found.Latitude, *found.Longitude)
	switch {
	case dist <= 0.05:
		return 6
	case dist <= 0.1:
		return 4
	case dist <= 0.2:
		return 3
	case dist <= 0.5:
		return 2
	}
	return 0
}

// WithinRadius is the coarse pre-filter used before full scoring. It
// only ever excludes a pair when both reports carry coordinates; a pair
// with unknown distance may still match on text location.
func WithinRadius(lost, found Item, radiusKm float64) bool {
	if !lost.HasCoordinates() || !found.HasCoordinates() {
		return true
	}
	return HaversineKm(*lost.Latitude, *lost.Longitude, *found.Latitude, *found.Longitude) <= radiusKm
}
