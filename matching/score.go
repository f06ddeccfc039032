package matching

import (
	"math"
	"strings"
	"time"
)

// Breakdown itemizes a pair's score per signal. All eight components are
// always present and sum to TotalScore, capped at 100.
type Breakdown struct {
	CategoryScore  int `json:"category_score"`
	LocationScore  int `json:"location_score"`
	TFIDFScore     int `json:"tfidf_score"`
	FuzzyScore     int `json:"fuzzy_score"`
	ImageScore     int `json:"image_score"`
	PurposeScore   int `json:"purpose_score"`
	AttributeScore int `json:"attribute_score"`
	DateScore      int `json:"date_score"`
	TotalScore     int `json:"total_score"`
}

// Weights holds the maximum contribution of each signal.
type Weights struct {
	Category  int
	Location  int
	TFIDF     int
	Fuzzy     int
	Image     int
	Purpose   int
	Attribute int
	Date      int
}

// Config carries the scoring weights and the policy thresholds. The
// thresholds are domain-tuned values, not structural constants; override
// them through configuration rather than editing call sites.
type Config struct {
	Weights Weights

	// MinTotalScore and MinFuzzyScore form the validity gate a pair
	// must clear to become a persisted match.
	MinTotalScore int
	MinFuzzyScore int

	// PrefilterRadiusKm bounds the coarse GPS pre-filter in the finder.
	PrefilterRadiusKm float64

	// HighScoreThreshold marks a match "good enough" that rejecting it
	// counts toward the abuse signal.
	HighScoreThreshold int
}

// DefaultConfig returns the tuned production configuration.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Category:  10,
			Location:  25,
			TFIDF:     25,
			Fuzzy:     15,
			Image:     15,
			Purpose:   8,
			Attribute: 4,
			Date:      2,
		},
		MinTotalScore:      65,
		MinFuzzyScore:      4,
		PrefilterRadiusKm:  1.0,
		HighScoreThreshold: 75,
	}
}

// dateBuckets maps the day gap between the two event dates onto a
// 10-point internal scale, later scaled down by the date weight.
var dateBuckets = []struct {
	maxDays int
	value   int
}{
	{0, 10},
	{1, 9},
	{2, 8},
	{3, 7},
	{7, 5},
	{14, 3},
	{30, 1},
}

func dateScore(lostDate, foundDate time.Time, weight int) int {
	diff := foundDate.Sub(lostDate)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff.Hours() / 24)

	bucket := 0
	for _, b := range dateBuckets {
		if days <= b.maxDays {
			bucket = b.value
			break
		}
	}
	return roundScore(float64(bucket) / 10 * float64(weight))
}

// purposeScore special-cases missing optional fields: one side missing
// gets 30% of the weight (penalizing incompleteness less than a flat
// zero), both missing gets a neutral 50%.
func purposeScore(lostPurpose, foundPurpose string, weight int) int {
	lostPurpose = strings.TrimSpace(lostPurpose)
	foundPurpose = strings.TrimSpace(foundPurpose)

	switch {
	case lostPurpose != "" && foundPurpose != "":
		return roundScore(TFIDFSimilarity(lostPurpose, foundPurpose) * float64(weight))
	case lostPurpose == "" && foundPurpose == "":
		return roundScore(0.5 * float64(weight))
	default:
		return roundScore(0.3 * float64(weight))
	}
}

// ScoreMatch computes the full breakdown for a lost/found pair. The
// argument order is fixed lost-then-found so scoring is independent of
// which side triggered the search.
func ScoreMatch(lost, found Item, cfg Config) Breakdown {
	w := cfg.Weights
	b := Breakdown{}

	lostCat := strings.TrimSpace(lost.Category)
	foundCat := strings.TrimSpace(found.Category)
	if lostCat != "" && strings.EqualFold(lostCat, foundCat) {
		b.CategoryScore = w.Category
	}

	b.LocationScore = LocationScore(lost, found, w.Location)
	b.TFIDFScore = roundScore(TFIDFSimilarity(lost.Description, found.Description) * float64(w.TFIDF))
	b.FuzzyScore = roundScore(FuzzySimilarity(lost.Name, found.Name) * float64(w.Fuzzy))
	b.ImageScore = ImageScore(lost, found, w.Image)
	b.PurposeScore = purposeScore(lost.Purpose, found.Purpose, w.Purpose)
	b.AttributeScore = AttributeScore(lost, found)
	b.DateScore = dateScore(lost.EventDate, found.EventDate, w.Date)

	total := b.CategoryScore + b.LocationScore + b.TFIDFScore + b.FuzzyScore +
		b.ImageScore + b.PurposeScore + b.AttributeScore + b.DateScore
	if total > 100 {
		total = 100
	}
	b.TotalScore = total
	return b
}

// IsValidMatch applies the validity gate: a pair must clear both the
// minimum total score and the minimum name similarity.
func IsValidMatch(b Breakdown, cfg Config) bool {
	return b.TotalScore >= cfg.MinTotalScore && b.FuzzyScore >= cfg.MinFuzzyScore
}

func roundScore(f float64) int {
	return int(math.Round(f))
}
