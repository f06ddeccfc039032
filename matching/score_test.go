package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var scoreTestDay = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func sampleLostPhone() Item {
	return Item{
		ID:          1,
		UserID:      10,
		Type:        ItemTypeLost,
		Community:   "nitw",
		Name:        "Black Samsung Phone",
		Category:    "Phone",
		Description: "cracked screen, black color",
		Location:    "Library",
		Embedding:   []float64{1, 0, 0},
		EventDate:   scoreTestDay,
	}
}

func sampleFoundPhone() Item {
	return Item{
		ID:          2,
		UserID:      20,
		Type:        ItemTypeFound,
		Community:   "nitw",
		Name:        "Samsung Galaxy",
		Category:    "Phone",
		Description: "black phone with cracked screen",
		Location:    "Library",
		Embedding:   []float64{1, 0, 0},
		EventDate:   scoreTestDay,
	}
}

func TestScoreMatchStrongPair(t *testing.T) {
	cfg := DefaultConfig()
	b := ScoreMatch(sampleLostPhone(), sampleFoundPhone(), cfg)

	assert.Equal(t, 10, b.CategoryScore)
	assert.Equal(t, 25, b.LocationScore)
	assert.Equal(t, 15, b.ImageScore)
	assert.Equal(t, 2, b.DateScore)
	assert.Greater(t, b.TFIDFScore, 0)
	assert.GreaterOrEqual(t, b.FuzzyScore, cfg.MinFuzzyScore)
	assert.GreaterOrEqual(t, b.TotalScore, cfg.MinTotalScore)
	assert.True(t, IsValidMatch(b, cfg))
}

func TestScoreMatchLocationMismatchDropsPair(t *testing.T) {
	cfg := DefaultConfig()
	lost := sampleLostPhone()
	found := sampleFoundPhone()
	found.Location = "Cafeteria"
	// No embeddings either; location and image carry heavy weight.
	lost.Embedding = nil
	found.Embedding = nil

	b := ScoreMatch(lost, found, cfg)
	assert.Equal(t, 0, b.LocationScore)
	assert.Less(t, b.TotalScore, cfg.MinTotalScore)
	assert.False(t, IsValidMatch(b, cfg))
}

func TestScoreMatchBreakdownSumsToTotal(t *testing.T) {
	cfg := DefaultConfig()
	b := ScoreMatch(sampleLostPhone(), sampleFoundPhone(), cfg)
	sum := b.CategoryScore + b.LocationScore + b.TFIDFScore + b.FuzzyScore +
		b.ImageScore + b.PurposeScore + b.AttributeScore + b.DateScore
	if sum > 100 {
		sum = 100
	}
	assert.Equal(t, sum, b.TotalScore)
}

func TestScoreMatchBoundedness(t *testing.T) {
	cfg := DefaultConfig()
	items := []Item{
		{},
		sampleLostPhone(),
		{Name: "x", Description: "!!", EventDate: scoreTestDay},
		{Name: "Blue Bottle", Category: "Bottle", Location: "gym",
			Purpose: "drinking water", EventDate: scoreTestDay.AddDate(0, 0, -40)},
	}
	for _, lost := range items {
		for _, found := range items {
			b := ScoreMatch(lost, found, cfg)
			assert.GreaterOrEqual(t, b.CategoryScore, 0)
			assert.LessOrEqual(t, b.CategoryScore, cfg.Weights.Category)
			assert.GreaterOrEqual(t, b.LocationScore, 0)
			assert.LessOrEqual(t, b.LocationScore, cfg.Weights.Location)
			assert.GreaterOrEqual(t, b.TFIDFScore, 0)
			assert.LessOrEqual(t, b.TFIDFScore, cfg.Weights.TFIDF)
			assert.GreaterOrEqual(t, b.FuzzyScore, 0)
			assert.LessOrEqual(t, b.FuzzyScore, cfg.Weights.Fuzzy)
			assert.GreaterOrEqual(t, b.ImageScore, 0)
			assert.LessOrEqual(t, b.ImageScore, cfg.Weights.Image)
			assert.GreaterOrEqual(t, b.PurposeScore, 0)
			assert.LessOrEqual(t, b.PurposeScore, cfg.Weights.Purpose)
			assert.GreaterOrEqual(t, b.AttributeScore, 0)
			assert.LessOrEqual(t, b.AttributeScore, cfg.Weights.Attribute)
			assert.GreaterOrEqual(t, b.DateScore, 0)
			assert.LessOrEqual(t, b.DateScore, cfg.Weights.Date)
			assert.GreaterOrEqual(t, b.TotalScore, 0)
			assert.LessOrEqual(t, b.TotalScore, 100)
		}
	}
}

func TestPurposeScoreTiers(t *testing.T) {
	// Both present: similarity scaled by the full weight.
	assert.Equal(t, 8, purposeScore("daily college commute", "daily college commute", 8))
	// One missing: 30% partial credit.
	assert.Equal(t, 2, purposeScore("daily college commute", "", 8))
	assert.Equal(t, 2, purposeScore("", "daily college commute", 8))
	// Both missing: 50% neutral credit.
	assert.Equal(t, 4, purposeScore("", "", 8))
}

func TestDateScoreBuckets(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{0, 2},  // bucket 10 -> round(10/10*2)
		{1, 2},  // bucket 9 -> round(1.8)
		{2, 2},  // bucket 8 -> round(1.6)
		{3, 1},  // bucket 7 -> round(1.4)
		{5, 1},  // bucket 5 -> round(1.0)
		{10, 1}, // bucket 3 -> round(0.6)
		{20, 0}, // bucket 1 -> round(0.2)
		{45, 0}, // beyond all buckets
	}
	for _, tt := range tests {
		lostDate := scoreTestDay
		foundDate := scoreTestDay.AddDate(0, 0, tt.days)
		assert.Equal(t, tt.want, dateScore(lostDate, foundDate, 2), "days=%d", tt.days)
		// Order of event dates must not matter.
		assert.Equal(t, tt.want, dateScore(foundDate, lostDate, 2), "days=%d reversed", tt.days)
	}
}

func TestIsValidMatchGateMonotonicity(t *testing.T) {
	cfg := DefaultConfig()

	// Below the total threshold the gate is closed regardless of fuzzy.
	assert.False(t, IsValidMatch(Breakdown{TotalScore: 64, FuzzyScore: 15}, cfg))
	// Below the fuzzy threshold the gate is closed regardless of total.
	assert.False(t, IsValidMatch(Breakdown{TotalScore: 100, FuzzyScore: 3}, cfg))
	// Both thresholds met.
	assert.True(t, IsValidMatch(Breakdown{TotalScore: 65, FuzzyScore: 4}, cfg))
}

func TestIsValidMatchThresholdsAreConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinTotalScore = 50
	cfg.MinFuzzyScore = 2
	assert.True(t, IsValidMatch(Breakdown{TotalScore: 50, FuzzyScore: 2}, cfg))
}
