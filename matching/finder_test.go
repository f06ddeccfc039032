package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchesSortsByScoreDescending(t *testing.T) {
	cfg := DefaultConfig()
	lost := sampleLostPhone()

	strong := sampleFoundPhone()
	weaker := sampleFoundPhone()
	weaker.ID = 3
	weaker.EventDate = scoreTestDay.AddDate(0, 0, 3) // weaker date signal

	matches, err := FindMatches(context.Background(), lost, []Item{weaker, strong}, cfg)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, strong.ID, matches[0].Item.ID)
	assert.Equal(t, weaker.ID, matches[1].Item.ID)
	assert.GreaterOrEqual(t, matches[0].Breakdown.TotalScore, matches[1].Breakdown.TotalScore)
}

func TestFindMatchesFiltersInvalidCandidates(t *testing.T) {
	cfg := DefaultConfig()
	lost := sampleLostPhone()

	unrelated := Item{
		ID:          7,
		UserID:      30,
		Type:        ItemTypeFound,
		Name:        "Blue Umbrella",
		Category:    "Umbrella",
		Description: "large blue umbrella",
		Location:    "Cafeteria",
		EventDate:   scoreTestDay,
	}

	matches, err := FindMatches(context.Background(), lost, []Item{unrelated, sampleFoundPhone()}, cfg)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, uint(2), matches[0].Item.ID)
}

func TestFindMatchesGPSPrefilter(t *testing.T) {
	cfg := DefaultConfig()
	lost := sampleLostPhone()
	lost.Latitude, lost.Longitude = coords(12.9700, 77.5900)

	// Text location matches exactly but GPS says ~11km away: the coarse
	// pre-filter drops it before scoring when both sides carry a fix.
	farWithGPS := sampleFoundPhone()
	farWithGPS.Latitude, farWithGPS.Longitude = coords(13.0700, 77.5900)

	matches, err := FindMatches(context.Background(), lost, []Item{farWithGPS}, cfg)
	require.NoError(t, err)
	assert.Empty(t, matches)

	// The same candidate without GPS must not be pre-filtered; distance
	// is unknown and the text match stands.
	noGPS := sampleFoundPhone()
	matches, err = FindMatches(context.Background(), lost, []Item{noGPS}, cfg)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 25, matches[0].Breakdown.LocationScore)
}

func TestFindMatchesSymmetryAcrossTriggerSide(t *testing.T) {
	cfg := DefaultConfig()
	lost := sampleLostPhone()
	found := sampleFoundPhone()

	fromLostSide, err := FindMatches(context.Background(), lost, []Item{found}, cfg)
	require.NoError(t, err)
	fromFoundSide, err := FindMatches(context.Background(), found, []Item{lost}, cfg)
	require.NoError(t, err)

	require.Len(t, fromLostSide, 1)
	require.Len(t, fromFoundSide, 1)
	assert.Equal(t, fromLostSide[0].Breakdown, fromFoundSide[0].Breakdown)
}

func TestFindMatchesEmptyPool(t *testing.T) {
	matches, err := FindMatches(context.Background(), sampleLostPhone(), nil, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatchesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := []Item{sampleFoundPhone()}
	_, err := FindMatches(ctx, sampleLostPhone(), pool, DefaultConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindMatchesStableOrderForEqualScores(t *testing.T) {
	cfg := DefaultConfig()
	lost := sampleLostPhone()

	first := sampleFoundPhone()
	second := sampleFoundPhone()
	second.ID = 9

	matches, err := FindMatches(context.Background(), lost, []Item{first, second}, cfg)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, first.ID, matches[0].Item.ID)
	assert.Equal(t, second.ID, matches[1].Item.ID)
}
