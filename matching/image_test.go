package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarityIdentical(t *testing.T) {
	sim, err := CosineSimilarity([]float64{1, 0, 0}, []float64{1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	sim, err := CosineSimilarity([]float64{1, 0, 0}, []float64{0, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-9)
}

func TestCosineSimilarityDimensionMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float64{1, 0}, []float64{1, 0, 0})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	sim, err := CosineSimilarity([]float64{0, 0, 0}, []float64{1, 0, 0})
	require.NoError(t, err)
	assert.Zero(t, sim)
}

func TestImageScoreIdenticalEmbeddings(t *testing.T) {
	lost := Item{Embedding: []float64{1, 0, 0}}
	found := Item{Embedding: []float64{1, 0, 0}}
	assert.Equal(t, 15, ImageScore(lost, found, 15))
}

func TestImageScoreOrthogonalEmbeddings(t *testing.T) {
	lost := Item{Embedding: []float64{1, 0, 0}}
	found := Item{Embedding: []float64{0, 1, 0}}
	assert.Equal(t, 0, ImageScore(lost, found, 15))
}

func TestImageScoreMissingEmbedding(t *testing.T) {
	lost := Item{Embedding: []float64{1, 0, 0}}
	found := Item{}
	assert.Equal(t, 0, ImageScore(lost, found, 15))
	assert.Equal(t, 0, ImageScore(found, lost, 15))
	assert.Equal(t, 0, ImageScore(Item{}, Item{}, 15))
}

func TestImageScoreDimensionMismatchScoresZero(t *testing.T) {
	lost := Item{Embedding: []float64{1, 0, 0}}
	found := Item{Embedding: []float64{1, 0}}
	assert.Equal(t, 0, ImageScore(lost, found, 15))
}

func TestImageScoreBounded(t *testing.T) {
	lost := Item{Embedding: []float64{0.5, 0.5, 0.7}}
	found := Item{Embedding: []float64{0.5, 0.5, 0.7}}
	score := ImageScore(lost, found, 15)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 15)
}
