package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTFIDFSimilarityIdenticalTexts(t *testing.T) {
	sim := TFIDFSimilarity("black wallet with cards", "black wallet with cards")
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestTFIDFSimilaritySymmetric(t *testing.T) {
	a := "blue bottle left near the gym entrance"
	b := "steel water bottle, blue color"
	assert.InDelta(t, TFIDFSimilarity(a, b), TFIDFSimilarity(b, a), 1e-12)
}

func TestTFIDFSimilarityEmptyInput(t *testing.T) {
	assert.Zero(t, TFIDFSimilarity("", "black phone"))
	assert.Zero(t, TFIDFSimilarity("black phone", ""))
	// Tokens of two or fewer characters are dropped entirely.
	assert.Zero(t, TFIDFSimilarity("a b c", "black phone"))
}

func TestTFIDFSimilarityBounds(t *testing.T) {
	cases := [][2]string{
		{"red umbrella", "red umbrella"},
		{"laptop charger 65w", "dell charger for laptop"},
		{"gold ring", "blue jeans"},
		{"!!!", "???"},
	}
	for _, c := range cases {
		sim := TFIDFSimilarity(c[0], c[1])
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0+1e-9)
	}
}

func TestTFIDFSimilaritySynonymExpansion(t *testing.T) {
	withSynonym := TFIDFSimilarity("lost my black phone", "black mobile found")
	unrelated := TFIDFSimilarity("lost my black phone", "black pencil found")
	assert.Greater(t, withSynonym, unrelated)
}

func TestFuzzySimilarityIdentical(t *testing.T) {
	assert.InDelta(t, 1.0, FuzzySimilarity("AirPods Pro", "airpods pro"), 1e-9)
}

func TestFuzzySimilarityBothEmpty(t *testing.T) {
	assert.InDelta(t, 1.0, FuzzySimilarity("", ""), 1e-9)
}

func TestFuzzySimilarityOneEmpty(t *testing.T) {
	assert.Zero(t, FuzzySimilarity("wallet", ""))
}

func TestFuzzySimilarityKnownDistance(t *testing.T) {
	// kitten -> sitting is the classic distance-3 pair, max length 7.
	assert.InDelta(t, 1.0-3.0/7.0, FuzzySimilarity("kitten", "sitting"), 1e-9)
}

func TestFuzzySimilaritySymmetric(t *testing.T) {
	assert.InDelta(t,
		FuzzySimilarity("Samsung Galaxy", "Black Samsung Phone"),
		FuzzySimilarity("Black Samsung Phone", "Samsung Galaxy"),
		1e-12)
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	tokens := tokenize("My ID is at B2, near the lab!")
	assert.NotContains(t, tokens, "my")
	assert.NotContains(t, tokens, "id")
	assert.NotContains(t, tokens, "b2")
	assert.Contains(t, tokens, "near")
	assert.Contains(t, tokens, "lab")
}
