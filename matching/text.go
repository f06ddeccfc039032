package matching

import (
	"math"
	"regexp"
	"strings"

	"github.com/hbollon/go-edlib"
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9\s]+`)

// synonyms maps a token to equivalent terms reporters commonly use
// interchangeably. Expansion is one-directional per entry, so both
// directions are listed explicitly.
var synonyms = map[string][]string{
	"phone":      {"mobile", "smartphone", "cellphone"},
	"mobile":     {"phone", "smartphone"},
	"smartphone": {"phone", "mobile"},
	"cellphone":  {"phone", "mobile"},
	"laptop":     {"notebook", "computer"},
	"notebook":   {"laptop"},
	"computer":   {"laptop"},
	"macbook":    {"laptop"},
	"bag":        {"backpack", "handbag"},
	"backpack":   {"bag"},
	"handbag":    {"bag", "purse"},
	"purse":      {"wallet", "handbag"},
	"wallet":     {"purse"},
	"headphones": {"earphones", "earbuds"},
	"earphones":  {"headphones", "earbuds"},
	"earbuds":    {"headphones", "earphones"},
	"airpods":    {"earbuds", "earphones"},
	"bottle":     {"flask"},
	"flask":      {"bottle"},
	"spectacles": {"glasses"},
	"glasses":    {"spectacles"},
	"keys":       {"keychain"},
	"keychain":   {"keys"},
	"charger":    {"adapter"},
	"adapter":    {"charger"},
	"watch":      {"smartwatch"},
	"smartwatch": {"watch"},
	"card":       {"id"},
}

// tokenize lowercases, strips punctuation and drops tokens of two or
// fewer characters.
func tokenize(text string) []string {
	cleaned := nonAlnumRegex.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) > 2 {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// expandSynonyms appends the synonym set of every token so that
// "phone" and "mobile" descriptions land on shared vocabulary.
func expandSynonyms(tokens []string) []string {
	expanded := make([]string, 0, len(tokens)*2)
	expanded = append(expanded, tokens...)
	for _, tok := range tokens {
		if syns, ok := synonyms[tok]; ok {
			expanded = append(expanded, syns...)
		}
	}
	return expanded
}

// TFIDFSimilarity computes the cosine similarity of the two texts'
// TF-IDF vectors over their joint vocabulary, in [0,1]. Symmetric.
func TFIDFSimilarity(text1, text2 string) float64 {
	tokens1 := expandSynonyms(tokenize(text1))
	tokens2 := expandSynonyms(tokenize(text2))
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0
	}

	tf1 := termFrequency(tokens1)
	tf2 := termFrequency(tokens2)

	vocab := make(map[string]struct{}, len(tf1)+len(tf2))
	for term := range tf1 {
		vocab[term] = struct{}{}
	}
	for term := range tf2 {
		vocab[term] = struct{}{}
	}

	// Two-document corpus IDF: ln((N+1)/(df+1)) + 1 with N=2.
	var dot, norm1, norm2 float64
	for term := range vocab {
		df := 0
		if tf1[term] > 0 {
			df++
		}
		if tf2[term] > 0 {
			df++
		}
		idf := math.Log(3.0/float64(df+1)) + 1

		w1 := tf1[term] * idf
		w2 := tf2[term] * idf
		dot += w1 * w2
		norm1 += w1 * w1
		norm2 += w2 * w2
	}
	if norm1 == 0 || norm2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(norm1) * math.Sqrt(norm2))
}

func termFrequency(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	for tok := range tf {
		tf[tok] /= float64(len(tokens))
	}
	return tf
}

// FuzzySimilarity computes a normalized Levenshtein similarity of the
// two names, case-insensitive, in [0,1]. Two empty names count as equal.
func FuzzySimilarity(name1, name2 string) float64 {
	a := strings.ToLower(strings.TrimSpace(name1))
	b := strings.ToLower(strings.TrimSpace(name2))

	lenA := len([]rune(a))
	lenB := len([]rune(b))
	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}
	if maxLen == 0 {
		return 1
	}

	dist := edlib.LevenshteinDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}
