package matching

import (
	"regexp"
	"sort"
	"strings"
)

var knownColors = []string{
	"black", "white", "red", "blue", "green", "yellow", "orange",
	"purple", "pink", "brown", "grey", "gray", "silver", "gold",
	"beige", "maroon", "navy", "teal", "cyan", "violet",
}

var knownPhoneBrands = []string{
	"samsung", "apple", "iphone", "oneplus", "xiaomi", "redmi",
	"realme", "vivo", "oppo", "nokia", "motorola", "pixel", "google",
	"honor", "huawei", "nothing", "iqoo", "poco", "sony", "lava",
}

var knownLaptopBrands = []string{
	"dell", "lenovo", "asus", "acer", "msi", "macbook", "thinkpad",
	"ideapad", "pavilion", "inspiron", "vivobook", "zenbook",
	"chromebook", "surface", "alienware", "razer", "gigabyte", "avita",
	"toshiba", "fujitsu",
}

// modelRegex is a deliberately loose heuristic for model-like tokens:
// a single letter followed by 1-3 digits ("s23", "g14"), or a bare one
// or two digit number optionally suffixed with s/pro/plus/max ("13pro").
// It over-matches on ordinary numbers; treat the output as a weak hint,
// never an authoritative attribute.
var modelRegex = regexp.MustCompile(`\b([a-z]\d{1,3}|\d{1,2}(?:s|pro|plus|max)?)\b`)

// ExtractColors returns the known color words contained in the text.
func ExtractColors(text string) []string {
	return scanTable(text, knownColors)
}

// ExtractBrands returns the known phone and laptop brand names
// contained in the text.
func ExtractBrands(text string) []string {
	lower := strings.ToLower(text)
	found := map[string]struct{}{}
	for _, brand := range knownPhoneBrands {
		if strings.Contains(lower, brand) {
			found[brand] = struct{}{}
		}
	}
	for _, brand := range knownLaptopBrands {
		if strings.Contains(lower, brand) {
			found[brand] = struct{}{}
		}
	}
	return sortedKeys(found)
}

// ExtractModels pulls model-number-like tokens out of the text using
// the heuristic regex above.
func ExtractModels(text string) []string {
	matches := modelRegex.FindAllString(strings.ToLower(text), -1)
	found := map[string]struct{}{}
	for _, m := range matches {
		found[m] = struct{}{}
	}
	return sortedKeys(found)
}

// AttributeScore awards +2 for a shared color, +2 for a shared brand and
// +1 for a shared model token across the two items' name and
// description, capped at 4.
func AttributeScore(lost, found Item) int {
	lostText := lost.Name + " " + lost.Description
	foundText := found.Name + " " + found.Description

	score := 0
	if anyOverlap(ExtractColors(lostText), ExtractColors(foundText)) {
		score += 2
	}
	if anyOverlap(ExtractBrands(lostText), ExtractBrands(foundText)) {
		score += 2
	}
	if anyOverlap(ExtractModels(lostText), ExtractModels(foundText)) {
		score++
	}
	if score > 4 {
		score = 4
	}
	return score
}

func scanTable(text string, table []string) []string {
	lower := strings.ToLower(text)
	found := map[string]struct{}{}
	for _, entry := range table {
		if strings.Contains(lower, entry) {
			found[entry] = struct{}{}
		}
	}
	return sortedKeys(found)
}

func anyOverlap(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
