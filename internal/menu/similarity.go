package menu

import "strings"

// Similarity scores how close a recognizer label is to a catalog keyword,
// returning one of four tiers: 1.0 exact, 0.8 substring, 0.5 shared token,
// 0 otherwise. Comparison is case-insensitive. The tiers are deliberately
// coarse so a match is always explainable to the user.
func Similarity(label, keyword string) float64 {
	a := strings.ToLower(label)
	b := strings.ToLower(keyword)
	if a == "" || b == "" {
		return 0
	}

	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}

	aWords := tokenize(a)
	bWords := make(map[string]struct{})
	for _, w := range tokenize(b) {
		bWords[w] = struct{}{}
	}
	for _, w := range aWords {
		if _, ok := bWords[w]; ok {
			return 0.5
		}
	}

	return 0
}

// tokenize splits on whitespace, commas, hyphens and underscores.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', '-', '_':
			return true
		}
		return false
	})
}
