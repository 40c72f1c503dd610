package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalog is a minimal synthetic catalog for exercising the scoring
// mechanics without depending on the real keyword lists.
var testCatalog = []Dish{
	{
		ID:           "noodle_bowl",
		DisplayName:  "Noodle Bowl",
		BaseCalories: 300,
		Keywords:     []string{"noodle bowl", "stir fried noodles"},
	},
	{
		ID:           "rice_plate",
		DisplayName:  "Rice Plate",
		BaseCalories: 500,
		Keywords:     []string{"rice plate", "fried rice"},
	},
}

func TestMatchEmptyCandidates(t *testing.T) {
	assert.Nil(t, Match(nil, Dishes()))
	assert.Nil(t, Match([]Candidate{}, Dishes()))
}

func TestMatchEmptyCatalog(t *testing.T) {
	assert.Nil(t, Match([]Candidate{{Label: "pad thai", Prob: 0.9}}, nil))
}

func TestMatchExactKeyword(t *testing.T) {
	match := Match([]Candidate{{Label: "pad thai", Prob: 0.9}}, Dishes())
	require.NotNil(t, match)

	assert.Equal(t, "pad_thai", match.Dish.ID)
	assert.Equal(t, "pad thai", match.MatchedLabel)
	assert.Equal(t, "pad thai", match.MatchedKeyword)
	// sim 1.0 blended with prob 0.9: 1.0 * (0.5 + 0.45)
	assert.Equal(t, 0.95, match.Confidence)
}

func TestMatchRejectsUnknownFood(t *testing.T) {
	// High recognizer probability cannot rescue a label with no lexical
	// overlap against the catalog.
	match := Match([]Candidate{{Label: "spaghetti bolognese", Prob: 0.99}}, Dishes())
	assert.Nil(t, match)
}

func TestMatchConfidenceFloorBoundary(t *testing.T) {
	// "noodle food" shares only the token "noodle" with the test catalog
	// (tier 0.5), so combined = 0.5 * (0.5 + prob*0.5).
	match := Match([]Candidate{{Label: "noodle food", Prob: 0.4}}, testCatalog)
	require.NotNil(t, match, "combined score of exactly 0.35 must be accepted")
	assert.Equal(t, 0.35, match.Confidence)

	// prob 0.39 puts the same label at 0.3475, just under the floor.
	assert.Nil(t, Match([]Candidate{{Label: "noodle food", Prob: 0.39}}, testCatalog))
}

func TestMatchLowProbabilityBaseline(t *testing.T) {
	// A perfect textual match with prob 0 still scores 0.5 thanks to the
	// blend baseline, which clears the floor.
	match := Match([]Candidate{{Label: "som tum"}}, Dishes())
	require.NotNil(t, match)
	assert.Equal(t, "som_tum", match.Dish.ID)
	assert.Equal(t, 0.5, match.Confidence)
}

func TestMatchFirstWinsOnTie(t *testing.T) {
	// Both candidates hit exact keywords with identical scores; the strict
	// > comparison keeps the earlier candidate.
	match := Match([]Candidate{
		{Label: "rice plate", Prob: 0.5},
		{Label: "noodle bowl", Prob: 0.5},
	}, testCatalog)
	require.NotNil(t, match)
	assert.Equal(t, "rice_plate", match.Dish.ID)
	assert.Equal(t, "rice plate", match.MatchedLabel)
}

func TestMatchFirstWinsOnKeywordTie(t *testing.T) {
	// One candidate ties across two dishes (token overlap "fried" in both
	// "stir fried noodles" and "fried rice"); the dish enumerated first wins.
	match := Match([]Candidate{{Label: "fried octopus", Prob: 1}}, testCatalog)
	require.NotNil(t, match)
	assert.Equal(t, "noodle_bowl", match.Dish.ID)
	assert.Equal(t, "stir fried noodles", match.MatchedKeyword)
	assert.Equal(t, 0.5, match.Confidence)
}

func TestMatchPicksBestAcrossCandidates(t *testing.T) {
	match := Match([]Candidate{
		{Label: "noodle food", Prob: 0.9},  // token overlap only, 0.5 * 0.95
		{Label: "fried rice", Prob: 0.6},   // exact keyword, 1.0 * 0.8
	}, testCatalog)
	require.NotNil(t, match)
	assert.Equal(t, "rice_plate", match.Dish.ID)
	assert.Equal(t, "fried rice", match.MatchedKeyword)
	assert.Equal(t, 0.8, match.Confidence)
}

func TestMatchCopiesDishByValue(t *testing.T) {
	match := Match([]Candidate{{Label: "pad thai", Prob: 0.9}}, Dishes())
	require.NotNil(t, match)

	// Mutating the match must not reach back into the catalog.
	match.Dish.BaseCalories = 0
	dish, ok := Lookup("pad_thai")
	require.True(t, ok)
	assert.Equal(t, 400.0, dish.BaseCalories)
}

func TestDishesCatalogShape(t *testing.T) {
	all := Dishes()
	require.NotEmpty(t, all)

	seen := make(map[string]struct{}, len(all))
	for _, d := range all {
		assert.NotEmpty(t, d.ID)
		assert.NotEmpty(t, d.Keywords, "dish %s has no recognition keywords", d.ID)
		assert.GreaterOrEqual(t, d.BaseCalories, 0.0)
		_, dup := seen[d.ID]
		assert.False(t, dup, "duplicate dish id %s", d.ID)
		seen[d.ID] = struct{}{}
	}
}
