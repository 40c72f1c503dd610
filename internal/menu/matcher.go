package menu

// ConfidenceFloor is the minimum combined score required to accept a match.
// Below it the matcher refuses to guess and returns nil.
const ConfidenceFloor = 0.35

// Candidate is one (label, probability) pair from the image recognizer.
// A missing probability is treated as 0.
type Candidate struct {
	Label string  `json:"name"`
	Prob  float64 `json:"prob"`
}

// DishMatch is the best catalog match for a set of recognition candidates.
// The dish is copied by value so later catalog edits cannot change a log
// entry that already references it.
type DishMatch struct {
	Dish           Dish    `json:"dish"`
	MatchedLabel   string  `json:"matched_name"`
	MatchedKeyword string  `json:"matched_keyword"`
	Confidence     float64 `json:"confidence"`
}

// Match cross-scores every candidate against every keyword of every dish in
// catalog and returns the highest-scoring triple, or nil when there are no
// candidates or the best combined score is below ConfidenceFloor. The catalog
// is an explicit parameter; production callers pass Dishes().
//
// The combined score blends lexical similarity with the recognizer's own
// probability: sim * (0.5 + prob*0.5). The 0.5 baseline keeps a perfect
// textual match from being zeroed out by a low-probability candidate.
//
// Enumeration order is candidates, then dishes, then keywords; the strict
// greater-than comparison means the first triple reaching the maximum wins,
// so results are deterministic for a fixed catalog.
func Match(candidates []Candidate, catalog []Dish) *DishMatch {
	if len(candidates) == 0 {
		return nil
	}

	var best *DishMatch

	for _, c := range candidates {
		for _, dish := range catalog {
			for _, kw := range dish.Keywords {
				sim := Similarity(c.Label, kw)
				score := sim * (0.5 + c.Prob*0.5)

				if best == nil || score > best.Confidence {
					best = &DishMatch{
						Dish:           dish,
						MatchedLabel:   c.Label,
						MatchedKeyword: kw,
						Confidence:     score,
					}
				}
			}
		}
	}

	if best == nil || best.Confidence < ConfidenceFloor {
		return nil
	}

	return best
}
