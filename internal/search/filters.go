package search

import (
	"sort"
	"strings"
)

// Field weights for category matching. A keyword found in the product name is
// the strongest signal, the category field the weakest.
const (
	nameMatchWeight        = 3
	descriptionMatchWeight = 2
	categoryMatchWeight    = 1
)

// categoryMatchScore sums per-field match indicators times the field weight
// over all keywords. Each keyword contributes at most once per field.
func categoryMatchScore(c Candidate, keywords []string) int {
	name := strings.ToLower(c.Name)
	description := strings.ToLower(c.Description)
	category := strings.ToLower(c.Category)

	score := 0
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			score += nameMatchWeight
		}
		if strings.Contains(description, kw) {
			score += descriptionMatchWeight
		}
		if strings.Contains(category, kw) {
			score += categoryMatchWeight
		}
	}
	return score
}

// FilterByCategory restricts candidates to ones whose textual fields match
// the extracted keywords, ordered by (match score desc, similarity desc).
// An empty keyword set passes candidates through unchanged. The result may be
// empty; the caller decides whether to degrade to the unfiltered list.
func FilterByCategory(candidates []Candidate, keywords []string) []Candidate {
	if len(keywords) == 0 {
		return candidates
	}

	filtered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		score := categoryMatchScore(c, keywords)
		if score == 0 {
			continue
		}
		c.MatchScore = score
		filtered = append(filtered, c)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].MatchScore != filtered[j].MatchScore {
			return filtered[i].MatchScore > filtered[j].MatchScore
		}
		return filtered[i].Similarity > filtered[j].Similarity
	})
	return filtered
}

// FilterByPrice retains candidates priced at or below the ceiling. A ceiling
// of zero or less means no constraint. The result may be empty; the caller
// decides whether to degrade to the pre-filter list.
func FilterByPrice(candidates []Candidate, ceiling float64) []Candidate {
	if ceiling <= 0 {
		return candidates
	}

	filtered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Price <= ceiling {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
