package search

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// pricePatterns capture an implicit maximum-price constraint, e.g.
// "laptops under $600", "below 500", "max $1000".
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`under\s*\$?(\d+)`),
	regexp.MustCompile(`below\s*\$?(\d+)`),
	regexp.MustCompile(`less than\s*\$?(\d+)`),
	regexp.MustCompile(`cheaper than\s*\$?(\d+)`),
	regexp.MustCompile(`max\s*\$?(\d+)`),
	regexp.MustCompile(`maximum\s*\$?(\d+)`),
}

// ExtractPriceCeiling scans the query for a maximum-price constraint and
// returns the first match as a ceiling. Pure function of the query text.
func ExtractPriceCeiling(query string) (float64, bool) {
	q := strings.ToLower(query)
	for _, re := range pricePatterns {
		if m := re.FindStringSubmatch(q); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			return v, true
		}
	}
	return 0, false
}

// categoryKeywords maps canonical category tokens to the surface synonyms
// that count as a category match on product fields.
var categoryKeywords = map[string][]string{
	"laptop":     {"laptop", "notebook", "computer"},
	"keyboard":   {"keyboard"},
	"mouse":      {"mouse"},
	"monitor":    {"monitor", "display", "screen"},
	"desk":       {"desk"},
	"chair":      {"chair", "seating"},
	"headset":    {"headset", "headphone"},
	"webcam":     {"webcam", "camera"},
	"microphone": {"microphone", "mic"},
}

// ExtractCategoryKeywords returns the union of synonyms for every canonical
// category token present in the query. Multiple categories may match; the
// result is empty when none do. Pure function of the query text.
func ExtractCategoryKeywords(query string) []string {
	q := strings.ToLower(query)

	seen := make(map[string]struct{})
	for token, synonyms := range categoryKeywords {
		if !strings.Contains(q, token) {
			continue
		}
		for _, s := range synonyms {
			seen[s] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	keywords := make([]string, 0, len(seen))
	for k := range seen {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}
