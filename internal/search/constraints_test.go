package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPriceCeiling(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    float64
		wantOK  bool
	}{
		{name: "under with dollar sign", query: "laptops under $600", want: 600, wantOK: true},
		{name: "under without dollar sign", query: "laptops under 600", want: 600, wantOK: true},
		{name: "below", query: "show me chairs below $300", want: 300, wantOK: true},
		{name: "less than", query: "headphones less than 250", want: 250, wantOK: true},
		{name: "cheaper than", query: "something cheaper than $150", want: 150, wantOK: true},
		{name: "max", query: "max $1000 please", want: 1000, wantOK: true},
		{name: "maximum", query: "maximum 500", want: 500, wantOK: true},
		{name: "mixed case", query: "Laptops UNDER $600", want: 600, wantOK: true},
		{name: "no constraint", query: "wireless headphones", wantOK: false},
		{name: "price without cue word", query: "the $600 laptop", wantOK: false},
		{name: "empty query", query: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPriceCeiling(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExtractCategoryKeywords(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "laptop synonyms", query: "a laptop for school", want: []string{"computer", "laptop", "notebook"}},
		{name: "chair synonyms", query: "ergonomic chair", want: []string{"chair", "seating"}},
		{name: "plural still contains token", query: "gaming laptops under $600", want: []string{"computer", "laptop", "notebook"}},
		{name: "multiple categories union", query: "desk and chair combo", want: []string{"chair", "desk", "seating"}},
		{name: "case insensitive", query: "LAPTOP", want: []string{"computer", "laptop", "notebook"}},
		{name: "no category", query: "something nice for my office setup", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCategoryKeywords(tt.query))
		})
	}
}
