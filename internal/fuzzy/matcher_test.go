package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sectionKeys = []string{"general", "connections", "security", "appearance", "shortcuts", "notifications", "labels"}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		text     string
		minScore int
		maxScore int
	}{
		{name: "exact", pattern: "labels", text: "labels", minScore: 100, maxScore: 100},
		{name: "exact mixed case", pattern: "Labels", text: "labels", minScore: 100, maxScore: 100},
		{name: "prefix", pattern: "appear", text: "appearance", minScore: 85, maxScore: 100},
		{name: "scattered", pattern: "ntf", text: "notifications", minScore: 1, maxScore: 80},
		{name: "not a subsequence", pattern: "xyz", text: "security", minScore: 0, maxScore: 0},
		{name: "longer than text", pattern: "generalities", text: "general", minScore: 0, maxScore: 0},
		{name: "empty pattern", pattern: "", text: "general", minScore: 0, maxScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Score(tt.pattern, tt.text)
			assert.GreaterOrEqual(t, score, tt.minScore)
			assert.LessOrEqual(t, score, tt.maxScore)
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"dark", "dark", 0},
		{"dakr", "dark", 1},
		{"ligth", "light", 1},
		{"sytem", "system", 1},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"-"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "apperance", want: "appearance"},
		{input: "genral", want: "general"},
		{input: "notifs", want: "notifications"},
		{input: "securty", want: "security"},
		{input: "Labels", want: "labels"},
		{input: "lables", want: "labels"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Suggest(tt.input, sectionKeys, 1)
			if assert.Len(t, got, 1) {
				assert.Equal(t, tt.want, got[0].Text)
			}
		})
	}

	assert.Empty(t, Suggest("billing", sectionKeys, 3))
	assert.Empty(t, Suggest("  ", sectionKeys, 3))
}

func TestDidYouMean(t *testing.T) {
	assert.Equal(t, `did you mean "dark"?`, DidYouMean("drak", []string{"dark", "system", "light"}))
	assert.Equal(t, "", DidYouMean("neon", []string{"dark", "system", "light"}))
}
