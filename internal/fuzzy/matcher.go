package fuzzy

import (
	"sort"
	"strings"
)

// Suggestion is a candidate close to what the user typed
type Suggestion struct {
	Text     string
	Score    int
	Distance int
	Index    int
}

// Score rates how well pattern matches text as an in-order subsequence,
// from 0 (no match) to 100 (equal ignoring case).
func Score(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	p := []rune(strings.ToLower(pattern))
	t := []rune(strings.ToLower(text))

	if string(p) == string(t) {
		return 100
	}
	if len(p) > len(t) {
		return 0
	}

	positions := subsequencePositions(p, t)
	if positions == nil {
		return 0
	}

	score := 50.0
	score += float64(len(p)) / float64(len(t)) * 25.0

	if positions[0] == 0 {
		score += 12.0
	}

	run := longestRun(positions)
	score += float64(run) / float64(len(p)) * 20.0
	score -= float64(len(p)-run) * 4.0
	score -= float64(len(t)-len(p)) * 0.5

	return min(max(int(score), 0), 100)
}

func subsequencePositions(p, t []rune) []int {
	positions := make([]int, 0, len(p))
	pi := 0
	for ti := 0; pi < len(p) && ti < len(t); ti++ {
		if p[pi] == t[ti] {
			positions = append(positions, ti)
			pi++
		}
	}
	if pi < len(p) {
		return nil
	}
	return positions
}

func longestRun(positions []int) int {
	best, cur := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			cur++
			best = max(best, cur)
		} else {
			cur = 1
		}
	}
	return best
}

// Distance is the edit distance between a and b counting an adjacent swap
// as one edit. Case is ignored.
func Distance(a, b string) int {
	s := []rune(strings.ToLower(a))
	t := []rune(strings.ToLower(b))

	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}

	for i := 1; i <= len(s); i++ {
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && s[i-1] == t[j-2] && s[i-2] == t[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+1)
			}
		}
	}
	return d[len(s)][len(t)]
}

// Suggest returns up to limit candidates that look like a typo or an
// abbreviation of input, best first.
func Suggest(input string, candidates []string, limit int) []Suggestion {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	results := make([]Suggestion, 0, len(candidates))
	for i, c := range candidates {
		s := Suggestion{Text: c, Score: Score(input, c), Distance: Distance(input, c), Index: i}
		maxEdits := max(1, len([]rune(c))/3)
		if s.Score >= 60 || s.Distance <= maxEdits {
			results = append(results, s)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// DidYouMean formats the best suggestion, or returns "" when nothing is close.
func DidYouMean(input string, candidates []string) string {
	best := Suggest(input, candidates, 1)
	if len(best) == 0 {
		return ""
	}
	return "did you mean \"" + best[0].Text + "\"?"
}
