package errors

import (
	"sort"
	"strings"
)

// MaxSuggestions is the maximum number of suggestions returned by Suggest.
const MaxSuggestions = 3

// Suggest returns the candidates that are a small edit away from target,
// closest first. Exact matches are not suggestions. The allowed distance
// grows with the length of target: 1 up to three characters, 2 up to five,
// 3 beyond.
func Suggest(target string, candidates []string) []string {
	if target == "" {
		return nil
	}
	target = strings.ToLower(target)
	limit := 3
	switch n := len([]rune(target)); {
	case n <= 3:
		limit = 1
	case n <= 5:
		limit = 2
	}

	type match struct {
		value    string
		distance int
	}
	var matches []match
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if c == "" || lc == target {
			continue
		}
		if d := editDistance(target, lc); d <= limit {
			matches = append(matches, match{c, d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].value < matches[j].value
	})
	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.value
	}
	return out
}

// DidYouMean phrases suggestions as a hint, or returns "" when there are
// none.
func DidYouMean(suggestions []string) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return "did you mean '" + suggestions[0] + "'?"
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = "'" + s + "'"
	}
	return "did you mean one of " + strings.Join(quoted, ", ") + "?"
}

// editDistance is the Levenshtein distance between a and b, computed with
// two rows.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}
