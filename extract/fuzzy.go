package extract

import "strings"

// minRatio is the minimum similarity a candidate must reach to be suggested.
const minRatio = 0.7

// Suggest finds the closest known candidate for a noisy input value using a
// normalized edit-distance ratio with case-insensitive comparison. When no
// whole candidate clears the threshold, a second pass compares against the
// local part of each candidate (text before the first '@'), mapping a hit
// back to the full candidate. The first-ranked match wins ties. Returns
// false when either input is empty or nothing clears the threshold.
func Suggest(value string, candidates []string) (string, bool) {
	if value == "" || len(candidates) == 0 {
		return "", false
	}

	needle := strings.ToLower(value)

	whole := make([]string, len(candidates))
	for i, c := range candidates {
		whole[i] = strings.ToLower(c)
	}
	if idx, ok := bestMatch(needle, whole); ok {
		return candidates[idx], true
	}

	locals := make([]string, len(candidates))
	for i, c := range candidates {
		local := c
		if at := strings.Index(c, "@"); at > 0 {
			local = c[:at]
		}
		locals[i] = strings.ToLower(local)
	}
	if idx, ok := bestMatch(needle, locals); ok {
		return candidates[idx], true
	}

	return "", false
}

// bestMatch returns the index of the highest-ratio candidate at or above the
// threshold. Earlier candidates win ties.
func bestMatch(value string, candidates []string) (int, bool) {
	best := -1
	var bestRatio float64
	for i, c := range candidates {
		r := ratio(value, c)
		if r < minRatio {
			continue
		}
		if best == -1 || r > bestRatio {
			best, bestRatio = i, r
		}
	}
	return best, best >= 0
}

// ratio converts an edit distance into a 0..1 similarity score.
func ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes the edit distance between two strings using two rows
// instead of the full matrix.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Keep b the shorter string so the rows stay small.
	if len(a) < len(b) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				min(prev[j]+1, curr[j-1]+1), // deletion or insertion
				prev[j-1]+cost,              // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
