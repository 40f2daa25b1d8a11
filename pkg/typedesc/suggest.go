package typedesc

import "strings"

// maxSuggestDistance bounds how far a misspelling may be from a keyword
// before no suggestion is offered.
const maxSuggestDistance = 2

// suggestName returns the accepted type name closest to word, or "" when
// nothing is within maxSuggestDistance edits. Ties go to the name listed
// first.
func suggestName(word string) string {
	word = strings.ToLower(word)
	best, bestDist := "", maxSuggestDistance+1
	for _, name := range knownNames() {
		if d := editDistance(word, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
