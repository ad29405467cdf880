package match

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// Normalize case-folds s and drops the separators people use
// interchangeably in identifiers ("native_handle", "Native-Handle" and
// "nativeHandle" all become "nativehandle").
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// Candidate is a known name together with its distance to the queried one.
type Candidate struct {
	Name     string
	Distance int
}

// Rank orders candidates by their normalized distance to name, closest
// first. Ties keep the order of candidates.
func Rank(name string, candidates []string) []Candidate {
	norm := Normalize(name)

	ranked := make([]Candidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = Candidate{Name: c, Distance: Levenshtein(norm, Normalize(c))}
	}

	slices.SortStableFunc(ranked, func(a, b Candidate) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return ranked
}

// Suggest returns the candidate closest to name, or "" when even the best
// one needs more edits than a third of name's length (at least one edit is
// always tolerated).
func Suggest(name string, candidates []string) string {
	ranked := Rank(name, candidates)
	if len(ranked) == 0 {
		return ""
	}

	budget := max(1, len([]rune(Normalize(name)))/3)
	if best := ranked[0]; best.Distance <= budget {
		return best.Name
	}

	return ""
}
