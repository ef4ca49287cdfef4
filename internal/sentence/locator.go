package sentence

import "strings"

// Locate maps a possibly noisy selection onto one sentence of the sequence and
// returns its index. Matching is two-staged: substring containment in either
// direction first, then a fallback on the first and last whitespace token of
// the query. The first matching sentence wins in both stages.
func Locate(sentences []string, query string) (int, bool) {
	q := Normalize(query)
	if q == "" || len(sentences) == 0 {
		return 0, false
	}
	for i, sent := range sentences {
		if strings.Contains(sent, q) || strings.Contains(q, sent) || strings.Contains(Normalize(sent), q) {
			return i, true
		}
	}
	tokens := strings.Fields(q)
	first, last := tokens[0], tokens[len(tokens)-1]
	for i, sent := range sentences {
		if strings.Contains(sent, first) || strings.Contains(sent, last) {
			return i, true
		}
	}
	return 0, false
}
