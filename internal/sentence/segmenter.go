package sentence

import (
	"strings"
	"unicode"
)

// DefaultAbbreviations lists tokens that end with a period without ending a
// sentence. Multi-dot abbreviations ("U.S.", "e.g.") are covered token-by-token
// through the single-letter entries. The list is deliberately not exhaustive:
// abbreviations outside it ("Ph.D.") will mis-split. Callers can pass their own
// map to NewSegmenter to extend it for other languages.
var DefaultAbbreviations = map[string]bool{
	// titles
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true, "sr": true, "jr": true,
	// latin / general
	"vs": true, "etc": true, "viz": true, "al": true, "eg": true, "ie": true, "cf": true,
	"approx": true, "appt": true, "apt": true, "dept": true, "est": true, "min": true,
	"max": true, "misc": true, "no": true, "nos": true, "vol": true, "vols": true,
	"rev": true, "pp": true, "pg": true,
	// months
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true, "jul": true,
	"aug": true, "sep": true, "sept": true, "oct": true, "nov": true, "dec": true,
	// weekdays
	"mon": true, "tue": true, "wed": true, "thu": true, "fri": true, "sat": true, "sun": true,
	// organizational
	"inc": true, "corp": true, "ltd": true, "co": true, "ave": true, "blvd": true,
	"st": true, "rd": true,
	// single letters seen in dotted abbreviations
	"u": true, "s": true, "a": true, "e": true, "g": true, "i": true,
}

// Segmenter splits natural-language text into sentences using punctuation plus
// a heuristic abbreviation/decimal/ellipsis exception list.
type Segmenter struct {
	abbreviations map[string]bool
}

func NewSegmenter(abbreviations map[string]bool) *Segmenter {
	if abbreviations == nil {
		abbreviations = DefaultAbbreviations
	}
	return &Segmenter{abbreviations: abbreviations}
}

// Segment splits text into an ordered list of trimmed sentences. Concatenation
// order matches the original text; empty input yields nil; text without
// terminal punctuation yields a single sentence.
func (s *Segmenter) Segment(text string) []string {
	runes := []rune(Normalize(text))
	if len(runes) == 0 {
		return nil
	}
	var sentences []string
	var buf []rune
	i := 0
	for i < len(runes) {
		buf = append(buf, runes[i])
		if isTerminator(runes[i]) {
			if next, ok := s.boundaryAt(runes, i, buf); ok {
				if sent := strings.TrimSpace(string(buf)); sent != "" {
					sentences = append(sentences, sent)
				}
				buf = buf[:0]
				i = next
				continue
			}
		}
		i++
	}
	if sent := strings.TrimSpace(string(buf)); sent != "" {
		sentences = append(sentences, sent)
	}
	return sentences
}

func isTerminator(r rune) bool { return r == '.' || r == '?' || r == '!' }

// boundaryAt decides whether the terminator at runes[i] ends a sentence. The
// rule is uniform for '.', '?' and '!': the mark must be followed by at least
// one whitespace rune and then an upper-case letter, and none of the rejection
// heuristics may fire. On acceptance it returns the index of the first rune of
// the next sentence (the whitespace run is skipped, the upper-case letter is not).
func (s *Segmenter) boundaryAt(runes []rune, i int, buf []rune) (int, bool) {
	// Inside a run of terminators ("..", "?!") only the last mark may trigger.
	if i+1 < len(runes) && isTerminator(runes[i+1]) {
		return 0, false
	}
	j := i + 1
	for j < len(runes) && unicode.IsSpace(runes[j]) {
		j++
	}
	if j == i+1 || j >= len(runes) {
		return 0, false
	}
	// Decimal numbers split across whitespace, e.g. "3. 14".
	if i > 0 && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[j]) {
		return 0, false
	}
	if !unicode.IsUpper(runes[j]) {
		return 0, false
	}
	if s.abbreviationBefore(buf) {
		return 0, false
	}
	return j, true
}

// abbreviationBefore reports whether the buffer (which includes the triggering
// period as its last rune) ends in a known abbreviation.
func (s *Segmenter) abbreviationBefore(buf []rune) bool {
	token := lastToken(string(buf[:len(buf)-1]))
	if token == "" {
		return false
	}
	lower := strings.ToLower(token)
	if s.abbreviations[lower] {
		return true
	}
	// Dotted abbreviations are checked segment-wise: the token before the
	// second period of "U.S." is "U.S", whose final segment is "S".
	if k := strings.LastIndex(lower, "."); k >= 0 && s.abbreviations[lower[k+1:]] {
		return true
	}
	// Any single letter reads as an initial, listed or not.
	r := []rune(token)
	return len(r) == 1 && unicode.IsLetter(r[0])
}

func lastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Normalize folds consecutive whitespace runs to single spaces and trims the ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
