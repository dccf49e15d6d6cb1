package workshop

import (
	"regexp"
	"strings"

	"github.com/saulo-duarte/oficina-poemas/internal/spelling"
)

// Word characters are letters, combining marks, digits and underscore of any
// script, so "ão" inside "verão" is never a separate word.
const wordChar = `\p{L}\p{M}\p{N}_`

func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^` + wordChar + `])(` + regexp.QuoteMeta(word) + `)(?:[^` + wordChar + `]|$)`)
}

// ApplyCorrection replaces the first whole-word, case-insensitive occurrence of
// c.Original on verse c.VerseNumber with suggestion. It reports false and
// returns text untouched when the verse or the word is missing, or when the
// suggestion would break the line.
func ApplyCorrection(text string, c spelling.Correction, suggestion string) (string, bool) {
	if c.Original == "" || c.VerseNumber < 1 || strings.ContainsAny(suggestion, "\r\n") {
		return text, false
	}

	lines := strings.Split(text, "\n")
	idx := c.VerseNumber - 1
	if idx >= len(lines) {
		return text, false
	}

	loc := wordPattern(c.Original).FindStringSubmatchIndex(lines[idx])
	if loc == nil {
		return text, false
	}

	start, end := loc[2], loc[3]
	lines[idx] = lines[idx][:start] + suggestion + lines[idx][end:]
	return strings.Join(lines, "\n"), true
}
