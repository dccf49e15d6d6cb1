package workshop

import (
	"regexp"
	"strings"
)

type Stats struct {
	Verses  int `json:"verses"`
	Stanzas int `json:"stanzas"`
}

var stanzaBreak = regexp.MustCompile(`\n[ \t]*\n`)

// Derive counts non-blank lines as verses and non-blank blocks separated by a
// blank line as stanzas.
func Derive(text string) Stats {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var st Stats
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			st.Verses++
		}
	}
	for _, block := range stanzaBreak.Split(text, -1) {
		if strings.TrimSpace(block) != "" {
			st.Stanzas++
		}
	}
	return st
}
