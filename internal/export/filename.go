package export

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const PlaceholderName = "poema"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug folds accents, lowercases and collapses every run of non-alphanumeric
// characters into one underscore. Titles without letters or digits yield
// PlaceholderName.
func Slug(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}

	slug := nonAlnum.ReplaceAllString(strings.ToLower(folded), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return PlaceholderName
	}
	return slug
}

func Filename(title string) string {
	return Slug(title) + ".pdf"
}
