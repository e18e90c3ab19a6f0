package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// Slugify turns a title into a URL-friendly slug:
// "Pão de Queijo!" becomes "pao-de-queijo".
func Slugify(title string) string {
	ascii, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		ascii = title
	}

	s := strings.ToLower(strings.TrimSpace(ascii))
	s = strings.Join(strings.Fields(s), "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > 65 {
		s = strings.TrimRight(s[:65], "-")
	}
	return s
}
