package release

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Roman numerals II-IX after a space. A lone "I" or "X" is left alone ("I Robot", "SPY x FAMILY").
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

var articles = []string{"the ", "a ", "an "}

// CleanTitle reduces a title to a comparable form: lower case, no accents,
// no leading articles, no punctuation, single spaces, Arabic sequence numbers.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = romanNumeralRegex.ReplaceAllStringFunc(s, func(m string) string {
		return " " + romanToArabic[strings.TrimSpace(m)]
	})
	s = RemoveAccents(s)

	s = strings.NewReplacer("&", " and ", "-", " ", "'", "", ".", " ", "_", " ").Replace(s)

	// each part of "Title: Subtitle" may carry its own article
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripArticle(part)
	}
	s = strings.Join(parts, " ")

	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// RemoveAccents strips combining marks, so "Léon" becomes "Leon".
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func stripArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, a := range articles {
		if rest, ok := strings.CutPrefix(s, a); ok {
			return rest
		}
	}
	return s
}

// SearchQuery prepares a title for an indexer query: "&" becomes "and",
// whitespace collapses, case and other punctuation are kept.
func SearchQuery(title string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(title, "&", "and")), " ")
}
