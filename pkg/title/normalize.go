// Package title normalises movie titles and picks the closest match
// among search results.
package title

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// trailingYear matches a release year at the end of a query, optionally in parentheses.
var trailingYear = regexp.MustCompile(`\s*\(?((?:19|20)\d{2})\)?\s*$`)

// Clean normalises a title for comparison.
// It lowercases, strips accents and punctuation, drops a leading article
// from each colon-separated part and collapses whitespace.
func Clean(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", " ")

	// "Léon: The Professional" -> "leon professional"
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeQuery prepares free text for an upstream search.
// Unlike Clean it keeps case and punctuation; it only composes
// Unicode (NFC) and collapses whitespace.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(norm.NFC.String(query)), " ")
}

// SplitYear separates a trailing year from a query.
// "Dune (2021)" returns ("Dune", "2021"); a query that is only a year is left alone.
func SplitYear(query string) (string, string) {
	m := trailingYear.FindStringSubmatchIndex(query)
	if m == nil || m[0] == 0 {
		return strings.TrimSpace(query), ""
	}
	return strings.TrimSpace(query[:m[0]]), query[m[2]:m[3]]
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
