// Package sanitize cleans user supplied text before it is validated and stored.
package sanitize

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// MaxShortText is the length bound for short labels such as categories and descriptions.
const MaxShortText = 32

var strict = bluemonday.StrictPolicy()

// String removes control characters (except newline and tab) and all markup
// from s, then trims surrounding whitespace. The result is plain text: the
// entities the policy emits are decoded again, so "&" stays "&".
func String(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Length returns the number of characters in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
