package sgf

import (
	"regexp"
)

// A soft line break is a backslash immediately followed by a line break; it
// means "no break here" and decodes to nothing. A hard line break is any of
// the same four sequences without a backslash.
var (
	softBreakRe = regexp.MustCompile(`\\(\r\n|\n\r|\n|\r)`)
	escapeRe    = regexp.MustCompile(`\\(.)`)
	hardBreakRe = regexp.MustCompile(`\r\n|\n\r|\n|\r`)
	encodeRe    = regexp.MustCompile(`([\]\\:])`)
)

// DecodeText decodes a raw text property value: soft line breaks are removed
// first, then every remaining backslash-char pair is replaced by the char
// alone. The order is load-bearing: run generic unescaping first and a soft
// break would decode to a literal line break instead of disappearing.
func DecodeText(s string) Text {
	s = softBreakRe.ReplaceAllString(s, "")
	return escapeRe.ReplaceAllString(s, "$1")
}

// DecodeSimpleText decodes a raw simple-text property value: DecodeText,
// then every remaining hard line break becomes a single space. Simple text
// is single-line by definition.
func DecodeSimpleText(s string) SimpleText {
	return hardBreakRe.ReplaceAllString(DecodeText(s), " ")
}

// EncodeText escapes "]", "\" and ":" with a backslash so the result can be
// stored as a raw property value. Soft line breaks are never reintroduced,
// so EncodeText is not an inverse of DecodeText for wrapped multi-line text.
func EncodeText(s string) string {
	return encodeRe.ReplaceAllString(s, `\$1`)
}
