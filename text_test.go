package sgf

import (
	"testing"

	"github.com/y-ich/sgf/internal/test"
)

func TestDecodeText(t *testing.T) {
	samples := []struct{ raw, decoded string }{
		{"[test\\\ntest\\:\\]", "[testtest:]"},
		// Soft line breaks in every variant disappear entirely.
		{"a\\\r\nb", "ab"},
		{"a\\\n\rb", "ab"},
		{"a\\\rb", "ab"},
		// Hard line breaks stay in text values.
		{"a\nb", "a\nb"},
		{"plain", "plain"},
		{`\\`, `\`},
		{`\[\]`, "[]"},
	}
	for _, s := range samples {
		test.ExpectString(t, s.decoded, DecodeText(s.raw))
	}
}

func TestDecodeSimpleText(t *testing.T) {
	samples := []struct{ raw, decoded string }{
		{"test\ntest\r\ntest\n\rtest\rtest", "test test test test test"},
		// A soft break is removed first, so no space appears for it.
		{"one\\\ntwo\nthree", "onetwo three"},
		{"flat", "flat"},
	}
	for _, s := range samples {
		test.ExpectString(t, s.decoded, DecodeSimpleText(s.raw))
	}
}

func TestEncodeText(t *testing.T) {
	samples := []struct{ plain, encoded string }{
		{"]\\:", "\\]\\\\\\:"},
		{"no escapes", "no escapes"},
		{"a:b", `a\:b`},
		{"[ok]", `[ok\]`},
	}
	for _, s := range samples {
		test.ExpectString(t, s.encoded, EncodeText(s.plain))
	}
}

func TestEncodeDecode(t *testing.T) {
	// Encoding never reintroduces soft line breaks, so decode-encode is not
	// an identity for wrapped text; it is one for the decoded form.
	raw := "wrapped\\\nline \\] here"
	decoded := DecodeText(raw)
	test.ExpectString(t, "wrappedline ] here", decoded)
	test.ExpectString(t, `wrappedline \] here`, EncodeText(decoded))
	test.ExpectString(t, decoded, DecodeText(EncodeText(decoded)))
}
