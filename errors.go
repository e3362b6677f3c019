package sgf

import (
	"strconv"
	"strings"
)

// ParseError reports the furthest input position the parser could reach and
// every token that would have allowed progress past it. It is the only error
// type returned by Parse; a duplicated property identifier surfaces through it
// as well, with "duplicated properties" in Expected.
type ParseError struct {
	// SourceName is the name passed to source.New, or empty.
	SourceName string

	// Line and Col are 1-based.
	Line, Col int

	// Offset is the byte offset of the furthest failure.
	Offset int

	// Expected lists descriptions of tokens expected at Offset, sorted.
	Expected []string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse error")
	if e.SourceName != "" {
		b.WriteString(" in ")
		b.WriteString(e.SourceName)
	}
	b.WriteString(" at line ")
	b.WriteString(strconv.Itoa(e.Line))
	b.WriteString(" col ")
	b.WriteString(strconv.Itoa(e.Col))
	b.WriteString(": expected ")

	switch len(e.Expected) {
	case 0:
		b.WriteString("EOF")
	case 1:
		b.WriteString(strconv.Quote(e.Expected[0]))
	default:
		b.WriteString("one of ")
		for i, s := range e.Expected {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(s))
		}
	}
	return b.String()
}
