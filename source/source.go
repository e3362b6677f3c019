// Package source defines a named input buffer and the byte offset to
// line/column mapping used for error reporting.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source is an immutable named SGF input.
// Line starts are precomputed on creation, so position lookups never rescan
// the whole buffer.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates a Source. name may be empty and is only used in error messages.
func New(name string, content []byte) *Source {
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s := &Source{name: name, content: content, lineStarts: make([]int, 1, lineCnt)}
	for i, c := range content {
		if c == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts a byte offset to a 1-based line and column.
// The line is the number of line feeds strictly before pos plus one,
// the column is the number of runes since the last line feed plus one.
// Offsets outside the buffer are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.SearchInts(s.lineStarts, pos+1) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos is a resolved position within a Source.
type Pos struct {
	src       *Source
	pos       int
	line, col int
}

// NewPos resolves a byte offset.
func NewPos(src *Source, pos int) Pos {
	line, col := src.LineCol(pos)
	return Pos{src, pos, line, col}
}

func (p Pos) SourceName() string {
	return p.src.Name()
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
