package models

import "strings"

// Cursor is a position inside the document. Line is 1-based, Col is a
// 0-based byte offset within the line.
type Cursor struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Clamp returns a copy of the cursor with Line forced into [1, lineCount].
// Col is passed through uncorrected; consumers clamp it against the actual
// line when they need to.
func (c Cursor) Clamp(lineCount int) Cursor {
	if c.Line < 1 {
		c.Line = 1
	}
	if lineCount >= 1 && c.Line > lineCount {
		c.Line = lineCount
	}
	return c
}

// Document is the local mirror of a single basket entry.
//
// SavedContent is the last content confirmed round-tripped through the
// remote store (or freshly loaded from it); nil until the first load.
// UnsavedContent is a snapshot taken when the editing surface is torn down
// while dirty; it is never authoritative while the surface is live.
type Document struct {
	SavedContent   *string
	UnsavedContent *string
	Dirty          bool
	Cursor         Cursor
}

// LineCount returns the number of lines in text (1 for the empty string).
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}
