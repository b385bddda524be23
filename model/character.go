// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package model

// Character is the finest-grained positioned glyph produced by the
// Character Producer (spec §2 step 1, §6). Its Text is whatever the
// producer surfaced, including ligatures and surrogate glyph text as-is
// (spec §4.1 edge cases) — this package does not re-decode it.
type Character struct {
	PageNumber int
	Rectangle  Rectangle
	FontFace   FontFace
	Color      Color
	Text       string
	BaselineY  float64
	// Rotation is the character's rotation in degrees, normalized to
	// [0, 360). Rotated text (spec §4.1 edge case) is bucketed by this
	// value before baseline clustering, so a vertical caption doesn't
	// get merged into the horizontal body text line it happens to
	// overlap in Y.
	Rotation float64
}

// Rect implements HasPosition.
func (c Character) Rect() Rectangle { return c.Rectangle }

// Word is a run of Characters with no intervening word-break gap
// (spec §4.1).
type Word struct {
	Rectangle  Rectangle
	Characters []Character
	Text       string
}

// Rect implements HasPosition.
func (w Word) Rect() Rectangle { return w.Rectangle }

// NewWord builds a Word from consecutive characters, computing its
// bounding rectangle and concatenated text.
func NewWord(chars []Character) Word {
	rects := make([]Rectangle, len(chars))
	var text string
	for i, c := range chars {
		rects[i] = c.Rectangle
		text += c.Text
	}
	return Word{
		Rectangle:  UnionRectangles(rects),
		Characters: chars,
		Text:       text,
	}
}

// Figure is an embedded image or diagram on a page (spec §3). It has no
// text of its own; the Caption semantic module looks at a Figure's
// position to find the text block most likely describing it.
type Figure struct {
	PageNumber int
	Rectangle  Rectangle
}

// Rect implements HasPosition.
func (f Figure) Rect() Rectangle { return f.Rectangle }

// Shape is a vector graphics primitive (a stroked/filled path) on a page
// (spec §3).
type Shape struct {
	PageNumber int
	Rectangle  Rectangle
}

// Rect implements HasPosition.
func (s Shape) Rect() Rectangle { return s.Rectangle }
