// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package model

import "github.com/google/uuid"

// TextBlock groups consecutive TextLines on a single page (spec §3,
// §4.2). Every field except SemanticRole/SecondarySemanticRole is set
// once by the Block Tokenizer and never mutated again; the two role
// fields are the one documented exception (spec §3 "Lifecycle"),
// mutable only by the Semanticizer.
type TextBlock struct {
	ID                    string
	PageNumber            int
	TextLines             []TextLine
	Rectangle             Rectangle
	CharacterStatistic    CharacterStatistic
	TextLineStatistic     TextLineStatistic
	Text                  string
	SemanticRole          SemanticRole
	SecondarySemanticRole SemanticRole
}

// NewTextBlock mints a TextBlock with a fresh ID and the default role
// (spec §4.5: "the default role is BODY_TEXT for unassigned
// non-structural blocks" — left empty here, as the Semanticizer's body
// fallback module is what actually assigns BODY_TEXT).
func NewTextBlock(pageNumber int, lines []TextLine) TextBlock {
	return TextBlock{
		ID:         uuid.NewString(),
		PageNumber: pageNumber,
		TextLines:  lines,
	}
}

// Rect implements HasPosition.
func (b TextBlock) Rect() Rectangle { return b.Rectangle }

// Position returns the block's Page+Rectangle.
func (b TextBlock) Position() Position {
	return Position{PageNumber: b.PageNumber, Rectangle: b.Rectangle}
}

// FirstLine and LastLine return the block's boundary lines, or the zero
// TextLine and false if the block has none (which should not happen for
// an emitted block, but callers at document edges need the check).
func (b TextBlock) FirstLine() (TextLine, bool) {
	if len(b.TextLines) == 0 {
		return TextLine{}, false
	}
	return b.TextLines[0], true
}

func (b TextBlock) LastLine() (TextLine, bool) {
	if len(b.TextLines) == 0 {
		return TextLine{}, false
	}
	return b.TextLines[len(b.TextLines)-1], true
}
