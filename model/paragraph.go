// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package model

import "github.com/google/uuid"

// Paragraph is a logical reading unit spanning one or more TextBlocks,
// possibly across pages (spec §3). It borrows Words from its member
// TextBlocks and records the Position (Page + Rectangle) of every
// TextBlock it covers, in order.
type Paragraph struct {
	ID           string
	Words        []Word
	Positions    []Position
	SemanticRole SemanticRole
	Text         string
}

// NewParagraph builds a Paragraph from its member blocks, in the order
// they were merged.
func NewParagraph(blocks []TextBlock) Paragraph {
	p := Paragraph{ID: uuid.NewString()}
	if len(blocks) > 0 {
		p.SemanticRole = blocks[0].SemanticRole
	}
	for _, b := range blocks {
		p.Positions = append(p.Positions, b.Position())
		for _, line := range b.TextLines {
			p.Words = append(p.Words, line.Words...)
		}
	}
	return p
}
