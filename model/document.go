// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package model

// Page is one page of the document (spec §3): a 1-based page number, its
// dimensions, the Characters/Figures/Shapes the producer emitted for it,
// and the TextLines/TextBlocks derived from them.
type Page struct {
	Number     int
	Width      float64
	Height     float64
	Characters []Character
	Figures    []Figure
	Shapes     []Shape
	TextLines  []TextLine
	TextBlocks []TextBlock
}

// HeaderZone reports whether y (a baseline or rectangle Y) falls within
// the top fraction of the page reserved for headers.
func (p Page) HeaderZone(y, fraction float64) bool {
	if p.Height <= 0 {
		return false
	}
	return y >= p.Height*(1-fraction)
}

// FooterZone reports whether y falls within the bottom fraction of the
// page reserved for footers.
func (p Page) FooterZone(y, fraction float64) bool {
	if p.Height <= 0 {
		return false
	}
	return y <= p.Height*fraction
}

// Document is the single in-memory aggregate the whole pipeline operates
// on (spec §3, §5). Pages are in producer/reading order; the Statistic
// fields are filled by the Statistician stage and must be final before
// the Semanticizer runs (spec §5).
type Document struct {
	Pages              []Page
	CharacterStatistic CharacterStatistic
	TextLineStatistic  TextLineStatistic
	// Paragraphs is filled by the Paragraph Assembler before the
	// Semanticizer runs; each Paragraph's role is refreshed from its first
	// block once role assignment is done (spec §5: the Document is the
	// pipeline's sole long-lived aggregate).
	Paragraphs []Paragraph
}

// AllTextBlocks returns every TextBlock across every page, in document
// reading order — the input order to the Semanticizer (spec §5).
func (d *Document) AllTextBlocks() []TextBlock {
	var out []TextBlock
	for _, p := range d.Pages {
		out = append(out, p.TextBlocks...)
	}
	return out
}

// AllFigures returns every Figure across every page, in document order.
func (d *Document) AllFigures() []Figure {
	var out []Figure
	for _, p := range d.Pages {
		out = append(out, p.Figures...)
	}
	return out
}

// AllShapes returns every Shape across every page, in document order.
func (d *Document) AllShapes() []Shape {
	var out []Shape
	for _, p := range d.Pages {
		out = append(out, p.Shapes...)
	}
	return out
}

// FindPage returns a pointer to the page with the given 1-based number,
// or nil if it doesn't exist.
func (d *Document) FindPage(number int) *Page {
	for i := range d.Pages {
		if d.Pages[i].Number == number {
			return &d.Pages[i]
		}
	}
	return nil
}

// EachBlock calls fn with a pointer to every TextBlock, in document
// reading order (page order, then block order within a page), so
// callers — chiefly the Semanticizer — can mutate blocks in place.
func (d *Document) EachBlock(fn func(block *TextBlock)) {
	for pi := range d.Pages {
		page := &d.Pages[pi]
		for bi := range page.TextBlocks {
			fn(&page.TextBlocks[bi])
		}
	}
}

// BlockByID returns a pointer to the TextBlock with the given ID, or nil
// if it is not found. Used by the RoleAssignment rollback facade.
func (d *Document) BlockByID(id string) *TextBlock {
	for pi := range d.Pages {
		page := &d.Pages[pi]
		for bi := range page.TextBlocks {
			if page.TextBlocks[bi].ID == id {
				return &page.TextBlocks[bi]
			}
		}
	}
	return nil
}
