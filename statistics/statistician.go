// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package statistics

import "github.com/sassoftware/pdf-structure/model"

// Statistician composes the Character and TextLine statisticians to fill
// in the document-level statistics that the Block Tokenizer and
// Semanticizer require to be final before they run (spec §5).
type Statistician struct {
	characters CharacterStatistician
	textLines  TextLineStatistician
}

// NewStatistician returns a ready-to-use Statistician.
func NewStatistician() Statistician {
	return Statistician{}
}

// PageFontSize returns the page's most-common FontFace's font size, the
// value the Line Tokenizer scales its baseline-clustering tolerance by
// (spec §4.1).
func (s Statistician) PageFontSize(characters []model.Character) float64 {
	stat := s.characters.FromCharacters(characters)
	return stat.MostCommonFontFace.FontSize
}

// ComputeDocument fills in Document.CharacterStatistic and
// Document.TextLineStatistic from its pages' TextLines, which must
// already exist (i.e. this runs after the Line Tokenizer and before the
// Block Tokenizer, per spec §5: "Statistics that cross pages must be
// computed in a dedicated aggregation step after per-page stages
// complete").
func (s Statistician) ComputeDocument(doc *model.Document) {
	var pageStats []model.CharacterStatistic
	for _, page := range doc.Pages {
		pageStats = append(pageStats, s.characters.FromCharacters(page.Characters))
	}
	doc.CharacterStatistic = s.characters.Merge(pageStats)
	doc.TextLineStatistic = s.textLines.ComputeDocument(doc.Pages)
}

// ComputeBlock fills in a TextBlock's CharacterStatistic and
// TextLineStatistic from its member lines (spec §4.2: "For each emitted
// block, compute: character statistic ... line-pitch statistic ...").
func (s Statistician) ComputeBlock(block *model.TextBlock) {
	var lineStats []model.CharacterStatistic
	for _, line := range block.TextLines {
		lineStats = append(lineStats, line.CharacterStatistic)
	}
	block.CharacterStatistic = s.characters.Merge(lineStats)
	block.TextLineStatistic = s.textLines.Compute(block.TextLines)
}

// ComputeLine fills in a TextLine's CharacterStatistic from its words'
// characters.
func (s Statistician) ComputeLine(line *model.TextLine) {
	line.CharacterStatistic = s.characters.FromCharacters(line.Characters())
}
