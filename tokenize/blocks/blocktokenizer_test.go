// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sassoftware/pdf-structure/model"
)

func testLine(minX, baselineY, width, height float64, f model.FontFace, text string) model.TextLine {
	return model.TextLine{
		PageNumber: 1,
		Rectangle:  model.NewRectangle(minX, baselineY, minX+width, baselineY+height),
		Baseline:   model.Line{StartX: minX, StartY: baselineY, EndX: minX + width, EndY: baselineY},
		CharacterStatistic: model.CharacterStatistic{
			MostCommonFontFace: f,
		},
		Text: text,
	}
}

func docWithPitch(f model.FontFace, pitch float64) *model.Document {
	return &model.Document{
		TextLineStatistic: model.NewTextLineStatistic(map[model.FontFaceKey]float64{
			f.Key(): pitch,
		}),
	}
}

func TestTokenize_ConsecutiveLinesAtExpectedPitchStayInOneBlock(t *testing.T) {
	f := model.FontFace{Font: model.Font{FamilyName: "Times"}, FontSize: 10}
	doc := docWithPitch(f, 12)
	lines := []model.TextLine{
		testLine(100, 700, 50, 10, f, "First line of the paragraph"),
		testLine(100, 688, 50, 10, f, "continues right below it"),
		testLine(100, 676, 50, 10, f, "and keeps going."),
	}
	page := model.Page{Number: 1, TextLines: lines}

	blocks := New(DefaultConfig()).Tokenize(page, doc)

	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0].TextLines, 3)
}

func TestTokenize_PitchJustWithinToleranceStaysOneBlock(t *testing.T) {
	// expected pitch 10.0, tolerance 1.5 -> actual 11.5 does not fire rule 5
	// (11.5 - 10.0 = 1.5, which is not strictly greater than the threshold).
	f := model.FontFace{Font: model.Font{FamilyName: "Times"}, FontSize: 10}
	doc := docWithPitch(f, 10)
	lines := []model.TextLine{
		testLine(100, 700, 50, 10, f, "Line one"),
		testLine(100, 700-11.5, 50, 10, f, "Line two"),
	}
	page := model.Page{Number: 1, TextLines: lines}

	blocks := New(DefaultConfig()).Tokenize(page, doc)

	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0].TextLines, 2)
}

func TestTokenize_PitchJustOverToleranceStartsNewBlock(t *testing.T) {
	// expected pitch 10.0, tolerance 1.5 -> actual 11.6 fires rule 5
	// (11.6 - 10.0 = 1.6 > 1.5).
	f := model.FontFace{Font: model.Font{FamilyName: "Times"}, FontSize: 10}
	doc := docWithPitch(f, 10)
	lines := []model.TextLine{
		testLine(100, 700, 50, 10, f, "Line one"),
		testLine(100, 700-11.6, 50, 10, f, "Line two"),
	}
	page := model.Page{Number: 1, TextLines: lines}

	blocks := New(DefaultConfig()).Tokenize(page, doc)

	require.Len(t, blocks, 2)
}

func TestTokenize_NoHorizontalOverlapStartsNewBlock(t *testing.T) {
	f := model.FontFace{Font: model.Font{FamilyName: "Times"}, FontSize: 10}
	doc := docWithPitch(f, 12)
	lines := []model.TextLine{
		testLine(0, 700, 50, 10, f, "Left column text"),
		testLine(300, 688, 50, 10, f, "Right column text"),
	}
	page := model.Page{Number: 1, TextLines: lines}

	blocks := New(DefaultConfig()).Tokenize(page, doc)

	require.Len(t, blocks, 2)
}

func TestTokenize_IndentedLineStartsNewBlock(t *testing.T) {
	f := model.FontFace{Font: model.Font{FamilyName: "Times"}, FontSize: 10}
	doc := docWithPitch(f, 12)
	lines := []model.TextLine{
		testLine(100, 700, 50, 10, f, "Heading text here"),
		testLine(120, 688, 50, 10, f, "Indented body start"),
		testLine(100, 676, 50, 10, f, "back at the margin"),
	}
	page := model.Page{Number: 1, TextLines: lines}

	blocks := New(DefaultConfig()).Tokenize(page, doc)

	require.Len(t, blocks, 2)
	assert.Len(t, blocks[0].TextLines, 1)
	assert.Len(t, blocks[1].TextLines, 2)
}

func TestTokenize_FontFaceChangeStartsNewBlock(t *testing.T) {
	f1 := model.FontFace{Font: model.Font{FamilyName: "Times"}, FontSize: 10}
	f2 := model.FontFace{Font: model.Font{FamilyName: "Times", IsBold: true}, FontSize: 14}
	doc := docWithPitch(f1, 12)
	lines := []model.TextLine{
		testLine(100, 700, 50, 10, f1, "Regular body text"),
		testLine(100, 680, 80, 14, f2, "A Bold Heading"),
	}
	page := model.Page{Number: 1, TextLines: lines}

	blocks := New(DefaultConfig()).Tokenize(page, doc)

	require.Len(t, blocks, 2)
}

func TestTokenize_ReferenceAnchorWithShiftedNeighborsStartsNewBlock(t *testing.T) {
	f := model.FontFace{Font: model.Font{FamilyName: "Times"}, FontSize: 10}
	doc := docWithPitch(f, 12)
	lines := []model.TextLine{
		testLine(115, 700, 200, 10, f, "continuation of the previous entry"),
		testLine(100, 688, 200, 10, f, "[1] First entry in the bibliography"),
		testLine(115, 676, 200, 10, f, "continuation of the first entry"),
	}
	page := model.Page{Number: 1, TextLines: lines}

	blocks := New(DefaultConfig()).Tokenize(page, doc)

	require.Len(t, blocks, 2)
	assert.Equal(t, "[1] First entry in the bibliography", blocks[1].TextLines[0].Text)
}

func TestTokenize_ReferenceAnchorAlignedWithNeighborsDoesNotStartNewBlock(t *testing.T) {
	f := model.FontFace{Font: model.Font{FamilyName: "Times"}, FontSize: 10}
	doc := docWithPitch(f, 12)
	lines := []model.TextLine{
		testLine(100, 700, 200, 10, f, "Some prior line ending a reference."),
		testLine(100, 688, 200, 10, f, "[1] First entry in the bibliography"),
		testLine(100, 676, 200, 10, f, "continuation at the same margin"),
	}
	page := model.Page{Number: 1, TextLines: lines}

	blocks := New(DefaultConfig()).Tokenize(page, doc)

	require.Len(t, blocks, 1)
}

func TestTokenize_EmptyPageYieldsNoBlocks(t *testing.T) {
	blocks := New(DefaultConfig()).Tokenize(model.Page{Number: 1}, &model.Document{})
	assert.Empty(t, blocks)
}

func TestTokenize_SingleLineYieldsOneBlock(t *testing.T) {
	f := model.FontFace{Font: model.Font{FamilyName: "Times"}, FontSize: 10}
	page := model.Page{Number: 1, TextLines: []model.TextLine{
		testLine(100, 700, 50, 10, f, "Only line"),
	}}

	blocks := New(DefaultConfig()).Tokenize(page, &model.Document{})

	require.Len(t, blocks, 1)
	assert.Equal(t, "Only line", blocks[0].Text)
}
