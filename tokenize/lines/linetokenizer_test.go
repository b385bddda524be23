// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sassoftware/pdf-structure/model"
)

func char(pageNumber int, x, baselineY, width, fontSize float64, text string) model.Character {
	return model.Character{
		PageNumber: pageNumber,
		Rectangle:  model.NewRectangle(x, baselineY, x+width, baselineY+fontSize),
		FontFace:   model.FontFace{Font: model.Font{FamilyName: "Times"}, FontSize: fontSize},
		Color:      model.NewColor(0, 0, 0),
		Text:       text,
		BaselineY:  baselineY,
	}
}

func TestTokenize_GroupsCharactersIntoOneLineAndWords(t *testing.T) {
	tok := New(DefaultConfig())
	chars := []model.Character{
		char(1, 100, 700, 6, 10, "H"),
		char(1, 106, 700, 6, 10, "i"),
		char(1, 130, 700, 6, 10, "t"), // large gap -> new word
		char(1, 136, 700, 6, 10, "h"),
		char(1, 142, 700, 6, 10, "e"),
	}
	page := model.Page{Number: 1, Characters: chars}
	result := tok.Tokenize(page)

	require.Len(t, result, 1)
	require.Len(t, result[0].Words, 2)
	assert.Equal(t, "Hi", result[0].Words[0].Text)
	assert.Equal(t, "the", result[0].Words[1].Text)
}

func TestTokenize_SeparatesLinesByBaseline(t *testing.T) {
	tok := New(DefaultConfig())
	chars := []model.Character{
		char(1, 100, 700, 6, 10, "A"),
		char(1, 100, 650, 6, 10, "B"),
	}
	page := model.Page{Number: 1, Characters: chars}
	result := tok.Tokenize(page)

	require.Len(t, result, 2)
	assert.Equal(t, 700.0, result[0].Baseline.Y())
	assert.Equal(t, 650.0, result[1].Baseline.Y())
}

func TestTokenize_SuperscriptAttachesToDominantBaseline(t *testing.T) {
	tok := New(DefaultConfig())
	// Font size 10 -> clustering tolerance is 0.3 * 10 = 3pt. A
	// superscript offset by 2pt should join the main baseline cluster.
	chars := []model.Character{
		char(1, 100, 700, 6, 10, "x"),
		char(1, 106, 700, 6, 10, "2"),
		char(1, 112, 702, 4, 6, "a"), // superscript, offset +2pt
	}
	page := model.Page{Number: 1, Characters: chars}
	result := tok.Tokenize(page)

	require.Len(t, result, 1)
	assert.Equal(t, 700.0, result[0].Baseline.Y())
}

func TestTokenize_EmptyPageYieldsNoLines(t *testing.T) {
	tok := New(DefaultConfig())
	result := tok.Tokenize(model.Page{Number: 1})
	assert.Empty(t, result)
}

func TestTokenize_RotatedTextGetsOwnLine(t *testing.T) {
	tok := New(DefaultConfig())
	horizontal := char(1, 100, 700, 6, 10, "A")
	rotated := char(1, 100, 700, 6, 10, "B")
	rotated.Rotation = 90
	page := model.Page{Number: 1, Characters: []model.Character{horizontal, rotated}}
	result := tok.Tokenize(page)

	require.Len(t, result, 2)
}
