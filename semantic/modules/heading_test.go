// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
)

func faceSized(size float64, bold bool) model.FontFace {
	return model.FontFace{Font: model.Font{FamilyName: "Times", IsBold: bold}, FontSize: size}
}

func TestHeading_LargerFontAndShortTextBecomesHeading(t *testing.T) {
	doc := &model.Document{
		CharacterStatistic: model.CharacterStatistic{MostCommonFontFace: faceSized(10, false)},
		Pages: []model.Page{{Number: 1, TextBlocks: []model.TextBlock{
			{ID: "b1", Text: "Introduction", CharacterStatistic: model.CharacterStatistic{MostCommonFontFace: faceSized(16, false)}},
		}}},
	}

	h := NewHeading(semantic.DefaultConfig())
	require.NoError(t, h.Semanticize(doc, semantic.NewRoleAssignment(doc)))

	assert.Equal(t, model.RoleHeading, doc.BlockByID("b1").SemanticRole)
}

func TestHeading_LongTextAtHeadingFontSizeStaysUnassigned(t *testing.T) {
	doc := &model.Document{
		CharacterStatistic: model.CharacterStatistic{MostCommonFontFace: faceSized(10, false)},
		Pages: []model.Page{{Number: 1, TextBlocks: []model.TextBlock{
			{
				ID:                 "b1",
				Text:               "This heading-sized block actually has far too many words to plausibly be a heading at all",
				CharacterStatistic: model.CharacterStatistic{MostCommonFontFace: faceSized(16, false)},
			},
		}}},
	}

	h := NewHeading(semantic.DefaultConfig())
	require.NoError(t, h.Semanticize(doc, semantic.NewRoleAssignment(doc)))

	assert.Equal(t, model.SemanticRole(""), doc.BlockByID("b1").SemanticRole)
}

func TestHeading_MatchingKeywordSetsSecondaryRole(t *testing.T) {
	doc := &model.Document{
		CharacterStatistic: model.CharacterStatistic{MostCommonFontFace: faceSized(10, false)},
		Pages: []model.Page{{Number: 1, TextBlocks: []model.TextBlock{
			{ID: "b1", Text: "Abstract", CharacterStatistic: model.CharacterStatistic{MostCommonFontFace: faceSized(16, false)}},
		}}},
	}

	h := NewHeading(semantic.DefaultConfig())
	require.NoError(t, h.Semanticize(doc, semantic.NewRoleAssignment(doc)))

	assert.Equal(t, model.RoleHeading, doc.BlockByID("b1").SemanticRole)
	assert.Equal(t, model.RoleAbstract, doc.BlockByID("b1").SecondarySemanticRole)
}

func TestHeading_AlreadyAssignedBlockIsSkipped(t *testing.T) {
	doc := &model.Document{
		CharacterStatistic: model.CharacterStatistic{MostCommonFontFace: faceSized(10, false)},
		Pages: []model.Page{{Number: 1, TextBlocks: []model.TextBlock{
			{ID: "b1", Text: "Title", SemanticRole: model.RoleTitle, CharacterStatistic: model.CharacterStatistic{MostCommonFontFace: faceSized(20, false)}},
		}}},
	}

	h := NewHeading(semantic.DefaultConfig())
	require.NoError(t, h.Semanticize(doc, semantic.NewRoleAssignment(doc)))

	assert.Equal(t, model.RoleTitle, doc.BlockByID("b1").SemanticRole)
}
