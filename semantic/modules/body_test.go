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

func TestBody_Type3FontBecomesFormula(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{{Number: 1, TextBlocks: []model.TextBlock{
		{
			ID:                 "eq",
			Text:               "E = mc^2",
			CharacterStatistic: model.CharacterStatistic{MostCommonFontFace: model.FontFace{Font: model.Font{IsType3: true}}},
		},
	}}}}

	b := Body{}
	require.NoError(t, b.Semanticize(doc, semantic.NewRoleAssignment(doc)))

	assert.Equal(t, model.RoleFormula, doc.BlockByID("eq").SemanticRole)
}

func TestBody_SymbolHeavyTextBecomesFormula(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{{Number: 1, TextBlocks: []model.TextBlock{
		{ID: "eq", Text: "∑ x² + ∫ f(x) dx = ∞ ≈ π/2"},
	}}}}

	b := Body{}
	require.NoError(t, b.Semanticize(doc, semantic.NewRoleAssignment(doc)))

	assert.Equal(t, model.RoleFormula, doc.BlockByID("eq").SemanticRole)
}

func TestBody_BulletMarkerBecomesItemizeItem(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{{Number: 1, TextBlocks: []model.TextBlock{
		{ID: "item", Text: "1. First item in the list"},
	}}}}

	b := Body{}
	require.NoError(t, b.Semanticize(doc, semantic.NewRoleAssignment(doc)))

	assert.Equal(t, model.RoleItemizeItem, doc.BlockByID("item").SemanticRole)
}

func TestBody_OrdinaryTextBecomesBodyText(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{{Number: 1, TextBlocks: []model.TextBlock{
		{ID: "p", Text: "This is an ordinary sentence of body text."},
	}}}}

	b := Body{}
	require.NoError(t, b.Semanticize(doc, semantic.NewRoleAssignment(doc)))

	assert.Equal(t, model.RoleBodyText, doc.BlockByID("p").SemanticRole)
}

func TestBody_AlreadyAssignedBlockIsSkipped(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{{Number: 1, TextBlocks: []model.TextBlock{
		{ID: "h", Text: "Heading", SemanticRole: model.RoleHeading},
	}}}}

	b := Body{}
	require.NoError(t, b.Semanticize(doc, semantic.NewRoleAssignment(doc)))

	assert.Equal(t, model.RoleHeading, doc.BlockByID("h").SemanticRole)
}
