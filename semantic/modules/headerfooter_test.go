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

func TestHeaderFooter_TopZoneBecomesHeader(t *testing.T) {
	doc := &model.Document{Pages: []model.Page{{
		Number: 1,
		Height: 800,
		TextBlocks: []model.TextBlock{
			{ID: "top", Rectangle: model.NewRectangle(0, 780, 100, 795)},
			{ID: "middle", Rectangle: model.NewRectangle(0, 400, 100, 415)},
			{ID: "bottom", Rectangle: model.NewRectangle(0, 5, 100, 15)},
		},
	}}}

	m := NewHeaderFooter(semantic.DefaultConfig())
	require.NoError(t, m.Semanticize(doc, semantic.NewRoleAssignment(doc)))

	assert.Equal(t, model.RolePageHeader, doc.BlockByID("top").SemanticRole)
	assert.Equal(t, model.RolePageFooter, doc.BlockByID("bottom").SemanticRole)
	assert.Equal(t, model.SemanticRole(""), doc.BlockByID("middle").SemanticRole)
}
