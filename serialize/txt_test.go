// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sassoftware/pdf-structure/model"
)

func TestTXTSerializer_JoinsParagraphsWithBlankLine(t *testing.T) {
	doc := &model.Document{
		Paragraphs: []model.Paragraph{
			{SemanticRole: model.RoleBodyText, Text: "First paragraph."},
			{SemanticRole: model.RoleBodyText, Text: "Second paragraph."},
		},
	}
	s, err := New(FormatTXT, Config{
		Units: model.NewUnitSet(model.UnitParagraph),
		Roles: model.NewRoleSet(model.RoleBodyText),
	})
	require.NoError(t, err)

	out, err := s.Serialize(doc)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.\n", string(out))
}

func TestTXTSerializer_EmptyDocumentYieldsNilOutput(t *testing.T) {
	s, err := New(FormatTXT, Config{
		Units: model.NewUnitSet(model.UnitParagraph),
		Roles: model.NewRoleSet(model.RoleBodyText),
	})
	require.NoError(t, err)

	out, err := s.Serialize(&model.Document{})
	require.NoError(t, err)
	assert.Nil(t, out)
}
