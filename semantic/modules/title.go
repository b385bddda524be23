// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package modules

import (
	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
)

// Title tags the single most title-like unassigned block on the
// document's first page: the one with the largest most-common font
// size, ties broken by the earliest block in reading order. Runs first
// in the module order so Heading never reconsiders the block it claims.
type Title struct{}

func (Title) Name() string { return "title" }

func (t Title) Semanticize(doc *model.Document, ra *semantic.RoleAssignment) error {
	page := doc.FindPage(1)
	if page == nil {
		return nil
	}

	var best *model.TextBlock
	for i := range page.TextBlocks {
		block := &page.TextBlocks[i]
		if block.SemanticRole != "" {
			continue
		}
		if best == nil || block.CharacterStatistic.MostCommonFontFace.FontSize > best.CharacterStatistic.MostCommonFontFace.FontSize {
			best = block
		}
	}
	if best == nil {
		return nil
	}
	ra.SetRole(best, model.RoleTitle, t.Name())
	return nil
}
