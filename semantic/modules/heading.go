// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package modules

import (
	"strings"

	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
)

// Heading tags unassigned blocks whose font is significantly larger (or
// bold at least as large) than the document's most common font size,
// and whose text is short enough to plausibly be a heading rather than
// a body paragraph set in a display face (spec §4.5). It also tags the
// SecondarySemanticRole hint a later SectionRange module consumes, by
// matching the heading text against known section names.
type Heading struct {
	cfg semantic.Config
}

// NewHeading returns a Heading module using cfg's tunables.
func NewHeading(cfg semantic.Config) Heading {
	return Heading{cfg: cfg}
}

func (Heading) Name() string { return "heading" }

func (h Heading) Semanticize(doc *model.Document, ra *semantic.RoleAssignment) error {
	bodyFontSize := doc.CharacterStatistic.MostCommonFontFace.FontSize
	doc.EachBlock(func(block *model.TextBlock) {
		if block.SemanticRole != "" {
			return
		}
		if !h.isHeading(block, bodyFontSize) {
			return
		}
		ra.SetRole(block, model.RoleHeading, h.Name())
		if hint := matchSectionKeyword(block.Text); hint != "" {
			ra.SetSecondaryRole(block, hint, h.Name())
		}
	})
	return nil
}

func (h Heading) isHeading(block *model.TextBlock, bodyFontSize float64) bool {
	if wordCount(block.Text) > h.cfg.MaxHeadingWords {
		return false
	}
	size := block.CharacterStatistic.MostCommonFontFace.FontSize
	if bodyFontSize <= 0 {
		return size > 0
	}
	if size > bodyFontSize*h.cfg.HeadingFontSizeRatio {
		return true
	}
	return block.CharacterStatistic.MostCommonFontFace.Font.IsBold && size >= bodyFontSize
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
