// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package modules

import (
	"strings"
	"unicode"

	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
)

// Footnote tags unassigned blocks whose most-common font size sits
// below the document's small-font threshold and whose text opens with a
// digit or symbol marker, the original's two-part footnote heuristic
// (font-size percentile plus leading superscript marker).
type Footnote struct {
	cfg semantic.Config
}

// NewFootnote returns a Footnote module using cfg's tunables.
func NewFootnote(cfg semantic.Config) Footnote {
	return Footnote{cfg: cfg}
}

func (Footnote) Name() string { return "footnote" }

func (f Footnote) Semanticize(doc *model.Document, ra *semantic.RoleAssignment) error {
	bodyFontSize := doc.CharacterStatistic.MostCommonFontFace.FontSize
	if bodyFontSize <= 0 {
		return nil
	}
	threshold := bodyFontSize * f.cfg.SmallFontSizeRatio

	doc.EachBlock(func(block *model.TextBlock) {
		if block.SemanticRole != "" {
			return
		}
		if block.CharacterStatistic.MostCommonFontFace.FontSize >= threshold {
			return
		}
		if !startsWithMarker(block.Text) {
			return
		}
		ra.SetRole(block, model.RoleFootnote, f.Name())
	})
	return nil
}

func startsWithMarker(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	r := []rune(trimmed)[0]
	return unicode.IsDigit(r) || unicode.IsSymbol(r) || unicode.IsPunct(r)
}
