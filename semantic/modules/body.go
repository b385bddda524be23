// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package modules

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
)

// itemizeMarker matches a leading bullet or enumeration marker: a bullet
// glyph, or a short alphanumeric label followed by "." or ")".
var itemizeMarker = regexp.MustCompile(`^(\x{2022}|-|[0-9]+[.)]|[a-zA-Z][.)])\s+`)

// Body is the fallback module: every block still unassigned after every
// earlier module runs gets one of FORMULA, ITEMIZE_ITEM, or the default
// BODY_TEXT (spec §4.5, supplemented from the original for FORMULA and
// ITEMIZE_ITEM, both named in the closed SemanticRole enum but left
// undetected by the distilled spec).
type Body struct{}

func (Body) Name() string { return "body" }

func (b Body) Semanticize(doc *model.Document, ra *semantic.RoleAssignment) error {
	doc.EachBlock(func(block *model.TextBlock) {
		if block.SemanticRole != "" {
			return
		}
		switch {
		case looksLikeFormula(block):
			ra.SetRole(block, model.RoleFormula, b.Name())
		case itemizeMarker.MatchString(block.Text):
			ra.SetRole(block, model.RoleItemizeItem, b.Name())
		default:
			ra.SetRole(block, model.RoleBodyText, b.Name())
		}
	})
	return nil
}

// looksLikeFormula reports whether block's dominant font face is a
// Type3 font (common for embedded math glyphs), or whether a
// significant fraction of its text is non-alphanumeric, non-whitespace
// symbols (operators, Greek letters used as variables, etc.).
func looksLikeFormula(block *model.TextBlock) bool {
	if block.CharacterStatistic.MostCommonFontFace.Font.IsType3 {
		return true
	}
	text := strings.TrimSpace(block.Text)
	if text == "" {
		return false
	}
	var symbolCount, total int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			symbolCount++
		}
	}
	if total == 0 {
		return false
	}
	return float64(symbolCount)/float64(total) > 0.3
}
