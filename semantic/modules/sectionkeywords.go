// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package modules

import (
	"strings"

	"github.com/sassoftware/pdf-structure/model"
)

// sectionKeywords maps a heading's normalized text to the secondary role
// hint a later SectionRange module looks for (spec §4.5's "earlier
// heuristics ... keyword matching"). Matching is a prefix test against
// the heading's lowercased, trimmed text, so "Abstract" and
// "Abstract—Summary" both match.
var sectionKeywords = []struct {
	prefix string
	role   model.SemanticRole
}{
	{"abstract", model.RoleAbstract},
	{"categories and subject descriptors", model.RoleCategories},
	{"categories", model.RoleCategories},
	{"keywords", model.RoleKeywords},
	{"key words", model.RoleKeywords},
	{"general terms", model.RoleGeneralTerms},
	{"acknowledgments", model.RoleAcknowledgments},
	{"acknowledgements", model.RoleAcknowledgments},
	{"references", model.RoleReference},
	{"bibliography", model.RoleReference},
}

// matchSectionKeyword returns the SecondarySemanticRole a heading's text
// hints at, or "" if it matches no known section name.
func matchSectionKeyword(text string) model.SemanticRole {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, k := range sectionKeywords {
		if strings.HasPrefix(normalized, k.prefix) {
			return k.role
		}
	}
	return ""
}
