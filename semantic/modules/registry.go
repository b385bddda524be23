// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package modules

import (
	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
)

// Default returns the fixed, ordered module list spec §4.5 mandates:
// title, heading, the six section-range detectors, caption, footnote,
// header/footer, then the body fallback. No reflection, no dynamic
// registration: this is a literal, in the mandated order, mirroring the
// original's PlainSemanticizePdfPipe assembly.
func Default(cfg semantic.Config) []semantic.Module {
	return []semantic.Module{
		Title{},
		NewHeading(cfg),
		NewSectionRange("abstract", model.RoleAbstract, false),
		NewSectionRange("categories", model.RoleCategories, false),
		NewSectionRange("keywords", model.RoleKeywords, false),
		NewSectionRange("general_terms", model.RoleGeneralTerms, false),
		NewSectionRange("acknowledgments", model.RoleAcknowledgments, false),
		NewSectionRange("references", model.RoleReference, true),
		Caption{},
		NewFootnote(cfg),
		NewHeaderFooter(cfg),
		Body{},
	}
}
