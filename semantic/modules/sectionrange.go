// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package modules holds the Semanticizer's rule-based Module
// implementations (spec §4.5).
package modules

import (
	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
)

// SectionRange is the OUT/IN state machine shared by the abstract,
// categories, keywords, general-terms, acknowledgments, and references
// detectors (spec §4.5). The five originals differ only in their target
// SemanticRole, so one generic type replaces all of them.
type SectionRange struct {
	name string
	role model.SemanticRole
	// terminal marks the references detector, whose section in the
	// original is allowed to run to the end of the document without a
	// terminating heading — the natural behavior of this state machine
	// when no further HEADING block appears, carried here as a named
	// field for fidelity to the original's distinct ReferencesModule.
	terminal bool
}

// NewSectionRange returns a SectionRange module tagging blocks with
// role whenever the state machine is IN.
func NewSectionRange(name string, role model.SemanticRole, terminal bool) SectionRange {
	return SectionRange{name: name, role: role, terminal: terminal}
}

func (m SectionRange) Name() string { return m.name }

// Semanticize walks the document's TextBlocks in order, in the OUT/IN
// state machine spec §4.5 specifies. The end-of-section check for a
// block runs before the start-of-section check for that same block, so
// a heading that both ends the current section and starts a new one of
// a *different* role is itself tagged HEADING, not the section role.
// A terminal section (references) never ends on a later heading: once
// IN, it stays IN through the rest of the document, matching the
// original's distinct ReferencesModule, which has no end-of-section
// check at all.
func (m SectionRange) Semanticize(doc *model.Document, ra *semantic.RoleAssignment) error {
	state := "OUT"
	doc.EachBlock(func(block *model.TextBlock) {
		if state == "IN" {
			if !m.terminal && block.SemanticRole == model.RoleHeading {
				state = "OUT"
			} else {
				ra.SetRole(block, m.role, m.name)
			}
		}
		if block.SemanticRole == model.RoleHeading && block.SecondarySemanticRole == m.role {
			state = "IN"
		}
	})
	return nil
}
