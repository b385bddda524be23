// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package modules

import (
	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
)

// HeaderFooter tags unassigned blocks sitting in the top or bottom
// configured fraction of their page's height as PAGE_HEADER or
// PAGE_FOOTER (spec §4.5 "page-position zones").
type HeaderFooter struct {
	cfg semantic.Config
}

// NewHeaderFooter returns a HeaderFooter module using cfg's zone
// fractions.
func NewHeaderFooter(cfg semantic.Config) HeaderFooter {
	return HeaderFooter{cfg: cfg}
}

func (HeaderFooter) Name() string { return "header_footer" }

func (m HeaderFooter) Semanticize(doc *model.Document, ra *semantic.RoleAssignment) error {
	for pi := range doc.Pages {
		page := &doc.Pages[pi]
		for bi := range page.TextBlocks {
			block := &page.TextBlocks[bi]
			if block.SemanticRole != "" {
				continue
			}
			switch {
			case page.HeaderZone(block.Rectangle.MaxY(), m.cfg.HeaderZoneFraction):
				ra.SetRole(block, model.RolePageHeader, m.Name())
			case page.FooterZone(block.Rectangle.MinY(), m.cfg.FooterZoneFraction):
				ra.SetRole(block, model.RolePageFooter, m.Name())
			}
		}
	}
	return nil
}
