// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package modules

import (
	"math"
	"strings"

	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/semantic"
)

// captionIndicators are the leading tokens the original's CaptionModule
// requires a caption to start with.
var captionIndicators = []string{"figure", "fig.", "table"}

// Caption tags unassigned blocks that both start with a caption
// indicator and whose vertical midpoint lies within twice the block's
// height of some Figure or Shape on the same page (spec §4.5,
// supplemented from the original's CaptionModule). Distances to other
// blocks are not compared.
type Caption struct{}

func (Caption) Name() string { return "caption" }

func (c Caption) Semanticize(doc *model.Document, ra *semantic.RoleAssignment) error {
	for pi := range doc.Pages {
		page := &doc.Pages[pi]
		for bi := range page.TextBlocks {
			block := &page.TextBlocks[bi]
			if block.SemanticRole != "" {
				continue
			}
			if !startsWithCaptionIndicator(block.Text) {
				continue
			}
			if !nearFigureOrShape(*block, *page) {
				continue
			}
			ra.SetRole(block, model.RoleCaption, c.Name())
		}
	}
	return nil
}

func startsWithCaptionIndicator(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, indicator := range captionIndicators {
		if strings.HasPrefix(normalized, indicator) {
			return true
		}
	}
	return false
}

// nearFigureOrShape reports whether some Figure or Shape on page lies
// within a plausible caption distance of block: closer, vertically,
// than the block's own height doubled, a simple adjacency test that
// avoids tagging a caption-shaped sentence far from any graphic.
func nearFigureOrShape(block model.TextBlock, page model.Page) bool {
	best := math.Inf(1)
	blockMidY := (block.Rectangle.MinY() + block.Rectangle.MaxY()) / 2
	for _, f := range page.Figures {
		if d := verticalDistance(blockMidY, f.Rectangle); d < best {
			best = d
		}
	}
	for _, s := range page.Shapes {
		if d := verticalDistance(blockMidY, s.Rectangle); d < best {
			best = d
		}
	}
	if math.IsInf(best, 1) {
		return false
	}
	threshold := block.Rectangle.Height() * 2
	if threshold <= 0 {
		threshold = best
	}
	return best <= threshold
}

func verticalDistance(y float64, rect model.Rectangle) float64 {
	if y >= rect.MinY() && y <= rect.MaxY() {
		return 0
	}
	if y < rect.MinY() {
		return rect.MinY() - y
	}
	return y - rect.MaxY()
}
