// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package blocks

import (
	"math"
	"regexp"
	"sort"

	"github.com/sassoftware/pdf-structure/logger"
	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/statistics"
)

// referenceAnchor matches a bibliography entry's leading "[12]  " marker,
// the signal rule 9 (isProbablyReferenceStart) keys off of.
var referenceAnchor = regexp.MustCompile(`^\[(.*)\]\s+`)

// Tokenizer groups a page's TextLines into TextBlocks by walking them in
// reading order and asking, at every line, whether it introduces a new
// block or continues the one in progress (spec §4.2).
type Tokenizer struct {
	cfg   Config
	stats statistics.Statistician
}

// New returns a Tokenizer configured with cfg.
func New(cfg Config) Tokenizer {
	return Tokenizer{cfg: cfg, stats: statistics.NewStatistician()}
}

// Tokenize groups page's TextLines into TextBlocks. doc supplies the
// document-level line-pitch statistic that rule 5 compares against, and
// must already be populated by the Statistician (spec §5). Tokenize does
// not mutate page; the caller assigns the result to page.TextBlocks.
func (t Tokenizer) Tokenize(page model.Page, doc *model.Document) []model.TextBlock {
	if len(page.TextLines) == 0 {
		return nil
	}

	var blocks []model.TextBlock
	var current []model.TextLine

	flush := func() {
		if len(current) == 0 {
			return
		}
		block := t.buildBlock(page.Number, current)
		blocks = append(blocks, block)
		current = nil
	}

	for i, line := range page.TextLines {
		if i == 0 || len(current) == 0 {
			current = append(current, line)
			continue
		}

		prev := page.TextLines[i-1]
		var next *model.TextLine
		if i+1 < len(page.TextLines) {
			next = &page.TextLines[i+1]
		}

		if t.introducesNewTextBlock(current, &prev, &line, next, doc) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	logger.Debug("tokenized page into text blocks", "page", page.Number, "blocks", len(blocks))
	return blocks
}

// introducesNewTextBlock is the ordered ten-rule decision list of spec
// §4.2, grounded on the original's PlainTokenizeToTextBlocksPipe: the
// first rule that fires wins, and the absence of any firing rule means
// the candidate line continues the block in progress. current is the
// block in progress (not yet including cur), used by rule 4 to compare
// cur's x-interval against the block's accumulated bounding box rather
// than just its last line.
func (t Tokenizer) introducesNewTextBlock(current []model.TextLine, prev, cur *model.TextLine, next *model.TextLine, doc *model.Document) bool {
	if prev == nil {
		return false
	}
	if len(current) == 0 {
		return false
	}
	rects := make([]model.Rectangle, len(current))
	for i, line := range current {
		rects[i] = line.Rectangle
	}
	blockBox := model.UnionRectangles(rects)
	if !blockBox.OverlapsHorizontally(cur.Rectangle) {
		return true
	}
	if t.linePitchLargerThanExpected(prev, cur, doc) {
		return true
	}
	if linePitchLargerThanNextLinePitch(prev, cur, next, t.cfg) {
		return true
	}
	if isIndented(prev, cur, next, t.cfg) {
		return true
	}
	if hasSignificantDifferentFontFace(prev, cur, t.cfg) {
		return true
	}
	if isProbablyReferenceStart(prev, cur, next, t.cfg) {
		return true
	}
	return false
}

// linePitchLargerThanExpected is rule 5: the pitch from prev to cur is
// "too large" either relative to the document's most-common pitch for
// cur's font face, or relative to a multiple of cur's own line height.
func (t Tokenizer) linePitchLargerThanExpected(prev, cur *model.TextLine, doc *model.Document) bool {
	actual := model.LinePitch(&prev.Baseline, &cur.Baseline)
	if math.IsNaN(actual) {
		return false
	}

	height := cur.Rectangle.Height()
	if height > 0 && actual > t.cfg.LinePitchHeightFactor*height {
		return true
	}

	if doc == nil {
		return false
	}
	expected := doc.TextLineStatistic.MostCommonLinePitch(cur.CharacterStatistic.MostCommonFontFace)
	if expected <= 0 {
		return false
	}
	return actual-expected > t.cfg.LinePitchToleranceFactor
}

// linePitchLargerThanNextLinePitch is rule 6: the pitch to the previous
// line exceeds the pitch to the next line by more than a threshold,
// meaning cur sits closer to what follows it than to what precedes it.
func linePitchLargerThanNextLinePitch(prev, cur *model.TextLine, next *model.TextLine, cfg Config) bool {
	if next == nil {
		return false
	}
	toPrev := model.LinePitch(&prev.Baseline, &cur.Baseline)
	toNext := model.LinePitch(&cur.Baseline, &next.Baseline)
	if math.IsNaN(toPrev) || math.IsNaN(toNext) {
		return false
	}
	return toPrev-toNext > cfg.LinePitchDeltaThreshold
}

// isIndented is rule 7: cur sits at a stable indent relative to both its
// neighbors. It requires (a) the line pitch to prev and the line pitch
// to next to be equal, (b) not both prev and next starting a reference
// anchor, (c) cur indented past both prev and next, and (d) prev and
// next themselves sharing the same minX (spec §4.2, original's
// isIndented(prevLine, line, nextLine)).
func isIndented(prev, cur, next *model.TextLine, cfg Config) bool {
	if next == nil {
		return false
	}

	toPrev := model.LinePitch(&prev.Baseline, &cur.Baseline)
	toNext := model.LinePitch(&cur.Baseline, &next.Baseline)
	if math.IsNaN(toPrev) || math.IsNaN(toNext) {
		return false
	}
	if math.Abs(toPrev-toNext) >= cfg.LinePitchDeltaThreshold {
		return false
	}

	if referenceAnchor.MatchString(prev.Text) && referenceAnchor.MatchString(next.Text) {
		return false
	}

	indentedToPrev := cur.Rectangle.MinX()-prev.Rectangle.MinX() > cfg.IndentThreshold
	indentedToNext := cur.Rectangle.MinX()-next.Rectangle.MinX() > cfg.IndentThreshold
	minXEqual := math.Abs(prev.Rectangle.MinX()-next.Rectangle.MinX()) < cfg.MinXEqualThreshold

	return indentedToPrev && indentedToNext && minXEqual
}

// hasSignificantDifferentFontFace is rule 8: cur's dominant font face
// differs from prev's in family, size (beyond the threshold), or
// boldness.
func hasSignificantDifferentFontFace(prev, cur *model.TextLine, cfg Config) bool {
	pf := prev.CharacterStatistic.MostCommonFontFace
	cf := cur.CharacterStatistic.MostCommonFontFace
	if !model.SameFamilyName(pf, cf) {
		return true
	}
	if math.Abs(pf.FontSize-cf.FontSize) > cfg.FontSizeDeltaThreshold {
		return true
	}
	return pf.Font.IsBold != cf.Font.IsBold
}

// isProbablyReferenceStart is rule 9: cur matches the "[12]  " anchor
// pattern of a bibliography entry, and each neighbor either differs
// enough in left edge from cur or is itself a reference anchor, so a
// short run of anchor lines aligned at the same indent still counts
// (spec §4.2, original's isProbablyReferenceStart). It requires both
// neighbors to exist.
func isProbablyReferenceStart(prev, cur *model.TextLine, next *model.TextLine, cfg Config) bool {
	if prev == nil || next == nil {
		return false
	}
	if !referenceAnchor.MatchString(cur.Text) {
		return false
	}
	deltaPrev := math.Abs(cur.Rectangle.MinX() - prev.Rectangle.MinX())
	deltaNext := math.Abs(cur.Rectangle.MinX() - next.Rectangle.MinX())

	prevDiffersOrAnchor := deltaPrev > cfg.ReferenceAnchorMinXThreshold || referenceAnchor.MatchString(prev.Text)
	nextDiffersOrAnchor := deltaNext > cfg.ReferenceAnchorMinXThreshold || referenceAnchor.MatchString(next.Text)

	return prevDiffersOrAnchor && nextDiffersOrAnchor
}

// buildBlock assembles a TextBlock from its member lines: unions their
// rectangles, joins their text with single spaces, and fills in the
// block's statistics via the Statistician.
func (t Tokenizer) buildBlock(pageNumber int, lines []model.TextLine) model.TextBlock {
	sorted := make([]model.TextLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Baseline.Y() > sorted[j].Baseline.Y()
	})

	block := model.NewTextBlock(pageNumber, sorted)

	rects := make([]model.Rectangle, len(sorted))
	var text string
	for i, line := range sorted {
		rects[i] = line.Rectangle
		if i > 0 {
			text += " "
		}
		text += line.Text
	}
	block.Rectangle = model.UnionRectangles(rects)
	block.Text = text

	t.stats.ComputeBlock(&block)
	return block
}
