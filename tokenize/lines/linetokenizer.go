// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package lines

import (
	"math"
	"sort"

	"github.com/sassoftware/pdf-structure/logger"
	"github.com/sassoftware/pdf-structure/model"
	"github.com/sassoftware/pdf-structure/statistics"
)

// Tokenizer groups a page's Characters into Words and TextLines (spec
// §4.1). It never fails fatally: a page with zero clusterable characters
// yields an empty line list (spec §4.1 "Failure").
type Tokenizer struct {
	cfg   Config
	stats statistics.Statistician
}

// New returns a Tokenizer configured with cfg.
func New(cfg Config) Tokenizer {
	return Tokenizer{cfg: cfg, stats: statistics.NewStatistician()}
}

// Tokenize clusters the given page's Characters into an ordered list of
// TextLines. It does not mutate page; the caller assigns the result to
// page.TextLines.
func (t Tokenizer) Tokenize(page model.Page) []model.TextLine {
	if len(page.Characters) == 0 {
		return nil
	}

	pageFontSize := t.stats.PageFontSize(page.Characters)
	tolerance := t.cfg.BaselineClusterFactor * pageFontSize
	if tolerance <= 0 {
		tolerance = 1
	}

	var allLines []model.TextLine
	for _, bucket := range bucketByRotation(page.Characters, t.cfg.RotationBucketDegrees) {
		clusters := clusterByBaseline(bucket, tolerance)
		for _, cluster := range clusters {
			line := t.buildLine(page.Number, cluster)
			allLines = append(allLines, line)
		}
	}

	sort.SliceStable(allLines, func(i, j int) bool {
		if allLines[i].Baseline.Y() != allLines[j].Baseline.Y() {
			return allLines[i].Baseline.Y() > allLines[j].Baseline.Y()
		}
		return allLines[i].Rectangle.MinX() < allLines[j].Rectangle.MinX()
	})

	logger.Debug("tokenized page into text lines", "page", page.Number, "lines", len(allLines))
	return allLines
}

// bucketByRotation groups characters by their rotation, rounded to the
// nearest multiple of degreeStep, preserving first-seen bucket order so
// the (deterministic) output ordering doesn't depend on map iteration.
func bucketByRotation(chars []model.Character, degreeStep float64) [][]model.Character {
	if degreeStep <= 0 {
		degreeStep = 90
	}
	var order []float64
	buckets := make(map[float64][]model.Character)
	for _, c := range chars {
		key := math.Round(c.Rotation/degreeStep) * degreeStep
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], c)
	}
	out := make([][]model.Character, len(order))
	for i, key := range order {
		out[i] = buckets[key]
	}
	return out
}

// baselineBucket is a growable cluster of characters sharing a baseline,
// following the same widening-window approach as a standard row-grouping
// sweep: a character joins the bucket if its baseline Y falls within
// tolerance of the bucket's current [yMin, yMax] span.
type baselineBucket struct {
	yMin, yMax float64
	chars      []model.Character
}

// clusterByBaseline groups characters into line clusters. Characters are
// visited in descending baseline-Y order so that a page's lines are
// discovered top-to-bottom, matching reading order.
func clusterByBaseline(chars []model.Character, tolerance float64) [][]model.Character {
	sorted := make([]model.Character, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BaselineY > sorted[j].BaselineY
	})

	var buckets []*baselineBucket
	for _, c := range sorted {
		var target *baselineBucket
		for _, b := range buckets {
			if c.BaselineY >= b.yMin-tolerance && c.BaselineY <= b.yMax+tolerance {
				target = b
				break
			}
		}
		if target == nil {
			target = &baselineBucket{yMin: c.BaselineY, yMax: c.BaselineY}
			buckets = append(buckets, target)
		}
		target.chars = append(target.chars, c)
		if c.BaselineY < target.yMin {
			target.yMin = c.BaselineY
		}
		if c.BaselineY > target.yMax {
			target.yMax = c.BaselineY
		}
	}

	clusters := make([][]model.Character, 0, len(buckets))
	for _, b := range buckets {
		if len(b.chars) > 0 {
			clusters = append(clusters, b.chars)
		}
	}
	return clusters
}

// dominantBaselineY returns the mode of the cluster's baseline-Y values
// (rounded to 0.1pt), breaking ties by first-seen order, so a handful of
// superscript/subscript characters attached to the cluster don't drag
// the line's baseline away from where the bulk of its characters sit.
func dominantBaselineY(chars []model.Character) float64 {
	type count struct {
		y int
		n int
	}
	var order []float64
	counts := make(map[float64]*count)
	for _, c := range chars {
		key := math.Round(c.BaselineY*10) / 10
		if _, ok := counts[key]; !ok {
			order = append(order, key)
			counts[key] = &count{}
		}
		counts[key].n++
	}
	best, bestN := order[0], -1
	for _, key := range order {
		if counts[key].n > bestN {
			bestN = counts[key].n
			best = key
		}
	}
	return best
}

// buildLine sorts the cluster's characters left-to-right, groups them
// into Words, and assembles the resulting TextLine.
func (t Tokenizer) buildLine(pageNumber int, cluster []model.Character) model.TextLine {
	sorted := make([]model.Character, len(cluster))
	copy(sorted, cluster)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rectangle.MinX() < sorted[j].Rectangle.MinX()
	})

	words := groupIntoWords(sorted, t.cfg.WordGapFontSizeFactor)

	rects := make([]model.Rectangle, len(words))
	var text string
	for i, w := range words {
		rects[i] = w.Rectangle
		if i > 0 {
			text += " "
		}
		text += w.Text
	}

	baselineY := dominantBaselineY(sorted)
	line := model.TextLine{
		PageNumber: pageNumber,
		Rectangle:  model.UnionRectangles(rects),
		Words:      words,
		Baseline: model.Line{
			StartX: sorted[0].Rectangle.MinX(),
			StartY: baselineY,
			EndX:   sorted[len(sorted)-1].Rectangle.MaxX(),
			EndY:   baselineY,
		},
		Text: text,
	}
	t.stats.ComputeLine(&line)
	return line
}

// groupIntoWords splits characters already sorted left-to-right into
// Words, breaking whenever the horizontal gap to the previous character
// exceeds the line's most-common whitespace width, falling back to
// wordGapFontSizeFactor * font size when no literal space glyph is
// present to measure (spec §4.1).
func groupIntoWords(sorted []model.Character, wordGapFontSizeFactor float64) []model.Word {
	if len(sorted) == 0 {
		return nil
	}

	threshold := whitespaceWidth(sorted)

	var words []model.Word
	var current []model.Character
	for i, c := range sorted {
		if i == 0 {
			current = append(current, c)
			continue
		}
		prev := sorted[i-1]
		gap := c.Rectangle.MinX() - prev.Rectangle.MaxX()

		gapThreshold := threshold
		if gapThreshold <= 0 {
			gapThreshold = wordGapFontSizeFactor * prev.FontFace.FontSize
		}

		if gap > gapThreshold {
			words = append(words, model.NewWord(current))
			current = nil
		}
		current = append(current, c)
	}
	if len(current) > 0 {
		words = append(words, model.NewWord(current))
	}
	return words
}

// whitespaceWidth returns the most common width among literal space
// glyphs in the line, or 0 if none were surfaced by the producer (in
// which case the caller falls back to the font-size-derived threshold).
func whitespaceWidth(sorted []model.Character) float64 {
	var order []float64
	counts := make(map[float64]int)
	for _, c := range sorted {
		if c.Text != " " {
			continue
		}
		w := math.Round(c.Rectangle.Width()*10) / 10
		if _, ok := counts[w]; !ok {
			order = append(order, w)
		}
		counts[w]++
	}
	best, bestN := 0.0, -1
	for _, w := range order {
		if counts[w] > bestN {
			bestN = counts[w]
			best = w
		}
	}
	return best
}
