// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package statistics implements the Statistician of spec §4.4: pure
// aggregations over immutable character/line data, computed bottom-up
// from character scope to document scope.
package statistics

import "github.com/sassoftware/pdf-structure/model"

// CharacterStatistician computes model.CharacterStatistic values, either
// directly from raw Characters (the scope closest to the producer) or by
// merging already-computed statistics from a lower scope (lines into a
// block, pages into a document). Page statistics are computed directly
// from the page's Characters.
type CharacterStatistician struct{}

// FromCharacters aggregates directly over a slice of Characters: this is
// the only entry point that ever looks at raw glyphs. It serves the line
// and page scopes; block and document scopes merge CharacterStatistic
// values instead of re-scanning characters.
func (CharacterStatistician) FromCharacters(chars []model.Character) model.CharacterStatistic {
	if len(chars) == 0 {
		return model.CharacterStatistic{}
	}

	faces := make([]model.FontFace, len(chars))
	colors := make([]model.Color, len(chars))
	var sizeSum float64
	for i, c := range chars {
		faces[i] = c.FontFace
		colors[i] = c.Color
		sizeSum += c.FontFace.FontSize
	}

	return model.CharacterStatistic{
		MostCommonFontFace: argmaxFontFace(faces),
		MostCommonColor:    argmaxColor(colors),
		AverageFontSize:    sizeSum / float64(len(chars)),
		CharacterCount:     len(chars),
	}
}

// Merge combines the CharacterStatistics of several lower-scope elements
// (e.g. a TextBlock's TextLines) into the statistic for their containing
// scope, weighting each contributor's most-common face/color by its
// CharacterCount rather than re-deriving from characters directly (spec
// §4.4: "Document-level versions are the aggregate of page-level, which
// is the aggregate of block-level, which is the aggregate of
// line-level").
func (CharacterStatistician) Merge(stats []model.CharacterStatistic) model.CharacterStatistic {
	var faces []model.FontFace
	var colors []model.Color
	var sizeSum float64
	var count int

	for _, s := range stats {
		if s.CharacterCount == 0 {
			continue
		}
		for i := 0; i < s.CharacterCount; i++ {
			// Representative weighting: each contributor casts
			// CharacterCount "votes" for its own most-common face/color,
			// so a block with many characters outweighs a short one
			// without needing to revisit individual glyphs.
			faces = append(faces, s.MostCommonFontFace)
			colors = append(colors, s.MostCommonColor)
		}
		sizeSum += s.AverageFontSize * float64(s.CharacterCount)
		count += s.CharacterCount
	}

	if count == 0 {
		return model.CharacterStatistic{}
	}

	return model.CharacterStatistic{
		MostCommonFontFace: argmaxFontFace(faces),
		MostCommonColor:    argmaxColor(colors),
		AverageFontSize:    sizeSum / float64(count),
		CharacterCount:     count,
	}
}

// argmaxFontFace returns the most frequent FontFace by its spec §9
// identity key (family, size rounded to 0.1, bold, italic), breaking
// ties by first-seen order (spec §4.4).
func argmaxFontFace(faces []model.FontFace) model.FontFace {
	type bucket struct {
		rep   model.FontFace
		count int
	}
	order := make([]model.FontFaceKey, 0)
	buckets := make(map[model.FontFaceKey]*bucket)

	for _, f := range faces {
		key := f.Key()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{rep: f}
			buckets[key] = b
			order = append(order, key)
		}
		b.count++
	}

	var best model.FontFace
	bestCount := -1
	for _, key := range order {
		b := buckets[key]
		if b.count > bestCount {
			bestCount = b.count
			best = b.rep
		}
	}
	return best
}

// argmaxColor returns the most frequent color, collapsing perceptually
// near-duplicate fills (within colorful's Lab distance epsilon) into one
// bucket before counting, per SPEC_FULL's color-distance wiring. Ties
// are broken by first-seen order.
func argmaxColor(colors []model.Color) model.Color {
	type bucket struct {
		rep   model.Color
		count int
	}
	var buckets []bucket

	for _, c := range colors {
		matched := -1
		for i := range buckets {
			if buckets[i].rep.NearlyEqual(c) {
				matched = i
				break
			}
		}
		if matched == -1 {
			buckets = append(buckets, bucket{rep: c, count: 1})
		} else {
			buckets[matched].count++
		}
	}

	var best model.Color
	bestCount := -1
	for _, b := range buckets {
		if b.count > bestCount {
			bestCount = b.count
			best = b.rep
		}
	}
	return best
}
