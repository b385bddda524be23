// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package model

// CharacterStatistic is the aggregation spec §4.4 computes over a set of
// Characters: most-common FontFace, most-common Color, average font
// size, and character count. It is attached to TextLine, TextBlock,
// Page, and Document scopes.
type CharacterStatistic struct {
	MostCommonFontFace FontFace
	MostCommonColor    Color
	AverageFontSize    float64
	CharacterCount     int
}

// TextLineStatistic is the aggregation spec §4.4 computes over a set of
// adjacent text lines: the most common line pitch, keyed by the lower
// line's most-common FontFace, so callers can ask "what line pitch is
// expected for this font face."
type TextLineStatistic struct {
	mostCommonLinePitch map[FontFaceKey]float64
}

// NewTextLineStatistic wraps a precomputed per-FontFace line-pitch map.
func NewTextLineStatistic(byFace map[FontFaceKey]float64) TextLineStatistic {
	return TextLineStatistic{mostCommonLinePitch: byFace}
}

// MostCommonLinePitch returns the expected line pitch for the given
// FontFace, or 0 if the face was never observed. The Block Tokenizer's
// linePitchLargerThanExpected treats 0 as "no expected pitch": for an
// unobserved face only its line-height comparison can fire.
func (s TextLineStatistic) MostCommonLinePitch(face FontFace) float64 {
	if s.mostCommonLinePitch == nil {
		return 0
	}
	return s.mostCommonLinePitch[face.Key()]
}
