// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package blocks implements the Block Tokenizer of spec §4.2: the
// ordered ten-rule decision list that groups a page's TextLines into
// TextBlocks.
package blocks

// Config holds the Block Tokenizer's tunable constants. Every default
// below is the value spec.md §4.2 documents as part of the contract.
type Config struct {
	// LinePitchToleranceFactor is the margin (in points) by which the
	// actual line pitch must exceed the expected line pitch before rule
	// 5 (linePitchLargerThanExpected) fires.
	LinePitchToleranceFactor float64

	// LinePitchHeightFactor is the multiplier of the candidate line's
	// height used as rule 5's fallback trigger
	// (actual > LinePitchHeightFactor * line.height).
	LinePitchHeightFactor float64

	// LinePitchDeltaThreshold is how much larger the pitch-to-previous
	// must be than the pitch-to-next before rule 6 fires.
	LinePitchDeltaThreshold float64

	// IndentThreshold is the minimum minX delta (points) for a line to
	// be considered indented relative to a reference line (rule 7's
	// isIndented helper).
	IndentThreshold float64

	// MinXEqualThreshold is the maximum minX delta (points) for two
	// lines' left edges to be considered equal (rule 7's isMinXEqual).
	// Rule 9's minX comparisons use ReferenceAnchorMinXThreshold instead.
	MinXEqualThreshold float64

	// FontSizeDeltaThreshold is the minimum font-size delta (points)
	// that counts as a "significant" font face change (rule 8).
	FontSizeDeltaThreshold float64

	// ReferenceAnchorMinXThreshold is the minX delta (points) used by
	// rule 9 (isProbablyReferenceStart) to decide whether the previous
	// or next line's left edge differs enough from the candidate line's.
	// It happens to share its default value with FontSizeDeltaThreshold
	// but is a distinct knob (spec §4.2's isProbablyReferenceStart).
	ReferenceAnchorMinXThreshold float64
}

// DefaultConfig returns the tunables at the values spec.md §4.2
// documents: 1.5, 3, 1, 1, 1, 0.5, 0.5.
func DefaultConfig() Config {
	return Config{
		LinePitchToleranceFactor:     1.5,
		LinePitchHeightFactor:        3,
		LinePitchDeltaThreshold:      1,
		IndentThreshold:              1,
		MinXEqualThreshold:           1,
		FontSizeDeltaThreshold:       0.5,
		ReferenceAnchorMinXThreshold: 0.5,
	}
}
