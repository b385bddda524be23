// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package lines implements the Line Tokenizer of spec §4.1: it groups a
// page's Characters into Words and Words into TextLines.
package lines

// Config holds the Line Tokenizer's tunable constants (spec §4.1). Every
// field has the default spec.md documents, and every field is exposed so
// a caller can tune the heuristics for an unusual document.
type Config struct {
	// BaselineClusterFactor scales the page's most-common font size into
	// the baseline-Y tolerance used to cluster characters into lines.
	// The same factor absorbs the "superscripts/subscripts whose
	// baseline differs by < 0.3 * line height attach to the dominant
	// baseline" edge case (spec §4.1), since both are instances of "how
	// far can a baseline drift and still be the same line."
	BaselineClusterFactor float64

	// WordGapFontSizeFactor is the fallback word-break threshold (as a
	// fraction of font size) used when the line has no directly observed
	// whitespace width (spec §4.1: "fallback: 0.25 x font size").
	WordGapFontSizeFactor float64

	// RotationBucketDegrees groups characters into separate line sets by
	// rounding their rotation to the nearest multiple of this many
	// degrees (spec §4.1: "rotated text is assigned to its own lines
	// based on a separate rotation bucket").
	RotationBucketDegrees float64
}

// DefaultConfig returns the tunables at the values spec.md documents.
func DefaultConfig() Config {
	return Config{
		BaselineClusterFactor: 0.3,
		WordGapFontSizeFactor: 0.25,
		RotationBucketDegrees: 90,
	}
}
