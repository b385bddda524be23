// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package semantic

// Config holds the Semanticizer's tunable constants (spec §4.5,
// supplemented per the original's externalized PdfActCoreSettings).
type Config struct {
	// HeaderZoneFraction and FooterZoneFraction are the top/bottom
	// fraction of a page's height treated as header/footer territory.
	// Default 0.1 each (spec.md's "top/bottom 10% of page height").
	HeaderZoneFraction float64
	FooterZoneFraction float64

	// HeadingFontSizeRatio is how much larger than the document's most
	// common font size a block's font must be to be heading-eligible.
	HeadingFontSizeRatio float64

	// MaxHeadingWords bounds how many words a block may contain and
	// still be heading-eligible; headings are short by nature.
	MaxHeadingWords int

	// SmallFontSizeRatio is the fraction of the document's most common
	// font size below which a block is footnote-font-size-eligible.
	SmallFontSizeRatio float64
}

// DefaultConfig returns the Semanticizer's default tunables.
func DefaultConfig() Config {
	return Config{
		HeaderZoneFraction:   0.1,
		FooterZoneFraction:   0.1,
		HeadingFontSizeRatio: 1.15,
		MaxHeadingWords:      12,
		SmallFontSizeRatio:   0.85,
	}
}
