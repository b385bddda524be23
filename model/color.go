// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package model

import (
	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color interned in the Document's color registry
// (spec §3). R, G, B are 0-255 integer channels, matching the
// <r>/<g>/<b> serializer elements of spec §6; a colorful.Color (0..1
// floats) is derived from them on demand (toColorful) so statistics can
// measure perceptual distance between near-duplicate fills.
type Color struct {
	ID      string
	R, G, B int
}

// NewColor mints a Color with a fresh registry ID from 0-255 channels.
func NewColor(r, g, b int) Color {
	return Color{ID: uuid.NewString(), R: r, G: g, B: b}
}

// RGB returns the three channels as spec §3 describes them.
func (c Color) RGB() [3]int { return [3]int{c.R, c.G, c.B} }

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// DistanceLab is the perceptual (CIE Lab) distance between two colors.
// The Statistician's most-common-color argmax uses this (via
// NearlyEqual), rather than exact integer equality, to decide whether two
// fills are "the same" color in the presence of PDF color-space rounding
// noise.
func (c Color) DistanceLab(other Color) float64 {
	return c.toColorful().DistanceLab(other.toColorful())
}

// NearlyEqual reports whether two colors are close enough in Lab space
// to be counted as one color by the Statistician's most-common-color
// argmax. The color registry itself interns by exact RGB triple.
func (c Color) NearlyEqual(other Color) bool {
	const epsilon = 0.02
	return c.DistanceLab(other) < epsilon
}
