// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package model

import (
	"math"

	"github.com/google/uuid"
)

// Font is a typeface identity, interned once per Document (spec §3).
type Font struct {
	ID             string
	NormalizedName string
	FamilyName     string
	BaseName       string
	IsBold         bool
	IsItalic       bool
	IsType3        bool
}

// NewFont mints a Font with a fresh registry ID.
func NewFont(normalizedName, familyName, baseName string, bold, italic, type3 bool) Font {
	return Font{
		ID:             uuid.NewString(),
		NormalizedName: normalizedName,
		FamilyName:     familyName,
		BaseName:       baseName,
		IsBold:         bold,
		IsItalic:       italic,
		IsType3:        type3,
	}
}

// FontFace is the pair (Font, font size) — the glossary's definition.
// Two FontFaces are compared by value equality on (family, size rounded
// to 0.1, bold, italic), per spec §9 DESIGN NOTES, so that character
// statistics can key a frequency map by FontFace without a pointer
// identity requirement.
type FontFace struct {
	Font     Font
	FontSize float64
}

// Key returns the hashable identity described in spec §9: family name,
// font size rounded to 0.1pt, bold, italic. Two FontFaces with the same
// Key are considered the same face for statistics purposes even if they
// point at different interned Font values (e.g. two Type1 subsets of the
// same family).
func (f FontFace) Key() FontFaceKey {
	return FontFaceKey{
		FamilyName: f.Font.FamilyName,
		FontSize:   math.Round(f.FontSize*10) / 10,
		IsBold:     f.Font.IsBold,
		IsItalic:   f.Font.IsItalic,
	}
}

// FontFaceKey is FontFace's hashable identity, suitable as a map key.
type FontFaceKey struct {
	FamilyName string
	FontSize   float64
	IsBold     bool
	IsItalic   bool
}

// IsZero reports whether this FontFace was never set (nil Font family
// and zero size), the value used when a statistic has no characters to
// summarize.
func (f FontFace) IsZero() bool {
	return f.Font.FamilyName == "" && f.Font.BaseName == "" && f.FontSize == 0
}

// SameFamilyName compares two FontFaces' font family name the way
// tokenize/blocks.significantFontFaceChange needs: nil-asymmetric, i.e.
// one empty and one non-empty family name counts as "different."
func SameFamilyName(a, b FontFace) bool {
	an, bn := a.Font.FamilyName, b.Font.FamilyName
	if an == "" && bn == "" {
		return true
	}
	if (an == "") != (bn == "") {
		return false
	}
	return an == bn
}
