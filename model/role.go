// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package model

// SemanticRole is the closed enum of spec §3: the logical function of a
// text block.
type SemanticRole string

const (
	RoleAbstract        SemanticRole = "ABSTRACT"
	RoleAcknowledgments SemanticRole = "ACKNOWLEDGMENTS"
	RoleBodyText        SemanticRole = "BODY_TEXT"
	RoleCaption         SemanticRole = "CAPTION"
	RoleCategories      SemanticRole = "CATEGORIES"
	RoleFootnote        SemanticRole = "FOOTNOTE"
	RoleGeneralTerms    SemanticRole = "GENERAL_TERMS"
	RoleHeading         SemanticRole = "HEADING"
	RoleItemizeItem     SemanticRole = "ITEMIZE_ITEM"
	RoleKeywords        SemanticRole = "KEYWORDS"
	RolePageHeader      SemanticRole = "PAGE_HEADER"
	RolePageFooter      SemanticRole = "PAGE_FOOTER"
	RoleReference       SemanticRole = "REFERENCE"
	RoleTable           SemanticRole = "TABLE"
	RoleTitle           SemanticRole = "TITLE"
	RoleFormula         SemanticRole = "FORMULA"
	RoleOther           SemanticRole = "OTHER"
)

// AllSemanticRoles enumerates the closed set, in the order spec §3 lists
// them. Useful for validating a caller-supplied inclusion set.
var AllSemanticRoles = []SemanticRole{
	RoleAbstract, RoleAcknowledgments, RoleBodyText, RoleCaption,
	RoleCategories, RoleFootnote, RoleGeneralTerms, RoleHeading,
	RoleItemizeItem, RoleKeywords, RolePageHeader, RolePageFooter,
	RoleReference, RoleTable, RoleTitle, RoleFormula, RoleOther,
}

// RoleSet is a set of SemanticRoles, used by the Serializer to decide
// which Paragraphs/Words/Characters to emit (spec §4.6).
type RoleSet map[SemanticRole]bool

// NewRoleSet builds a RoleSet from the given roles.
func NewRoleSet(roles ...SemanticRole) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return set
}

// Contains reports whether role is in the set.
func (s RoleSet) Contains(role SemanticRole) bool {
	return s[role]
}

// ExtractionUnit is the closed enum of spec §3: the granularity at which
// a caller wants serialized output.
type ExtractionUnit string

const (
	UnitCharacter ExtractionUnit = "CHARACTER"
	UnitWord      ExtractionUnit = "WORD"
	UnitParagraph ExtractionUnit = "PARAGRAPH"
	UnitFigure    ExtractionUnit = "FIGURE"
	UnitShape     ExtractionUnit = "SHAPE"
	UnitPage      ExtractionUnit = "PAGE"
)

// UnitSet is a set of ExtractionUnits.
type UnitSet map[ExtractionUnit]bool

// NewUnitSet builds a UnitSet from the given units.
func NewUnitSet(units ...ExtractionUnit) UnitSet {
	set := make(UnitSet, len(units))
	for _, u := range units {
		set[u] = true
	}
	return set
}

// Contains reports whether unit is in the set.
func (s UnitSet) Contains(unit ExtractionUnit) bool {
	return s[unit]
}
