// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package serialize implements the Serializer of spec §4.6: a common
// contract, `serialize(Document) → bytes`, backed by XML, JSON, and TXT
// implementations, parameterized by the ExtractionUnits and
// SemanticRoles to include.
package serialize

import (
	"github.com/pkg/errors"

	"github.com/sassoftware/pdf-structure/model"
)

// Serializer turns a Document into a byte stream (spec §4.6).
type Serializer interface {
	Serialize(doc *model.Document) ([]byte, error)
}

// Config selects what a Serializer emits: which ExtractionUnits, and
// which SemanticRoles a Paragraph must carry to be (and to let its
// Words/Characters be) emitted.
type Config struct {
	Units model.UnitSet
	Roles model.RoleSet
}

// Format names the three backends spec §4.6 mandates.
type Format string

const (
	FormatXML Format = "xml"
	FormatJSON Format = "json"
	FormatTXT Format = "txt"
)

// New returns the Serializer for the given format and config.
func New(format Format, cfg Config) (Serializer, error) {
	switch format {
	case FormatXML:
		return xmlSerializer{cfg: cfg}, nil
	case FormatJSON:
		return jsonSerializer{cfg: cfg}, nil
	case FormatTXT:
		return txtSerializer{cfg: cfg}, nil
	default:
		return nil, errors.Errorf("serialize: unknown format %q", format)
	}
}

// view is the filtered, registry-deduplicated projection of a Document
// that every backend renders from, built once so the three backends
// agree on exactly what is "emitted" (spec §4.6's font/color registry
// soundness contract).
type view struct {
	paragraphs []model.Paragraph
	words      []model.Word
	characters []model.Character
	figures    []model.Figure
	shapes     []model.Shape
	pages      []model.Page
	fonts      []model.Font
	colors     []model.Color
}

func buildView(doc *model.Document, cfg Config) view {
	var v view
	fontSeen := make(map[string]bool)
	colorSeen := make(map[string]bool)

	addFont := func(f model.Font) {
		if f.ID == "" || fontSeen[f.ID] {
			return
		}
		fontSeen[f.ID] = true
		v.fonts = append(v.fonts, f)
	}
	addColor := func(c model.Color) {
		if c.ID == "" || colorSeen[c.ID] {
			return
		}
		colorSeen[c.ID] = true
		v.colors = append(v.colors, c)
	}

	for _, p := range doc.Paragraphs {
		if !cfg.Roles.Contains(p.SemanticRole) {
			continue
		}
		if cfg.Units.Contains(model.UnitParagraph) {
			v.paragraphs = append(v.paragraphs, p)
		}
		for _, w := range p.Words {
			if cfg.Units.Contains(model.UnitWord) {
				v.words = append(v.words, w)
				if len(w.Characters) > 0 {
					addFont(w.Characters[0].FontFace.Font)
					addColor(w.Characters[0].Color)
				}
			}
			if cfg.Units.Contains(model.UnitCharacter) {
				for _, c := range w.Characters {
					v.characters = append(v.characters, c)
					addFont(c.FontFace.Font)
					addColor(c.Color)
				}
			}
		}
	}

	if cfg.Units.Contains(model.UnitFigure) {
		v.figures = doc.AllFigures()
	}
	if cfg.Units.Contains(model.UnitShape) {
		v.shapes = doc.AllShapes()
	}
	if cfg.Units.Contains(model.UnitPage) {
		v.pages = doc.Pages
	}
	return v
}
