// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package serialize

import (
	"encoding/json"

	"github.com/sassoftware/pdf-structure/model"
)

// jsonSerializer renders a view as JSON. The wire shape mirrors the XML
// backend's element tree exactly (same fields, same filtering), just in
// JSON's native container types instead of the XML tag tree.
type jsonSerializer struct {
	cfg Config
}

type jsonDocument struct {
	Paragraphs []jsonParagraph `json:"paragraphs,omitempty"`
	Words      []jsonWord      `json:"words,omitempty"`
	Characters []jsonCharacter `json:"characters,omitempty"`
	Figures    []jsonFigure    `json:"figures,omitempty"`
	Shapes     []jsonShape     `json:"shapes,omitempty"`
	Fonts      []jsonFont      `json:"fonts,omitempty"`
	Colors     []jsonColor     `json:"colors,omitempty"`
	Pages      []jsonPage      `json:"pages,omitempty"`
}

type jsonRectangle struct {
	MinX, MinY, MaxX, MaxY float64
}

type jsonPosition struct {
	Page int
	jsonRectangle
}

type jsonParagraph struct {
	Role      string
	Text      string
	Positions []jsonPosition `json:"positions,omitempty"`
}

type jsonWord struct {
	Text string
	jsonRectangle
	Font     string `json:"font,omitempty"`
	FontSize float64 `json:"fontsize,omitempty"`
	Color    string `json:"color,omitempty"`
}

type jsonCharacter struct {
	Text string
	jsonRectangle
	Font     string
	FontSize float64 `json:"fontsize"`
	Color    string
}

type jsonFigure struct {
	Page int
	jsonRectangle
}

type jsonShape struct {
	Page int
	jsonRectangle
}

type jsonFont struct {
	ID       string
	Name     string
	IsBold   bool
	IsItalic bool
	IsType3  bool
}

type jsonColor struct {
	ID      string
	R, G, B int
}

type jsonTextLine struct {
	Text string
	jsonRectangle
}

type jsonTextBlock struct {
	Role string
	Text string
	jsonRectangle
	TextLines []jsonTextLine `json:"textLines,omitempty"`
}

type jsonPage struct {
	Width, Height float64
	TextBlocks    []jsonTextBlock `json:"textBlocks,omitempty"`
}

func toJSONRectangle(r model.Rectangle) jsonRectangle {
	return jsonRectangle{MinX: r.MinX(), MinY: r.MinY(), MaxX: r.MaxX(), MaxY: r.MaxY()}
}

func (s jsonSerializer) Serialize(doc *model.Document) ([]byte, error) {
	v := buildView(doc, s.cfg)
	out := jsonDocument{}

	for _, p := range v.paragraphs {
		jp := jsonParagraph{Role: string(p.SemanticRole), Text: p.Text}
		for _, pos := range p.Positions {
			jp.Positions = append(jp.Positions, jsonPosition{Page: pos.PageNumber, jsonRectangle: toJSONRectangle(pos.Rectangle)})
		}
		out.Paragraphs = append(out.Paragraphs, jp)
	}

	for _, w := range v.words {
		jw := jsonWord{Text: w.Text, jsonRectangle: toJSONRectangle(w.Rectangle)}
		if len(w.Characters) > 0 {
			jw.Font = w.Characters[0].FontFace.Font.ID
			jw.FontSize = w.Characters[0].FontFace.FontSize
			jw.Color = w.Characters[0].Color.ID
		}
		out.Words = append(out.Words, jw)
	}

	for _, c := range v.characters {
		out.Characters = append(out.Characters, jsonCharacter{
			Text:          c.Text,
			jsonRectangle: toJSONRectangle(c.Rectangle),
			Font:          c.FontFace.Font.ID,
			FontSize:      c.FontFace.FontSize,
			Color:         c.Color.ID,
		})
	}

	for _, f := range v.figures {
		out.Figures = append(out.Figures, jsonFigure{Page: f.PageNumber, jsonRectangle: toJSONRectangle(f.Rectangle)})
	}
	for _, sh := range v.shapes {
		out.Shapes = append(out.Shapes, jsonShape{Page: sh.PageNumber, jsonRectangle: toJSONRectangle(sh.Rectangle)})
	}
	for _, f := range v.fonts {
		out.Fonts = append(out.Fonts, jsonFont{ID: f.ID, Name: f.NormalizedName, IsBold: f.IsBold, IsItalic: f.IsItalic, IsType3: f.IsType3})
	}
	for _, c := range v.colors {
		out.Colors = append(out.Colors, jsonColor{ID: c.ID, R: c.R, G: c.G, B: c.B})
	}
	for _, p := range v.pages {
		jp := jsonPage{Width: p.Width, Height: p.Height}
		for _, block := range p.TextBlocks {
			jb := jsonTextBlock{Role: string(block.SemanticRole), Text: block.Text, jsonRectangle: toJSONRectangle(block.Rectangle)}
			for _, line := range block.TextLines {
				jb.TextLines = append(jb.TextLines, jsonTextLine{Text: line.Text, jsonRectangle: toJSONRectangle(line.Rectangle)})
			}
			jp.TextBlocks = append(jp.TextBlocks, jb)
		}
		out.Pages = append(out.Pages, jp)
	}

	return json.Marshal(out)
}
