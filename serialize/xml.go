// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package serialize

import (
	"strconv"
	"strings"

	"github.com/sassoftware/pdf-structure/model"
)

// xmlSerializer renders a view as the exact XML element tree spec §6
// names, indented two spaces per level, with XML-1.1 character-data
// escaping.
type xmlSerializer struct {
	cfg Config
}

func (s xmlSerializer) Serialize(doc *model.Document) ([]byte, error) {
	v := buildView(doc, s.cfg)
	w := &xmlWriter{}

	w.open("document", 0)
	writeParagraphs(w, v.paragraphs)
	writeWords(w, v.words)
	writeCharacters(w, v.characters)
	writeFigures(w, v.figures)
	writeShapes(w, v.shapes)
	writeFonts(w, v.fonts)
	writeColors(w, v.colors)
	writePages(w, v.pages)
	w.close("document", 0)

	return w.bytes(), nil
}

// xmlWriter accumulates indented XML text. depth 0 is the document root;
// every write call supplies its own depth explicitly rather than
// tracking a stack, since the element tree here is shallow and fixed.
type xmlWriter struct {
	b strings.Builder
}

func (w *xmlWriter) indent(depth int) {
	for i := 0; i < depth; i++ {
		w.b.WriteString("  ")
	}
}

func (w *xmlWriter) open(name string, depth int) {
	w.indent(depth)
	w.b.WriteByte('<')
	w.b.WriteString(name)
	w.b.WriteString(">\n")
}

func (w *xmlWriter) close(name string, depth int) {
	w.indent(depth)
	w.b.WriteString("</")
	w.b.WriteString(name)
	w.b.WriteString(">\n")
}

func (w *xmlWriter) leaf(name, value string, depth int) {
	w.indent(depth)
	w.b.WriteByte('<')
	w.b.WriteString(name)
	w.b.WriteByte('>')
	w.b.WriteString(escapeXML(value))
	w.b.WriteString("</")
	w.b.WriteString(name)
	w.b.WriteString(">\n")
}

func (w *xmlWriter) bytes() []byte { return []byte(w.b.String()) }

// escapeXML applies XML-1.1's five predefined entity escapes.
func escapeXML(s string) string {
	var replacer = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func writeRectangleFields(w *xmlWriter, rect model.Rectangle, depth int) {
	w.leaf("minX", formatFloat(rect.MinX()), depth)
	w.leaf("minY", formatFloat(rect.MinY()), depth)
	w.leaf("maxX", formatFloat(rect.MaxX()), depth)
	w.leaf("maxY", formatFloat(rect.MaxY()), depth)
}

func writePosition(w *xmlWriter, pos model.Position, depth int) {
	w.open("position", depth)
	w.leaf("page", strconv.Itoa(pos.PageNumber), depth+1)
	writeRectangleFields(w, pos.Rectangle, depth+1)
	w.close("position", depth)
}

func writeFontFaceFields(w *xmlWriter, face model.FontFace, depth int) {
	w.leaf("font", face.Font.ID, depth)
	w.leaf("fontsize", formatFloat(face.FontSize), depth)
}

func writeParagraphs(w *xmlWriter, paragraphs []model.Paragraph) {
	if len(paragraphs) == 0 {
		return
	}
	w.open("paragraphs", 1)
	for _, p := range paragraphs {
		w.open("paragraph", 2)
		w.leaf("role", string(p.SemanticRole), 3)
		w.leaf("text", p.Text, 3)
		if len(p.Positions) > 0 {
			w.open("positions", 3)
			for _, pos := range p.Positions {
				writePosition(w, pos, 4)
			}
			w.close("positions", 3)
		}
		w.close("paragraph", 2)
	}
	w.close("paragraphs", 1)
}

func writeWords(w *xmlWriter, words []model.Word) {
	if len(words) == 0 {
		return
	}
	w.open("words", 1)
	for _, word := range words {
		w.open("word", 2)
		w.leaf("text", word.Text, 3)
		writeRectangleFields(w, word.Rectangle, 3)
		if len(word.Characters) > 0 {
			writeFontFaceFields(w, word.Characters[0].FontFace, 3)
			w.leaf("color", word.Characters[0].Color.ID, 3)
		}
		w.close("word", 2)
	}
	w.close("words", 1)
}

func writeCharacters(w *xmlWriter, characters []model.Character) {
	if len(characters) == 0 {
		return
	}
	w.open("characters", 1)
	for _, c := range characters {
		w.open("character", 2)
		w.leaf("text", c.Text, 3)
		writeRectangleFields(w, c.Rectangle, 3)
		writeFontFaceFields(w, c.FontFace, 3)
		w.leaf("color", c.Color.ID, 3)
		w.close("character", 2)
	}
	w.close("characters", 1)
}

func writeFigures(w *xmlWriter, figures []model.Figure) {
	if len(figures) == 0 {
		return
	}
	w.open("figures", 1)
	for _, f := range figures {
		w.open("figure", 2)
		w.leaf("page", strconv.Itoa(f.PageNumber), 3)
		writeRectangleFields(w, f.Rectangle, 3)
		w.close("figure", 2)
	}
	w.close("figures", 1)
}

func writeShapes(w *xmlWriter, shapes []model.Shape) {
	if len(shapes) == 0 {
		return
	}
	w.open("shapes", 1)
	for _, s := range shapes {
		w.open("shape", 2)
		w.leaf("page", strconv.Itoa(s.PageNumber), 3)
		writeRectangleFields(w, s.Rectangle, 3)
		w.close("shape", 2)
	}
	w.close("shapes", 1)
}

func writeFonts(w *xmlWriter, fonts []model.Font) {
	if len(fonts) == 0 {
		return
	}
	w.open("fonts", 1)
	for _, f := range fonts {
		w.open("font", 2)
		w.leaf("id", f.ID, 3)
		w.leaf("name", f.NormalizedName, 3)
		w.leaf("isBold", formatBool(f.IsBold), 3)
		w.leaf("isItalic", formatBool(f.IsItalic), 3)
		w.leaf("isType3", formatBool(f.IsType3), 3)
		w.close("font", 2)
	}
	w.close("fonts", 1)
}

func writeColors(w *xmlWriter, colors []model.Color) {
	if len(colors) == 0 {
		return
	}
	w.open("colors", 1)
	for _, c := range colors {
		w.open("color", 2)
		w.leaf("id", c.ID, 3)
		w.leaf("r", strconv.Itoa(c.R), 3)
		w.leaf("g", strconv.Itoa(c.G), 3)
		w.leaf("b", strconv.Itoa(c.B), 3)
		w.close("color", 2)
	}
	w.close("colors", 1)
}

func writePages(w *xmlWriter, pages []model.Page) {
	if len(pages) == 0 {
		return
	}
	w.open("pages", 1)
	for _, p := range pages {
		w.open("page", 2)
		w.leaf("width", formatFloat(p.Width), 3)
		w.leaf("height", formatFloat(p.Height), 3)
		for _, block := range p.TextBlocks {
			w.open("textBlock", 3)
			w.leaf("role", string(block.SemanticRole), 4)
			w.leaf("text", block.Text, 4)
			writeRectangleFields(w, block.Rectangle, 4)
			for _, line := range block.TextLines {
				w.open("textLine", 5)
				w.leaf("text", line.Text, 6)
				writeRectangleFields(w, line.Rectangle, 6)
				w.close("textLine", 5)
			}
			w.close("textBlock", 3)
		}
		w.close("page", 2)
	}
	w.close("pages", 1)
}
