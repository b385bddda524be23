// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/sassoftware/pdf-structure/logger"
	"github.com/sassoftware/pdf-structure/model"
)

// fontRegistry interns Font values by their (family, bold, italic,
// type3) identity, so every Character sharing a face points at the same
// model.Font.ID rather than minting a fresh UUID per glyph (spec §3:
// "Font ... interned once per Document").
type fontRegistry struct {
	byKey map[fontKey]model.Font
}

type fontKey struct {
	family string
	bold   bool
	italic bool
	type3  bool
}

func newFontRegistry() *fontRegistry {
	return &fontRegistry{byKey: make(map[fontKey]model.Font)}
}

func (reg *fontRegistry) intern(baseFont string, bold, italic, type3 bool) model.Font {
	family := normalizeFontFamily(baseFont)
	key := fontKey{family: family, bold: bold, italic: italic, type3: type3}
	if f, ok := reg.byKey[key]; ok {
		return f
	}
	f := model.NewFont(strings.ToLower(family), family, baseFont, bold, italic, type3)
	reg.byKey[key] = f
	return f
}

// fontStyleSuffix matches a "-Bold"/"-Italic"/",BoldItalic"-style suffix
// PDF producers append to a BaseFont name. normalizeFontFamily strips the
// subset tag (e.g. "ABCDEF+") and then removes such suffixes repeatedly,
// leaving the family name the way a reader would say it.
var fontStyleSuffix = regexp.MustCompile(`(?i)[,\-](bold|italic|oblique|boldoblique|bolditalic|regular)+$`)

func normalizeFontFamily(baseFont string) string {
	name := baseFont
	if i := strings.Index(name, "+"); i >= 0 {
		name = name[i+1:]
	}
	for {
		stripped := fontStyleSuffix.ReplaceAllString(name, "")
		if stripped == name {
			break
		}
		name = stripped
	}
	if name == "" {
		return baseFont
	}
	return name
}

// colorRegistry interns Color values by their RGB channel triple.
type colorRegistry struct {
	byRGB map[[3]int]model.Color
}

func newColorRegistry() *colorRegistry {
	return &colorRegistry{byRGB: make(map[[3]int]model.Color)}
}

func (reg *colorRegistry) intern(r, g, b int) model.Color {
	key := [3]int{r, g, b}
	if c, ok := reg.byRGB[key]; ok {
		return c
	}
	c := model.NewColor(r, g, b)
	reg.byRGB[key] = c
	return c
}

// Produce runs the Character Producer contract (spec §2 step 1, §6):
// it walks every page of an already-opened Reader and translates the
// teacher's Content (Text/Rect/Image slices) into a model.Document. It
// is the sole bridge between the low-level PDF object model above and
// the layout/semantic core in the subpackages below.
//
// Produce never returns a partial Document on error: a page that cannot
// be read is either skipped (Config.ParsingMode == BestEffort, reported
// via Config.Observer as InconsistentGeometry) or turned into a fatal
// ParseError (Config.ParsingMode == Strict), matching the two
// ExtractorStrategy behaviors processor.go already implements for plain
// text extraction.
func Produce(ctx context.Context, r *Reader, cfg *Config) (*model.Document, error) {
	observer := cfg.Observer
	if observer == nil {
		observer = noopObserver{}
	}

	total := r.NumPage()
	doc := &model.Document{Pages: make([]model.Page, 0, total)}
	fonts := newFontRegistry()
	colors := newColorRegistry()

	for i := 1; i <= total; i++ {
		select {
		case <-ctx.Done():
			return nil, &Cancelled{Err: ctx.Err()}
		default:
		}

		page, err := producePage(r, i, fonts, colors)
		if err != nil {
			if cfg.ParsingMode == Strict {
				return nil, &ParseError{Reason: errors.Wrap(err, "producing page").Error()}
			}
			logger.Debug("skipping unreadable page", "page", i, "err", err)
			observer.OnDiagnostic(Diagnostic{Kind: "InconsistentGeometry", Page: i, Message: err.Error()})
			continue
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

// producePage extracts one page's Characters, Figures, and Shapes. A
// null page (spec §4.1 edge case: a missing/empty page) yields an empty
// Page rather than an error, matching spec §7's EmptyInput semantics
// extended to the per-page granularity.
func producePage(r *Reader, number int, fonts *fontRegistry, colors *colorRegistry) (page model.Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("panic producing page %d: %v", number, rec)
		}
	}()

	p := r.Page(number)
	box := p.MediaBox()
	page = model.Page{
		Number: number,
		Width:  box.Max.X - box.Min.X,
		Height: box.Max.Y - box.Min.Y,
	}
	if p.V.IsNull() || p.V.Key("Contents").Kind() == Null {
		return page, nil
	}

	content := p.Content()

	page.Characters = make([]model.Character, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		face := model.FontFace{
			Font:     fonts.intern(t.Font, t.Bold, t.Italic, t.Type3),
			FontSize: t.FontSize,
		}
		page.Characters = append(page.Characters, model.Character{
			PageNumber: number,
			Rectangle:  model.NewRectangle(t.X, t.Y, t.X+t.W, t.Y+t.FontSize),
			FontFace:   face,
			Color:      colors.intern(t.R, t.G, t.B),
			Text:       t.S,
			BaselineY:  t.Y,
			Rotation:   t.Rotation,
		})
	}

	page.Shapes = make([]model.Shape, 0, len(content.Rect))
	for _, rect := range content.Rect {
		page.Shapes = append(page.Shapes, model.Shape{
			PageNumber: number,
			Rectangle:  model.NewRectangle(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y),
		})
	}

	page.Figures = make([]model.Figure, 0, len(content.Image))
	for _, rect := range content.Image {
		page.Figures = append(page.Figures, model.Figure{
			PageNumber: number,
			Rectangle:  model.NewRectangle(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y),
		})
	}

	return page, nil
}
