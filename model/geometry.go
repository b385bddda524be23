// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package model holds the entities of spec §3: the layout and semantic
// structure recovered from a PDF, independent of how it was produced or
// how it will be serialized.
package model

import (
	"math"

	"github.com/golang/geo/r2"
)

// Rectangle is an axis-aligned box in PDF coordinate space (origin
// bottom-left). It always satisfies MinX() <= MaxX() and MinY() <= MaxY().
type Rectangle struct {
	r r2.Rect
}

// NewRectangle builds a Rectangle from its four bounds, ordering the
// coordinates so the invariant holds regardless of argument order.
func NewRectangle(x1, y1, x2, y2 float64) Rectangle {
	return Rectangle{r: r2.RectFromPoints(
		r2.Point{X: x1, Y: y1},
		r2.Point{X: x2, Y: y2},
	)}
}

// EmptyRectangle returns the rectangle with no area, used as the
// accumulator seed for UnionRectangles.
func EmptyRectangle() Rectangle {
	return Rectangle{r: r2.EmptyRect()}
}

func (rect Rectangle) MinX() float64 { return rect.r.Lo().X }
func (rect Rectangle) MinY() float64 { return rect.r.Lo().Y }
func (rect Rectangle) MaxX() float64 { return rect.r.Hi().X }
func (rect Rectangle) MaxY() float64 { return rect.r.Hi().Y }

// Width and Height are in points.
func (rect Rectangle) Width() float64  { return rect.r.Hi().X - rect.r.Lo().X }
func (rect Rectangle) Height() float64 { return rect.r.Hi().Y - rect.r.Lo().Y }

// IsZero reports whether the rectangle was never grown by a point or
// union, i.e. it carries no geometry.
func (rect Rectangle) IsZero() bool {
	return !rect.r.IsValid() || (rect.r.Lo() == r2.Point{} && rect.r.Hi() == r2.Point{})
}

// OverlapsHorizontally reports whether the x-intervals of the two
// rectangles intersect (spec §4.2 "overlapsHorizontally"). Any overlap,
// including a shared boundary, counts as true.
func (rect Rectangle) OverlapsHorizontally(other Rectangle) bool {
	return rect.MinX() <= other.MaxX() && other.MinX() <= rect.MaxX()
}

// Union returns the smallest rectangle containing both rect and other.
func (rect Rectangle) Union(other Rectangle) Rectangle {
	if rect.IsZero() {
		return other
	}
	if other.IsZero() {
		return rect
	}
	return Rectangle{r: rect.r.Union(other.r)}
}

// UnionRectangles folds Union over every rectangle in rects.
func UnionRectangles(rects []Rectangle) Rectangle {
	out := EmptyRectangle()
	for _, r := range rects {
		out = out.Union(r)
	}
	return out
}

// HasPosition is implemented by any entity that can contribute to a
// bounding-rectangle union (text lines, text blocks, ...).
type HasPosition interface {
	Rect() Rectangle
}

// RectangleFromPositioned unions the rectangles of every positioned
// element, mirroring the original's Rectangle.fromHasPositionElements.
func RectangleFromPositioned[T HasPosition](elements []T) Rectangle {
	out := EmptyRectangle()
	for _, e := range elements {
		out = out.Union(e.Rect())
	}
	return out
}

// Line is a horizontal-ish line segment, used to represent a TextLine's
// baseline.
type Line struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// Y returns the baseline's reference Y coordinate (its start point),
// which is what line-pitch computations compare.
func (l Line) Y() float64 { return l.StartY }

// Position ties a Rectangle to the Page it lives on (spec §3).
type Position struct {
	PageNumber int
	Rectangle  Rectangle
}

// linePitch is |a.Y - b.Y|, or NaN if either line is absent. Spec §4.2
// treats NaN as "not larger than expected" everywhere it is compared.
func linePitch(a, b *Line) float64 {
	if a == nil || b == nil {
		return math.NaN()
	}
	return math.Abs(a.Y() - b.Y())
}

// LinePitch is the exported form of linePitch for use outside the
// package (tokenize/blocks needs it on TextLine baselines).
func LinePitch(a, b *Line) float64 { return linePitch(a, b) }
