// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangle_OrdersCoordinates(t *testing.T) {
	r := NewRectangle(10, 20, 2, 5)
	assert.Equal(t, 2.0, r.MinX())
	assert.Equal(t, 5.0, r.MinY())
	assert.Equal(t, 10.0, r.MaxX())
	assert.Equal(t, 20.0, r.MaxY())
}

func TestRectangle_OverlapsHorizontally(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rectangle
		expected bool
	}{
		{"disjoint", NewRectangle(0, 0, 10, 10), NewRectangle(20, 0, 30, 10), false},
		{"touching edge", NewRectangle(0, 0, 10, 10), NewRectangle(10, 0, 20, 10), true},
		{"overlapping", NewRectangle(0, 0, 10, 10), NewRectangle(5, 0, 15, 10), true},
		{"contained", NewRectangle(0, 0, 10, 10), NewRectangle(2, 0, 8, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.OverlapsHorizontally(tt.b))
		})
	}
}

func TestUnionRectangles_ClosesOverMembers(t *testing.T) {
	rects := []Rectangle{
		NewRectangle(0, 0, 10, 5),
		NewRectangle(-5, 2, 8, 12),
		NewRectangle(3, -1, 6, 3),
	}
	union := UnionRectangles(rects)
	assert.Equal(t, -5.0, union.MinX())
	assert.Equal(t, -1.0, union.MinY())
	assert.Equal(t, 10.0, union.MaxX())
	assert.Equal(t, 12.0, union.MaxY())
}

func TestLinePitch_NaNWhenEitherLineMissing(t *testing.T) {
	line := &Line{StartY: 100}
	assert.True(t, math.IsNaN(LinePitch(nil, line)))
	assert.True(t, math.IsNaN(LinePitch(line, nil)))
	assert.True(t, math.IsNaN(LinePitch(nil, nil)))
}

func TestLinePitch_AbsoluteDifference(t *testing.T) {
	a := &Line{StartY: 700}
	b := &Line{StartY: 688}
	assert.Equal(t, 12.0, LinePitch(a, b))
	assert.Equal(t, 12.0, LinePitch(b, a))
}
