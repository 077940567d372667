// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

type span struct {
	y0, y1 int32
	lx, rx int32
}

func collect(t *testing.T, poly *Polygon, b Bounds, rule Rule) []span {
	t.Helper()
	r := New()
	var spans []span
	err := r.Done(poly, b, rule, func(y0, y1 int32, left, right *Edge) {
		spans = append(spans, span{y0, y1, left.X.Round(), right.X.Round()})
	})
	require.NoError(t, err)
	return spans
}

func rectPoly() *Polygon {
	return &Polygon{
		Points: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 0, Y: 5}},
		Counts: []uint16{4},
	}
}

// TestRectangleConcave covers the axis-aligned-rectangle scenario: five
// identical unit-height spans, one per scanline.
func TestRectangleConcave(t *testing.T) {
	b := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5}
	spans := collect(t, rectPoly(), b, RuleOdd)

	require.Len(t, spans, 5)
	for i, s := range spans {
		assert.Equal(t, int32(i), s.y0)
		assert.Equal(t, int32(i+1), s.y1)
		assert.Equal(t, int32(0), s.lx)
		assert.Equal(t, int32(10), s.rx)
	}
}

// TestRectangleConvexFastPath covers the same rectangle with Convex set:
// the whole run should collapse to a single span via the rectangular
// optimization in convexScanline.
func TestRectangleConvexFastPath(t *testing.T) {
	poly := rectPoly()
	poly.Convex = true
	b := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5}
	spans := collect(t, poly, b, RuleOdd)

	require.Len(t, spans, 1)
	assert.Equal(t, span{0, 5, 0, 10}, spans[0])
}

// TestConvexFastPathParityWithConcave checks property 8 from the design
// notes: a convex polygon rasterized through the fast path must produce
// the same covered pixels (after expanding multi-scanline spans) as the
// same contour rasterized through the general concave path.
func TestConvexFastPathParityWithConcave(t *testing.T) {
	b := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5}

	concave := collect(t, rectPoly(), b, RuleNonZero)
	convexPoly := rectPoly()
	convexPoly.Convex = true
	convex := collect(t, convexPoly, b, RuleNonZero)

	expand := func(spans []span) map[int32][2]int32 {
		rows := make(map[int32][2]int32)
		for _, s := range spans {
			for y := s.y0; y < s.y1; y++ {
				rows[y] = [2]int32{s.lx, s.rx}
			}
		}
		return rows
	}
	assert.Equal(t, expand(concave), expand(convex))
}

// TestTriangle covers the unit-slope-triangle scenario: a diagonal right
// edge advancing by one pixel per scanline against a vertical left edge.
func TestTriangle(t *testing.T) {
	poly := &Polygon{
		Points: []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
		Counts: []uint16{3},
		Convex: true,
	}
	b := rect.Rect{LLx: 0, LLy: 0, URx: 4, URy: 4}
	spans := collect(t, poly, b, RuleOdd)

	want := []span{
		{0, 1, 0, 0},
		{1, 2, 0, 1},
		{2, 3, 0, 2},
		{3, 4, 0, 3},
	}
	assert.Equal(t, want, spans)
}

// TestBowtie covers the self-intersecting bowtie scenario: the contour
// traces both diagonals of a square, crossing at its center. Each lobe
// starts as a single point at the square's bottom corners, widens going
// up, and the two lobes' touching boundaries coalesce into one span at
// the crossing row before separating again on the row above it.
func TestBowtie(t *testing.T) {
	poly := &Polygon{
		Points: []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 4}},
		Counts: []uint16{4},
	}
	b := rect.Rect{LLx: 0, LLy: 0, URx: 4, URy: 4}
	spans := collect(t, poly, b, RuleOdd)

	byRow := make(map[int32][]span)
	for _, s := range spans {
		byRow[s.y0] = append(byRow[s.y0], s)
	}

	require.Len(t, byRow[0], 2)
	assert.Equal(t, span{0, 1, 0, 0}, byRow[0][0])
	assert.Equal(t, span{0, 1, 4, 4}, byRow[0][1])

	require.Len(t, byRow[1], 2)
	assert.Equal(t, span{1, 2, 0, 1}, byRow[1][0])
	assert.Equal(t, span{1, 2, 3, 4}, byRow[1][1])

	require.Len(t, byRow[2], 1, "the two lobes touch at the crossing row and must coalesce into one span")
	assert.Equal(t, span{2, 3, 0, 4}, byRow[2][0])

	require.Len(t, byRow[3], 2)
	assert.Equal(t, span{3, 4, 0, 1}, byRow[3][0])
	assert.Equal(t, span{3, 4, 3, 4}, byRow[3][1])
}

// TestAnnulusNonZero covers the two-contour scenario: an outer square
// wound one way and an inner square wound the other way, rasterized under
// RuleNonZero so the inner square is excluded from the fill.
func TestAnnulusNonZero(t *testing.T) {
	poly := &Polygon{
		Points: []vec.Vec2{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
			{X: 3, Y: 3}, {X: 3, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 3},
		},
		Counts: []uint16{4, 4},
	}
	b := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	spans := collect(t, poly, b, RuleNonZero)

	byRow := make(map[int32][]span)
	for _, s := range spans {
		byRow[s.y0] = append(byRow[s.y0], s)
	}
	require.Len(t, byRow[0], 1)
	assert.Equal(t, span{0, 1, 0, 10}, byRow[0][0])

	require.Len(t, byRow[5], 2, "a mid-annulus row must have a hole punched through it")
	assert.Equal(t, int32(0), byRow[5][0].lx)
	assert.Equal(t, int32(3), byRow[5][0].rx)
	assert.Equal(t, int32(7), byRow[5][1].lx)
	assert.Equal(t, int32(10), byRow[5][1].rx)
}

// TestDegenerateZeroHeightBounds covers a bounds rectangle with zero
// height: Done must return nil having emitted nothing, not panic or
// divide by zero.
func TestDegenerateZeroHeightBounds(t *testing.T) {
	poly := rectPoly()
	b := rect.Rect{LLx: 0, LLy: 3, URx: 10, URy: 3}
	spans := collect(t, poly, b, RuleOdd)
	assert.Empty(t, spans)
}

// TestHorizontalContourDrop covers an all-horizontal degenerate contour
// (zero net winding, every segment skipped by the edge builder): Done
// must emit nothing rather than erroring.
func TestHorizontalContourDrop(t *testing.T) {
	poly := &Polygon{
		Points: []vec.Vec2{{X: 0, Y: 2}, {X: 5, Y: 2}, {X: 10, Y: 2}},
		Counts: []uint16{3},
	}
	b := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	spans := collect(t, poly, b, RuleOdd)
	assert.Empty(t, spans)
}

// TestEdgeOrientationInvariant checks that buildEdges always normalizes an
// edge so YTop <= YBottom, flipping the winding sign when the original
// segment ran bottom-to-top, regardless of the vertex order in the input.
func TestEdgeOrientationInvariant(t *testing.T) {
	var pool edgePool
	var table edgeTable
	pool.reset()
	table.init(0, 10)

	// Only the (0,8)->(0,2) segment lands in bucket 2; the triangle's other
	// two edges both start at y=1, so they cannot collide with it there.
	poly := &Polygon{
		Points: []vec.Vec2{{X: 0, Y: 8}, {X: 0, Y: 2}, {X: -5, Y: 1}},
		Counts: []uint16{3},
	}
	top, bottom, err := buildEdges(&pool, &table, poly)
	require.NoError(t, err)
	assert.Equal(t, int32(1), top)
	assert.Equal(t, int32(8), bottom)

	idx := *table.bucket(2)
	require.NotZero(t, idx)
	e := pool.at(idx)
	assert.LessOrEqual(t, e.YTop, e.YBottom)
	assert.Equal(t, int32(2), e.YTop)
	assert.Equal(t, int32(7), e.YBottom)
	assert.Equal(t, int8(-1), e.Winding, "a segment that runs from high y to low y must flip winding once normalized")
}

// TestReentrySafety covers property 9: a Raster that overflowed on one
// call (too many edges) must still produce the exact rectangle scenario's
// span list on the very next call, with no leaked state.
func TestReentrySafety(t *testing.T) {
	r := New()

	// A single contour is capped at 65535 vertices (Counts is []uint16), so
	// an alternating-y zigzag of that length yields only ~65534 usable
	// edges (the closing edge wraps two same-parity vertices and is
	// dropped as horizontal). A second, small contour pushes the total
	// comfortably past the pool's 65535-edge ceiling.
	const zigzagLen = 65535
	zigzag := make([]vec.Vec2, zigzagLen)
	for i := range zigzag {
		zigzag[i] = vec.Vec2{X: float64(i), Y: float64(i % 2)}
	}
	extra := []vec.Vec2{{X: 0, Y: 10}, {X: 1, Y: 20}, {X: 2, Y: 10}, {X: 3, Y: 20}}
	huge := &Polygon{
		Points: append(append([]vec.Vec2{}, zigzag...), extra...),
		Counts: []uint16{zigzagLen, uint16(len(extra))},
	}
	b := rect.Rect{LLx: 0, LLy: 0, URx: float64(zigzagLen), URy: 20}
	err := r.Done(huge, b, RuleOdd, func(y0, y1 int32, left, right *Edge) {
		t.Fatalf("overflowing call must not emit any spans")
	})
	assert.ErrorIs(t, err, ErrTooManyEdges)

	var spans []span
	rb := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5}
	err = r.Done(rectPoly(), rb, RuleOdd, func(y0, y1 int32, left, right *Edge) {
		spans = append(spans, span{y0, y1, left.X.Round(), right.X.Round()})
	})
	require.NoError(t, err)
	require.Len(t, spans, 5)
	for i, s := range spans {
		assert.Equal(t, int32(i), s.y0)
		assert.Equal(t, int32(i+1), s.y1)
		assert.Equal(t, int32(0), s.lx)
		assert.Equal(t, int32(10), s.rx)
	}
}

// TestInvalidArguments checks the error-return contract for nil inputs and
// an unrecognized fill rule.
func TestInvalidArguments(t *testing.T) {
	r := New()
	b := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}

	err := r.Done(nil, b, RuleOdd, func(int32, int32, *Edge, *Edge) {})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = r.Done(rectPoly(), b, RuleOdd, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = r.Done(rectPoly(), b, Rule(99), func(int32, int32, *Edge, *Edge) {})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestDoneHighRejectsConvex checks that DoneHigh refuses a convex polygon,
// since the convex rectangular fast path has no sub-scanline analogue.
func TestDoneHighRejectsConvex(t *testing.T) {
	r := New()
	poly := rectPoly()
	poly.Convex = true
	b := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5}
	err := r.DoneHigh(poly, b, RuleOdd, func(FX, FX, *Edge, *Edge) {})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// TestDoneHighMatchesDoneOnIntegerBounds checks that the high-precision
// path reports exactly the same boundaries as the integer path when every
// vertex already falls on an integer scanline.
func TestDoneHighMatchesDoneOnIntegerBounds(t *testing.T) {
	r := New()
	b := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 5}

	var highSpans []span
	err := r.DoneHigh(rectPoly(), b, RuleOdd, func(y0, y1 FX, left, right *Edge) {
		highSpans = append(highSpans, span{y0.Round(), y1.Round(), left.X.Round(), right.X.Round()})
	})
	require.NoError(t, err)

	plainSpans := collect(t, rectPoly(), b, RuleOdd)
	assert.Equal(t, plainSpans, highSpans)
}
