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

import "log/slog"

// Rule selects how the accumulated winding number at a pixel is mapped to
// inside/outside.
type Rule int

const (
	// RuleOdd fills a pixel iff the winding number is odd.
	RuleOdd Rule = 1
	// RuleNonZero fills a pixel iff the winding number is nonzero.
	RuleNonZero Rule = 2
)

// Polygon is the input to [Raster.Done] and [Raster.DoneHigh]: a point
// stream plus a list of per-contour vertex counts. Contours are implicitly
// closed (the last point of a contour is paired with its first).
type Polygon struct {
	Points []FPoint

	// Counts gives the vertex count of each contour, optionally terminated
	// by a zero sentinel; the walk stops at the first zero or at the end of
	// the slice, whichever comes first.
	Counts []uint16

	// Convex is true iff every contour is convex. The rasterizer trusts
	// this flag rather than re-deriving it; see convexScanline's
	// defensive fallback for what happens when it is wrong.
	Convex bool
}

// SpanFunc is called once per emitted span, normally covering a single
// scanline. yEnd is always greater than yStart; it
// equals yStart+1 except for the convex rectangular fast path, which may
// report several scanlines at once. left and right point into the
// Raster's internal edge pool and are valid only until the next call on
// the same Raster.
type SpanFunc func(yStart, yEnd int32, left, right *Edge)

// SpanFuncHigh is the [Raster.DoneHigh] counterpart of [SpanFunc]: span
// boundaries are exact FX values rather than integer scanlines.
type SpanFuncHigh func(yStart, yEnd FX, left, right *Edge)

// Raster rasterizes filled polygons into spans. The zero value is not
// usable; construct one with [New]. A Raster owns a growable edge pool and
// edge table that are reset, never freed, between calls to [Raster.Done]
// or [Raster.DoneHigh], so that reusing one instance across many polygons
// costs no repeated allocation once the buffers reach their working size.
//
// A Raster is single-threaded and non-reentrant: do not call its methods
// concurrently, and do not call them reentrantly from within a span
// callback. Separate instances share no state.
type Raster struct {
	pool  edgePool
	table edgeTable

	activeHead uint16
	order      bool
}

// New returns a ready-to-use Raster with empty buffers; they grow lazily
// on first use.
func New() *Raster {
	return &Raster{}
}

// Exit releases the Raster's internal buffers. The Raster must not be used
// again afterwards.
func (r *Raster) Exit() {
	r.pool.edges = nil
	r.table.buckets = nil
}

// prepare validates poly/bounds/rule, rebuilds the edge pool and table,
// and returns the polygon's clamped [top, bottom) scanline range. ok is
// false for anything that should silently emit no spans (degenerate
// bounds, an all-horizontal contour, or fewer than two usable edges); a
// non-nil err means the call must be aborted and reported to the caller.
func (r *Raster) prepare(poly *Polygon, bounds Bounds, rule Rule) (top, bottom int32, ok bool, err error) {
	if poly == nil {
		return 0, 0, false, ErrInvalidArgument
	}
	if rule != RuleOdd && rule != RuleNonZero {
		slog.Error("raster: unknown fill rule, zero-filling", "rule", int(rule))
		return 0, 0, false, ErrInvalidArgument
	}

	w := bounds.URx - bounds.LLx
	h := bounds.URy - bounds.LLy
	if w == 0 || h == 0 {
		return 0, 0, false, nil
	}

	yBase := FXFromFloat(bounds.LLy).Round()
	yLimit := FXFromFloat(bounds.URy).Round()
	height := yLimit - yBase
	if height <= 0 {
		return 0, 0, false, nil
	}

	r.pool.reset()
	r.table.init(yBase, height)

	top, bottom, err = buildEdges(&r.pool, &r.table, poly)
	if err != nil {
		r.pool.reset()
		return 0, 0, false, err
	}
	if bottom <= top || r.pool.used-1 < 2 {
		return 0, 0, false, nil
	}
	if top < yBase {
		top = yBase
	}
	if bottom > yLimit {
		bottom = yLimit
	}
	if bottom <= top {
		return 0, 0, false, nil
	}
	return top, bottom, true, nil
}

// Done rasterizes poly within bounds under rule, calling emit once per
// emitted span. It returns nil having emitted no spans for a degenerate
// polygon (empty bounds, an all-horizontal contour, or fewer than two
// usable edges). A non-nil error means the call was aborted without
// partial output; the Raster remains valid for the next call.
func (r *Raster) Done(poly *Polygon, bounds Bounds, rule Rule, emit SpanFunc) error {
	if emit == nil {
		return ErrInvalidArgument
	}
	top, bottom, ok, err := r.prepare(poly, bounds, rule)
	if err != nil || !ok {
		return err
	}
	r.scan(poly, rule, top, bottom, emit)
	return nil
}

// DoneHigh is the high-precision sibling of [Done] described in §4.7 of
// the design notes: span boundaries are exact FX values rather than whole
// scanlines. It requires a concave polygon (poly.Convex must be false),
// since the convex rectangular fast path has no sub-scanline analogue.
func (r *Raster) DoneHigh(poly *Polygon, bounds Bounds, rule Rule, emit SpanFuncHigh) error {
	if emit == nil {
		return ErrInvalidArgument
	}
	if poly != nil && poly.Convex {
		return ErrInvalidArgument
	}
	top, bottom, ok, err := r.prepare(poly, bounds, rule)
	if err != nil || !ok {
		return err
	}
	r.scanHigh(rule, FXFromInt(top), FXFromInt(bottom), emit)
	return nil
}
