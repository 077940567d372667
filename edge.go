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

// edgePoolGrowBy is the number of additional slots allocated each time the
// edge pool runs out of room.
const edgePoolGrowBy = 2048

// maxEdges is the largest number of edges a single run may use: edge
// indices are stored in 16 bits, with 0 reserved as the null terminator.
const maxEdges = 1<<16 - 1

// Edge is one non-horizontal segment of a polygon contour, as deposited
// into the edge pool by the edge builder and consumed by the scan driver.
// Callbacks passed to [Raster.Done] receive pointers into the pool; they
// remain valid only until the next call on the same [Raster].
type Edge struct {
	Winding int8 // +1 if the original segment ran top-to-bottom, -1 otherwise

	YTop, YBottom int32 // inclusive integer scanline range

	X, Slope FX // current x at the scanline being processed; dx/dy

	XTop, XBottom FX // original endpoint x, kept for span rendering

	DYTop, DYBottom FX // sub-pixel offsets from the rounded endpoints, in [-0.5, 0.5]

	IsTop bool // true only on the first scanline this edge is active

	next uint16 // index of the next edge in whichever list owns this edge
}

// edgePool is a dense, 1-indexed array of edges. Index 0 is reserved as the
// null/terminator sentinel so that a uint16 field can double as an
// optional link. The pool grows by [edgePoolGrowBy] elements at a time and
// is reset, not freed, between runs.
type edgePool struct {
	edges []Edge
	used  int // number of slots in use, including the unused index 0
}

func (p *edgePool) reset() {
	p.used = 1 // index 0 is always "in use" as the null sentinel
}

// alloc reserves the next free slot and returns its index, or 0 with
// ErrTooManyEdges if no more edges can be stored.
func (p *edgePool) alloc() (uint16, error) {
	if p.used > maxEdges {
		return 0, ErrTooManyEdges
	}
	if p.used >= len(p.edges) {
		newCap := len(p.edges) + edgePoolGrowBy
		if newCap > maxEdges+1 {
			newCap = maxEdges + 1
		}
		grown := make([]Edge, newCap)
		copy(grown, p.edges)
		p.edges = grown
	}
	idx := p.used
	p.used++
	return uint16(idx), nil
}

func (p *edgePool) at(idx uint16) *Edge {
	return &p.edges[idx]
}

// edgeTable is the per-scanline bucket array: edgeTable.buckets[y-yBase] is
// the head index of the singly-linked list (threaded through Edge.next) of
// edges whose YTop == y. It is reallocated only when the bounding box grows
// taller than the current capacity, and cleared (not reallocated) at the
// start of every run that fits.
type edgeTable struct {
	buckets []uint16
	yBase   int32
}

func (t *edgeTable) init(yBase int32, height int32) {
	t.yBase = yBase
	n := int(height) + 1
	if n > len(t.buckets) {
		t.buckets = make([]uint16, n)
	} else {
		clear(t.buckets[:n])
	}
}

func (t *edgeTable) bucket(y int32) *uint16 {
	return &t.buckets[y-t.yBase]
}
