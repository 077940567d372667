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

// reinsert splices edge idx back into the edge table at scanline y, used
// by the convex rectangular fast path to resume an edge that outlives the
// span it was just part of.
func (r *Raster) reinsert(idx uint16, y int32) {
	e := r.pool.at(idx)
	e.YTop = y
	e.IsTop = true
	head := r.table.bucket(y)
	e.next = *head
	*head = idx
}

// scan drives the scanline loop from top (inclusive) to bottom (exclusive)
// of the polygon, splicing each scanline's new edges into the active list
// and dispatching to the convex or concave evaluator.
func (r *Raster) scan(poly *Polygon, rule Rule, top, bottom int32, emit SpanFunc) {
	r.activeHead = 0
	r.order = true

	for y := top; y < bottom; {
		bucketHead := *r.table.bucket(y)
		*r.table.bucket(y) = 0
		if bucketHead != 0 {
			if r.order {
				edgesSortedAppend(&r.pool, &r.activeHead, bucketHead)
			} else {
				edgesAppend(&r.pool, &r.activeHead, bucketHead)
				edgesSort(&r.pool, &r.activeHead)
				r.order = true
			}
		} else if !r.order {
			// No new edges this row, but the previous row's advance left
			// the list out of order: sort it anyway, since gating this
			// on bucketHead != 0 would scan a stale order indefinitely.
			edgesSort(&r.pool, &r.activeHead)
			r.order = true
		}

		if r.activeHead == 0 {
			y++
			continue
		}

		assertActiveSorted(&r.pool, r.activeHead)

		if poly.Convex {
			y = convexScanline(r, y, bottom, rule, emit)
			continue
		}

		concaveScanline(r, y, rule, emit)
		r.order = scanningNext(&r.pool, &r.activeHead, y)
		y++
	}
}
