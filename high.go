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

// This file holds the high-precision (sub-scanline) concave scan path
// described as an unfinished design sketch upstream: emitted span
// boundaries are exact FX values instead of being rounded to whole
// scanlines. It reuses the same edge pool, edge table, and active-list
// helpers as the standard path — an edge's DYTop/DYBottom already carry
// the exact sub-pixel offset from its rounded YTop/YBottom, which is all
// that is needed to report an exact boundary instead of an integer one.
// The scan cadence itself stays one row at a time, the same as Done.

// exactTop reconstructs the edge's true FX y-coordinate at the start of
// its span: YTop is the rounded scanline it was filed under, and DYTop is
// the signed offset that rounding introduced.
func exactTop(e *Edge) FX {
	return FXFromInt(e.YTop) + e.DYTop
}

// exactBottom reconstructs the edge's true FX y-coordinate at the end of
// its span. YBottom is inclusive (the edge's last active scanline), so the
// true endpoint's row is YBottom+1.
func exactBottom(e *Edge) FX {
	return FXFromInt(e.YBottom+1) + e.DYBottom
}

// concaveScanlineHigh is concaveScanline's high-precision counterpart: it
// reports each span's yStart/yEnd as the exact FX boundary contributed by
// whichever of its two edges starts latest or ends earliest within the
// current row, instead of always reporting the row's integer bounds.
func concaveScanlineHigh(pool *edgePool, head uint16, row int32, rule Rule, emit SpanFuncHigh) {
	rowTop, rowBottom := FXFromInt(row), FXFromInt(row+1)

	var winding int32
	cur := head
	for cur != 0 {
		e := pool.at(cur)
		winding += int32(e.Winding)
		next := e.next
		if next == 0 {
			break
		}
		if fillActive(rule, winding) {
			right := pool.at(next)

			yStart := rowTop
			if e.IsTop {
				yStart = exactTop(e)
			}
			if right.IsTop && exactTop(right) > yStart {
				yStart = exactTop(right)
			}

			yEnd := rowBottom
			if e.YBottom == row {
				yEnd = exactBottom(e)
			}
			if right.YBottom == row && exactBottom(right) < yEnd {
				yEnd = exactBottom(right)
			}

			if yEnd > yStart {
				emit(yStart, yEnd, e, right)
			}
		}
		cur = next
	}
}

// scanHigh drives the high-precision concave path across integer rows
// top.Floor() .. bottom.Floor()-1, splicing each row's new edges into its
// own active list (kept separate from Done's r.activeHead, though the two
// are never in use at the same time on one Raster).
func (r *Raster) scanHigh(rule Rule, top, bottom FX, emit SpanFuncHigh) {
	var head uint16
	order := true

	for row := top.Floor(); row < bottom.Floor(); row++ {
		bucketHead := *r.table.bucket(row)
		*r.table.bucket(row) = 0
		if bucketHead != 0 {
			if order {
				edgesSortedAppend(&r.pool, &head, bucketHead)
			} else {
				edgesAppend(&r.pool, &head, bucketHead)
				edgesSort(&r.pool, &head)
				order = true
			}
		} else if !order {
			edgesSort(&r.pool, &head)
			order = true
		}
		if head == 0 {
			continue
		}

		concaveScanlineHigh(&r.pool, head, row, rule, emit)
		order = scanningNext(&r.pool, &head, row)
	}
}
