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

import assert "github.com/arl/assertgo"

func fillActive(rule Rule, winding int32) bool {
	switch rule {
	case RuleOdd:
		return winding&1 != 0
	case RuleNonZero:
		return winding != 0
	default:
		return false
	}
}

// spanCache buffers one not-yet-emitted span so that two spans meeting at
// an integer x (a shared vertex between adjacent active-edge pairs) can be
// coalesced into one emit call instead of producing a visible seam.
type spanCache struct {
	left, right uint16
	have        bool
}

func (c *spanCache) flush(pool *edgePool, y int32, emit SpanFunc) {
	if !c.have {
		return
	}
	emit(y, y+1, pool.at(c.left), pool.at(c.right))
	c.have = false
}

func (c *spanCache) offer(pool *edgePool, y int32, left, right uint16, emit SpanFunc) {
	if c.have && pool.at(left).X.Round() == pool.at(c.right).X.Round() {
		c.right = right
		return
	}
	c.flush(pool, y, emit)
	c.left, c.right, c.have = left, right, true
}

// concaveScanline walks the active list pairwise, accumulating a running
// winding number, and emits every interval the fill rule judges to be
// inside. Conjoint spans (two intervals that share an integer-x vertex)
// are coalesced via a one-span cache.
func concaveScanline(r *Raster, y int32, rule Rule, emit SpanFunc) {
	pool := &r.pool
	var winding int32
	var cache spanCache

	cur := r.activeHead
	for cur != 0 {
		e := pool.at(cur)
		winding += int32(e.Winding)
		next := e.next
		if next == 0 {
			break
		}
		if fillActive(rule, winding) {
			cache.offer(pool, y, cur, next, emit)
		}
		cur = next
	}
	cache.flush(pool, y, emit)
}

// convexScanline handles the fast path for a contour known to be convex:
// exactly two edges are active on every interior scanline. When both
// edges are near-vertical (|slope| <= FXNear0) the whole remaining
// rectangle down to the
// shorter edge's bottom is emitted as one span and the longer edge is
// spliced back into the edge table, letting the scan driver skip the
// intervening scanlines entirely.
func convexScanline(r *Raster, y, limit int32, rule Rule, emit SpanFunc) int32 {
	pool := &r.pool
	left := r.activeHead
	if left == 0 {
		return y + 1
	}
	right := pool.at(left).next
	if right == 0 {
		return y + 1
	}
	if pool.at(right).next != 0 {
		assert.False(true, "convex fast path observed more than two active edges")
		concaveScanline(r, y, rule, emit)
		r.order = scanningNext(pool, &r.activeHead, y)
		return y + 1
	}

	le, re := pool.at(left), pool.at(right)
	if le.Slope.Abs() <= FXNear0 && re.Slope.Abs() <= FXNear0 {
		ye := min(le.YBottom, re.YBottom) + 1
		if ye > limit {
			ye = limit
		}
		emit(y, ye, le, re)
		if le.YBottom+1 > ye {
			r.reinsert(left, ye)
		}
		if re.YBottom+1 > ye {
			r.reinsert(right, ye)
		}
		r.activeHead = 0
		r.order = true
		return ye
	}

	emit(y, y+1, le, re)
	r.order = scanningNext(pool, &r.activeHead, y)
	return y + 1
}
