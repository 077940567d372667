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

// edgeLess reports whether a should sort before b: x ascending, slope
// ascending on ties.
func edgeLess(pool *edgePool, a, b uint16) bool {
	ea, eb := pool.at(a), pool.at(b)
	if ea.X != eb.X {
		return ea.X < eb.X
	}
	return ea.Slope < eb.Slope
}

// edgesSortedAppend splices the edges reachable from bucketHead into the
// already-sorted active list rooted at *head, inserting each one at its
// sorted position. Used when the previous scanline's advance left the
// active list in order (see scanningNext's order flag).
func edgesSortedAppend(pool *edgePool, head *uint16, bucketHead uint16) {
	for bucketHead != 0 {
		e := pool.at(bucketHead)
		next := e.next
		insertSorted(pool, head, bucketHead)
		bucketHead = next
	}
}

func insertSorted(pool *edgePool, head *uint16, idx uint16) {
	cur := *head
	if cur == 0 || edgeLess(pool, idx, cur) {
		pool.at(idx).next = cur
		*head = idx
		return
	}
	for {
		curNext := pool.at(cur).next
		if curNext == 0 || edgeLess(pool, idx, curNext) {
			pool.at(idx).next = curNext
			pool.at(cur).next = idx
			return
		}
		cur = curNext
	}
}

// edgesAppend prepends the bucket's edges onto the active list without
// regard to order; callers must follow up with edgesSort before relying on
// the list being sorted.
func edgesAppend(pool *edgePool, head *uint16, bucketHead uint16) {
	if bucketHead == 0 {
		return
	}
	tail := bucketHead
	for pool.at(tail).next != 0 {
		tail = pool.at(tail).next
	}
	pool.at(tail).next = *head
	*head = bucketHead
}

// edgesSort bubble-sorts the active list by (x, slope) ascending. Active
// lists are short (a handful of edges per scanline is typical), so O(k^2)
// comparisons on linked nodes beats the allocation a slice-based sort
// would need.
func edgesSort(pool *edgePool, head *uint16) {
	if *head == 0 {
		return
	}
	swapped := true
	for swapped {
		swapped = false
		prev := uint16(0) // 0: cur has no predecessor yet, fix up *head instead
		cur := *head
		for pool.at(cur).next != 0 {
			next := pool.at(cur).next
			if edgeLess(pool, next, cur) {
				pool.at(cur).next = pool.at(next).next
				pool.at(next).next = cur
				if prev == 0 {
					*head = next
				} else {
					pool.at(prev).next = next
				}
				prev = next
				swapped = true
			} else {
				prev = cur
				cur = next
			}
		}
	}
}

// scanningNext advances every active edge to scanline y+1: edges whose
// YBottom has been reached are unlinked, the rest have their x stepped by
// their slope and their IsTop flag cleared. It reports whether the
// resulting list is still sorted by x, so the scan driver can skip the
// next edgesSort.
func scanningNext(pool *edgePool, head *uint16, y int32) (order bool) {
	order = true
	prevX := FX(minInt32)
	cur := *head
	var prevLink *uint16
	for cur != 0 {
		e := pool.at(cur)
		if y >= e.YBottom {
			next := e.next
			if prevLink == nil {
				*head = next
			} else {
				*prevLink = next
			}
			cur = next
			continue
		}
		e.X += e.Slope
		e.IsTop = false
		if e.X < prevX {
			order = false
		}
		prevX = e.X
		prevLink = &e.next
		cur = e.next
	}
	return order
}

// assertActiveSorted is a debug-only invariant check: it panics (via
// assertgo, a no-op outside debug builds) if the active list is not sorted
// by (x, slope) ascending.
func assertActiveSorted(pool *edgePool, head uint16) {
	cur := head
	for cur != 0 && pool.at(cur).next != 0 {
		next := pool.at(cur).next
		assert.False(edgeLess(pool, next, cur), "active edge list out of order")
		cur = next
	}
}
