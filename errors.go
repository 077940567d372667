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

import "errors"

// Errors returned by [Raster.Done] and [Raster.DoneHigh]. A degenerate
// polygon (empty bounds, all-horizontal contours, or fewer than two edges)
// is not an error: Done silently returns nil having emitted no spans.
var (
	// ErrOutOfMemory is part of the error contract for parity with the
	// design this package implements, which distinguishes allocation
	// failure from other invalid-input cases. Go's allocator panics
	// rather than returning an error, so nothing currently produces this
	// value; it is kept reserved rather than removed in case a future
	// bounded-allocation mode needs it.
	ErrOutOfMemory = errors.New("raster: out of memory")

	// ErrTooManyEdges is returned when a polygon would need more than
	// 65535 edges, the limit imposed by the pool's 16-bit indices.
	ErrTooManyEdges = errors.New("raster: too many edges")

	// ErrInvalidArgument is returned for a nil polygon or callback, an
	// unrecognized Rule, or a malformed contour-count list.
	ErrInvalidArgument = errors.New("raster: invalid argument")
)

// Any recoverable error above aborts the current Done/DoneHigh call without
// leaking partial state: the Raster remains valid for the next call.
