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

// Package raster turns filled polygons into horizontal spans.
//
// A [Raster] owns a growable edge pool and edge table; callers build a
// [Polygon] (a point stream plus per-contour vertex counts), hand it to
// [Raster.Done] along with a fill [Rule] and a [SpanFunc] callback, and
// receive one callback invocation per span, normally one per scanline and
// filled interval (the convex rectangular fast path reports several
// scanlines in one call). The package also exposes the quadratic
// Bézier flattener ([MakeLine] and its building blocks [ChopAt],
// [ChopAtHalf], [ChopAtMaxCurvature]) used to turn curved contours into the
// polylines the rasterizer consumes; it emits [FPoint] values, the same
// point type [Polygon] holds, so that flattened output needs no further
// conversion.
//
// A Raster instance is single-threaded and non-reentrant: do not call its
// methods concurrently, and do not call them from within a [SpanFunc].
// Separate instances share no state and may run on separate goroutines.
package raster
