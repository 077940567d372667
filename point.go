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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FPoint is a point with floating-point coordinates, as supplied by a
// caller building a [Polygon]. It is an alias for [vec.Vec2], the same
// point type used throughout the surrounding path/vector layer.
type FPoint = vec.Vec2

// Bounds is the bounding rectangle passed to [Raster.Done]. It is an alias
// for [rect.Rect]; only its four corner fields are read, never its
// methods.
type Bounds = rect.Rect

func fxPoint(p FPoint) (FX, FX) {
	return FXFromFloat(p.X), FXFromFloat(p.Y)
}
