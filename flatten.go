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

import "math"

// DividedMax caps the recursion depth of the quadratic flattener at
// 2^(DividedMax-1) emitted points per curve.
const DividedMax = 5

// NearDistance is an L-infinity approximation of the distance from the
// control point p1 to the chord p0-p2, used only as a subdivision
// heuristic: it is monotone in the curve's "bulge" but is not a true
// Euclidean distance.
func NearDistance(p0, p1, p2 FPoint) FX {
	mx := (p0.X + p2.X) / 2
	my := (p0.Y + p2.Y) / 2
	dx := FXFromFloat(mx - p1.X).Abs()
	dy := FXFromFloat(my - p1.Y).Abs()
	if dx < dy {
		dx, dy = dy, dx
	}
	return dx + dy/2
}

// DivideLineCount picks the flattener's recursion depth from the curve's
// bulge, so that flat curves cost one emitted point and sharply bulging
// ones cost up to 2^(DividedMax-1).
func DivideLineCount(p0, p1, p2 FPoint) int {
	d := NearDistance(p0, p1, p2).ToFloat()
	if d < 1 {
		d = 1
	}
	n := int(math.Ceil(math.Log2(math.Ceil(d))))/2 + 1
	if n < 1 {
		n = 1
	}
	if n > DividedMax {
		n = DividedMax
	}
	return n
}

func lerp(a, b FPoint, t float64) FPoint {
	return FPoint{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// ChopAt splits the quadratic (p0,p1,p2) at parameter t via De Casteljau's
// algorithm, returning [P0, L, M, R, P2] where the first three points are
// one sub-quadratic and the last three are the other; both share M.
func ChopAt(p0, p1, p2 FPoint, t float64) [5]FPoint {
	l := lerp(p0, p1, t)
	r := lerp(p1, p2, t)
	m := lerp(l, r, t)
	return [5]FPoint{p0, l, m, r, p2}
}

// ChopAtHalf is ChopAt specialized to t=0.5, using averages only so the
// split is exact rather than subject to the rounding ChopAt's
// general-purpose lerp would introduce.
func ChopAtHalf(p0, p1, p2 FPoint) [5]FPoint {
	l := FPoint{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
	r := FPoint{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
	m := FPoint{X: (l.X + r.X) / 2, Y: (l.Y + r.Y) / 2}
	return [5]FPoint{p0, l, m, r, p2}
}

// validUnitDivide returns numer/denom and true iff the quotient is finite
// and lies in (0,1) (a zero numer is rejected); both arguments are negated together first if numer is
// negative, so that sign handling stays uniform regardless of denom's
// sign.
func validUnitDivide(numer, denom float64) (float64, bool) {
	if numer < 0 {
		numer = -numer
		denom = -denom
	}
	if denom == 0 || numer == 0 {
		return 0, false
	}
	t := numer / denom
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, false
	}
	if t < 0 || t >= 1 {
		return 0, false
	}
	return t, true
}

// ChopAtMaxCurvature finds the parameter of locally maximal curvature,
// t* = -(x0*x1 + y0*y1)/(x1*x1 + y1*y1) with x0 = p1.x-p0.x,
// x1 = p0.x-2*p1.x+p2.x (and the analogous y terms), and splits there when
// t* falls strictly inside (0,1). When it does not, the curve is already
// close enough to monotone curvature that no split is useful and the
// original three points are returned unchanged.
func ChopAtMaxCurvature(p0, p1, p2 FPoint) (pts [5]FPoint, count int) {
	x0 := p1.X - p0.X
	x1 := p0.X - 2*p1.X + p2.X
	y0 := p1.Y - p0.Y
	y1 := p0.Y - 2*p1.Y + p2.Y

	numer := -(x0*x1 + y0*y1)
	denom := x1*x1 + y1*y1

	t, ok := validUnitDivide(numer, denom)
	if !ok {
		pts[0], pts[1], pts[2] = p0, p1, p2
		return pts, 1
	}
	return ChopAt(p0, p1, p2, t), 2
}

// MakeLine flattens the quadratic (p0,p1,p2) into a polyline by recursive
// midpoint subdivision, calling emit once per interior point in order of
// strictly increasing curve parameter. The curve's own endpoints p0 and p2
// are not re-emitted: callers already carry them as ordinary polygon
// vertices.
func MakeLine(p0, p1, p2 FPoint, emit func(FPoint)) {
	n := DivideLineCount(p0, p1, p2)
	subdivide(p0, p1, p2, n, emit)
}

func subdivide(p0, p1, p2 FPoint, level int, emit func(FPoint)) {
	out := ChopAtHalf(p0, p1, p2)
	if level <= 1 {
		emit(out[2])
		return
	}
	subdivide(out[0], out[1], out[2], level-1, emit)
	subdivide(out[2], out[3], out[4], level-1, emit)
}
