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

// FX is a signed fixed-point number with 16 fractional bits. It is the
// scalar type used internally by the edge table, the active-edge list, and
// the quadratic flattener.
type FX int32

// FXShift is the number of fractional bits in FX.
const FXShift = 16

// FXOne is 1.0 in FX.
const FXOne FX = 1 << FXShift

// FXHalf is 0.5 in FX.
const FXHalf FX = 1 << (FXShift - 1)

// FXNear0 is the epsilon used to treat a slope as "near enough to zero" to
// qualify for the convex rectangular fast path (§4.5). It is a small
// multiple of the smallest representable FX unit, chosen so that true
// near-vertical edges are never mistaken for rectangles.
const FXNear0 FX = 4

// FXFromFloat converts a float64 to FX, rounding to the nearest
// representable value.
func FXFromFloat(v float64) FX {
	return FX(math.Round(v * float64(FXOne)))
}

// ToFloat converts x to a float64.
func (x FX) ToFloat() float64 {
	return float64(x) / float64(FXOne)
}

// FXFromInt converts an integer scanline index to FX.
func FXFromInt(n int32) FX {
	return FX(n) << FXShift
}

// Floor returns the largest integer not greater than x.
func (x FX) Floor() int32 {
	return int32(x >> FXShift)
}

// Round returns the nearest integer to x, rounding halfway cases up
// (round-half-up), matching the edge builder's y-binning convention.
func (x FX) Round() int32 {
	return int32((x + FXHalf) >> FXShift)
}

// Abs returns the absolute value of x.
func (x FX) Abs() FX {
	if x < 0 {
		return -x
	}
	return x
}

// Mul multiplies two FX values through a 64-bit intermediate, saturating to
// [math.MinInt32, math.MaxInt32] so that the product of two large slopes
// does not silently wrap around.
func (x FX) Mul(y FX) FX {
	return saturateFX((int64(x) * int64(y)) >> FXShift)
}

// Div divides x by y through a 64-bit intermediate, saturating to
// [math.MinInt32, math.MaxInt32] instead of overflowing when the quotient
// does not fit. Division by zero saturates to MaxInt32 (x >= 0) or MinInt32
// (x < 0), mirroring the behaviour of a near-vertical (infinite slope)
// edge rather than panicking.
func (x FX) Div(y FX) FX {
	if y == 0 {
		if x >= 0 {
			return FX(maxInt32)
		}
		return FX(minInt32)
	}
	v := (int64(x) << FXShift) / int64(y)
	return saturateFX(v)
}

const (
	maxInt32 int32 = 1<<31 - 1
	minInt32 int32 = -1 << 31
)

func saturateFX(v int64) FX {
	if v > int64(maxInt32) {
		return FX(maxInt32)
	}
	if v < int64(minInt32) {
		return FX(minInt32)
	}
	return FX(v)
}
