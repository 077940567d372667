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

// buildEdges walks every contour of poly, deposits one Edge per
// non-horizontal segment into pool and table, and reports the polygon's
// integer y-bounds (top inclusive, bottom exclusive of the last scanline,
// matching the convention that an edge's own YBottom is iye-1).
func buildEdges(pool *edgePool, table *edgeTable, poly *Polygon) (top, bottom int32, err error) {
	top = int32(1)<<31 - 1
	bottom = -(int32(1)<<31 - 1)

	pos := 0
	for _, count := range poly.Counts {
		if count == 0 {
			break
		}
		if int(count) < 2 || pos+int(count) > len(poly.Points) {
			return 0, 0, ErrInvalidArgument
		}
		verts := poly.Points[pos : pos+int(count)]
		pos += int(count)

		for i := range verts {
			pb := verts[i]
			pe := verts[(i+1)%len(verts)]

			iyb := FXFromFloat(pb.Y).Round()
			iye := FXFromFloat(pe.Y).Round()
			if iyb == iye {
				continue // horizontal: contributes zero net winding
			}

			xb, yb := fxPoint(pb)
			xe, ye := fxPoint(pe)

			winding := int8(1)
			if iyb > iye {
				xb, xe = xe, xb
				yb, ye = ye, yb
				iyb, iye = iye, iyb
				winding = -1
			}

			slope := (xe - xb).Div(ye - yb)
			dyTop := yb - FXFromInt(iyb)
			dyBottom := ye - FXFromInt(iye)

			idx, allocErr := pool.alloc()
			if allocErr != nil {
				return 0, 0, allocErr
			}
			e := pool.at(idx)
			*e = Edge{
				Winding:  winding,
				YTop:     iyb,
				YBottom:  iye - 1,
				X:        xb - dyTop.Mul(slope),
				Slope:    slope,
				XTop:     xb,
				XBottom:  xe,
				DYTop:    dyTop,
				DYBottom: dyBottom,
				IsTop:    true,
			}

			head := table.bucket(iyb)
			e.next = *head
			*head = idx

			if iyb < top {
				top = iyb
			}
			if iye > bottom {
				bottom = iye
			}
		}
	}

	return top, bottom, nil
}
