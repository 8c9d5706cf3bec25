// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package television turns the TIA's raw colour-clock framebuffer into a
// displayable image. It has no window of its own - presenting the image is
// a host concern - but it does provide a debug PNG snapshot, since dumping
// a frame to disk while developing the core needs no display backend.
package television

import (
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/a-downing/atari2600/hardware/television/palette"
	"github.com/a-downing/atari2600/hardware/tia"
)

// Image converts a raw TIA colour-clock frame (as returned by
// tia.TIA.Frame, length tia.ClocksPerScanline*tia.NumScanlines) into an
// RGBA image of the same dimensions, one pixel per colour clock.
func Image(frame []uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, tia.ClocksPerScanline, tia.NumScanlines))
	for y := 0; y < tia.NumScanlines; y++ {
		for x := 0; x < tia.ClocksPerScanline; x++ {
			c := palette.RGB(frame[y*tia.ClocksPerScanline+x])
			img.Set(x, y, c)
		}
	}
	return img
}

// Snapshot scales a frame by the given integer factor (1 for the raw
// colour-clock resolution, 2 or 3 to better match a real TV's visible
// aspect) and writes it to w as a PNG. Scaling uses x/image/draw's
// nearest-neighbour kernel so sharp pixel-art edges aren't blurred.
func Snapshot(w io.Writer, frame []uint8, scale int) error {
	src := Image(frame)
	if scale <= 1 {
		return png.Encode(w, src)
	}

	dst := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx()*scale, src.Bounds().Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return png.Encode(w, dst)
}
