package backend

import (
	"github.com/dshills/mep/internal/renderer"
)

// DrawLine rasterizes the segment (x1,y1)-(x2,y2) with Bresenham stepping.
//
// The axis with the larger delta advances one pixel per step; the error term
// on the minor axis accumulates its delta and the minor coordinate steps once
// twice the error exceeds the major delta. Both endpoints are visited and
// pixels outside the buffer are skipped.
func (pb *PixelBuffer) DrawLine(x1, y1, x2, y2 int, c renderer.Color) {
	dx, sx := absSign(x2 - x1)
	dy, sy := absSign(y2 - y1)

	if dx >= dy {
		y, e := y1, 0
		for i, x := 0, x1; i <= dx; i, x = i+1, x+sx {
			pb.Set(x, y, c)
			e += dy
			if 2*e > dx {
				y += sy
				e -= dx
			}
		}
		return
	}

	x, e := x1, 0
	for i, y := 0, y1; i <= dy; i, y = i+1, y+sy {
		pb.Set(x, y, c)
		e += dx
		if 2*e > dy {
			x += sx
			e -= dy
		}
	}
}

// DrawRect draws the outline of the width×height rectangle whose top-left
// corner is (x, y) as four lines. Non-positive extents draw nothing.
func (pb *PixelBuffer) DrawRect(x, y, width, height int, c renderer.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	right := x + width - 1
	bottom := y + height - 1

	pb.DrawLine(x, y, right, y, c)           // top
	pb.DrawLine(x, bottom, right, bottom, c) // bottom
	pb.DrawLine(x, y, x, bottom, c)          // left
	pb.DrawLine(right, y, right, bottom, c)  // right
}

// FillRect paints every pixel (a, b) with x <= a < x+width and
// y <= b < y+height, clipped to the buffer.
func (pb *PixelBuffer) FillRect(x, y, width, height int, c renderer.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	left := max(x, 0)
	top := max(y, 0)
	right := min(x+width, pb.width)
	bottom := min(y+height, pb.height)

	for b := top; b < bottom; b++ {
		row := pb.pixels[b*pb.width : (b+1)*pb.width]
		for a := left; a < right; a++ {
			row[a] = c
		}
	}
}

func absSign(d int) (abs, sign int) {
	if d < 0 {
		return -d, -1
	}
	return d, 1
}
