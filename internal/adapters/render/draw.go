package render

import (
	"image"
	"image/color"
)

// Drawing primitives. Everything is integer raster math over the RGBA
// canvas; no anti-aliasing, which keeps output byte-stable across platforms.

// fillRect fills the rectangle [x, x+w) x [y, y+h).
func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

// fillCircle fills a circle centered at (cx, cy).
func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx, dy := px-cx, py-cy
			if dx*dx+dy*dy <= r*r && image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

// strokeCircle draws a ring of the given thickness.
func strokeCircle(img *image.RGBA, cx, cy, r, thickness int, c color.RGBA) {
	inner := r - thickness
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx, dy := px-cx, py-cy
			d := dx*dx + dy*dy
			if d <= r*r && d >= inner*inner && image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

// fillTriangle fills the triangle (x0,y0)-(x1,y1)-(x2,y2) using a sign test
// over the bounding box.
func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	minX := min3(x0, x1, x2)
	maxX := max3(x0, x1, x2)
	minY := min3(y0, y1, y2)
	maxY := max3(y0, y1, y2)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			d0 := edge(x0, y0, x1, y1, px, py)
			d1 := edge(x1, y1, x2, y2, px, py)
			d2 := edge(x2, y2, x0, y0, px, py)

			hasNeg := d0 < 0 || d1 < 0 || d2 < 0
			hasPos := d0 > 0 || d1 > 0 || d2 > 0
			if !(hasNeg && hasPos) && image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

// fillRoundedRect fills a rectangle with circular corners of the given radius.
func fillRoundedRect(img *image.RGBA, x, y, w, h, radius int, c color.RGBA) {
	if radius > h/2 {
		radius = h / 2
	}
	if radius > w/2 {
		radius = w / 2
	}

	fillRect(img, x+radius, y, w-2*radius, h, c)
	fillRect(img, x, y+radius, radius, h-2*radius, c)
	fillRect(img, x+w-radius, y+radius, radius, h-2*radius, c)

	fillCircle(img, x+radius, y+radius, radius, c)
	fillCircle(img, x+w-radius-1, y+radius, radius, c)
	fillCircle(img, x+radius, y+h-radius-1, radius, c)
	fillCircle(img, x+w-radius-1, y+h-radius-1, radius, c)
}

// hline draws a 1px horizontal line from x0 to x1 inclusive.
func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	fillRect(img, x0, y, x1-x0+1, 1, c)
}

// thickLine draws a Bresenham line with the given thickness by stamping
// small squares.
func thickLine(img *image.RGBA, x0, y0, x1, y1, thickness int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fillRect(img, x0-thickness/2, y0-thickness/2, thickness, thickness, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func edge(ax, ay, bx, by, px, py int) int {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int { return min(a, min(b, c)) }
func max3(a, b, c int) int { return max(a, max(b, c)) }
