package render

import (
	"image"
	"image/color"
)

// Engagement icons are drawn as simple geometric glyphs inside a size x size
// box anchored at (x, y). They approximate the Twitter action row shapes.

// drawReplyIcon draws a speech bubble: a ring with a small tail.
func drawReplyIcon(img *image.RGBA, x, y, size int, c color.RGBA) {
	r := size * 2 / 5
	cx, cy := x+size/2, y+size/2-1
	strokeCircle(img, cx, cy, r, 2, c)
	fillTriangle(img, cx-r+2, cy+r-3, cx-r+6, cy+r-3, cx-r+2, cy+r+3, c)
}

// drawRetweetIcon draws two opposing arrows.
func drawRetweetIcon(img *image.RGBA, x, y, size int, c color.RGBA) {
	top := y + size/4
	bottom := y + size*3/4
	left := x + size/6
	right := x + size*5/6

	// Upper arrow pointing right
	hline(img, left, right-4, top, c)
	hline(img, left, right-4, top+1, c)
	fillTriangle(img, right-4, top-3, right-4, top+4, right, top, c)

	// Lower arrow pointing left
	hline(img, left+4, right, bottom, c)
	hline(img, left+4, right, bottom+1, c)
	fillTriangle(img, left+4, bottom-3, left+4, bottom+4, left, bottom, c)

	// Connecting verticals
	fillRect(img, left, top, 2, size/4, c)
	fillRect(img, right-1, bottom-size/4, 2, size/4, c)
}

// drawLikeIcon draws a heart: two lobes and a point.
func drawLikeIcon(img *image.RGBA, x, y, size int, c color.RGBA) {
	r := size / 4
	lobeY := y + size/3
	leftX := x + size/2 - r
	rightX := x + size/2 + r

	fillCircle(img, leftX, lobeY, r, c)
	fillCircle(img, rightX, lobeY, r, c)
	fillTriangle(img, leftX-r, lobeY+1, rightX+r, lobeY+1, x+size/2, y+size-2, c)
}

// drawViewsIcon draws a three-bar chart.
func drawViewsIcon(img *image.RGBA, x, y, size int, c color.RGBA) {
	barW := size / 5
	baseline := y + size - 2

	fillRect(img, x+1, baseline-size/3, barW, size/3, c)
	fillRect(img, x+1+barW+2, baseline-size*2/3, barW, size*2/3, c)
	fillRect(img, x+1+2*(barW+2), baseline-size+3, barW, size-3, c)
}

// drawBadge draws the verification badge: an accent disc with a white check.
func drawBadge(img *image.RGBA, x, y, size int, accent color.RGBA) {
	r := size / 2
	cx, cy := x+r, y+r
	fillCircle(img, cx, cy, r, accent)

	white := color.RGBA{255, 255, 255, 255}
	thickLine(img, cx-r/2, cy, cx-1, cy+r/2-1, 2, white)
	thickLine(img, cx-1, cy+r/2-1, cx+r/2, cy-r/2+1, 2, white)
}
