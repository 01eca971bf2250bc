// Package render composes a tweet description into a PNG that resembles a
// Twitter/X post. Rendering is deterministic: the same description always
// produces byte-identical output.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"tweetshot/internal/domain"
)

// Renderer draws tweet screenshots on a fixed-size canvas. It holds only
// read-only state (theme, parsed fonts) and is safe for concurrent use.
type Renderer struct {
	theme *Theme
	fonts *fontSet
}

// NewRenderer creates a Renderer with the given theme. Font parsing happens
// here; a failure is fatal and must stop startup.
func NewRenderer(theme *Theme) (*Renderer, error) {
	if theme == nil {
		theme = DefaultTheme()
	}

	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	return &Renderer{theme: theme, fonts: fonts}, nil
}

const (
	avatarSize   = 48
	lineHeight   = 20
	iconSize     = 20
	buttonWidth  = 80
	buttonHeight = 32
)

// Render produces the PNG for a tweet description. The output dimensions are
// always the theme's canvas size; word wrapping absorbs long bodies.
func (r *Renderer) Render(desc domain.TweetDescription) ([]byte, error) {
	t := r.theme
	img := image.NewRGBA(image.Rect(0, 0, t.Width, t.Height))
	fillRect(img, 0, 0, t.Width, t.Height, t.Background)

	pad := t.Padding

	// Avatar circle with initials.
	avatarCX := pad + avatarSize/2
	avatarCY := pad + avatarSize/2
	fillCircle(img, avatarCX, avatarCY, avatarSize/2, t.Avatar)
	strokeCircle(img, avatarCX, avatarCY, avatarSize/2, 1, t.Border)

	white := color.RGBA{255, 255, 255, 255}
	if ini := initials(desc.AuthorName); ini != "" {
		r.drawCentered(img, ini, r.fonts.initials, avatarCX, avatarCY, white)
	}

	// Display name, badge, handle.
	nameX := pad + avatarSize + 12
	nameTop := pad + 2
	r.drawText(img, desc.AuthorName, r.fonts.name, nameX, nameTop, t.Text)

	if desc.Verified {
		nameWidth := font.MeasureString(r.fonts.name, desc.AuthorName).Ceil()
		drawBadge(img, nameX+nameWidth+6, nameTop+2, 16, t.Accent)
	}

	r.drawText(img, "@"+desc.AuthorHandle, r.fonts.body, nameX, nameTop+lineHeight, t.Muted)

	// Follow button, top right.
	buttonX := t.Width - pad - buttonWidth
	fillRoundedRect(img, buttonX, pad, buttonWidth, buttonHeight, 16, t.Accent)
	r.drawCentered(img, "Follow", r.fonts.button, buttonX+buttonWidth/2, pad+buttonHeight/2, white)

	// Body text, greedily wrapped to the canvas width.
	textY := pad + avatarSize + 12
	maxWidth := t.Width - 2*pad
	for _, ln := range wrapText(r.fonts.body, desc.Text, maxWidth) {
		r.drawText(img, ln, r.fonts.body, pad, textY, t.Text)
		textY += lineHeight
	}

	// Optional timestamp. No wall-clock fallback: output must be stable.
	if desc.Timestamp != "" {
		textY += 12
		r.drawText(img, desc.Timestamp, r.fonts.body, pad, textY, t.Muted)
		textY += lineHeight
	}

	// Separator, then the engagement row.
	textY += 16
	hline(img, pad, t.Width-pad, textY, t.Border)

	iconY := textY + 12
	cellWidth := (t.Width - 2*pad) / 4
	cells := []struct {
		draw  func(*image.RGBA, int, int, int, color.RGBA)
		count int
	}{
		{drawReplyIcon, desc.Replies},
		{drawRetweetIcon, desc.Retweets},
		{drawLikeIcon, desc.Likes},
		{drawViewsIcon, desc.Views},
	}
	for i, cell := range cells {
		iconX := pad + i*cellWidth + 5
		cell.draw(img, iconX, iconY, iconSize, t.Muted)
		r.drawText(img, FormatCount(cell.count), r.fonts.iconCount, iconX+iconSize+6, iconY+2, t.Muted)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, domain.ErrRenderFailed
	}
	return buf.Bytes(), nil
}

// Size returns the fixed canvas dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.theme.Width, r.theme.Height
}

// drawText draws s with its top-left corner at (x, top).
func (r *Renderer) drawText(img *image.RGBA, s string, face font.Face, x, top int, c color.RGBA) {
	metrics := face.Metrics()
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, top+metrics.Ascent.Ceil()),
	}
	d.DrawString(s)
}

// drawCentered draws s centered on (cx, cy).
func (r *Renderer) drawCentered(img *image.RGBA, s string, face font.Face, cx, cy int, c color.RGBA) {
	width := font.MeasureString(face, s).Ceil()
	metrics := face.Metrics()
	height := metrics.Ascent.Ceil() + metrics.Descent.Ceil()

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(cx-width/2, cy-height/2+metrics.Ascent.Ceil()),
	}
	d.DrawString(s)
}
