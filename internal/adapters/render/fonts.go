package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontSet holds the parsed faces the layout needs. Faces are created once at
// renderer construction and shared read-only for the process lifetime.
type fontSet struct {
	name      font.Face // bold 15 — display name
	body      font.Face // regular 15 — handle, tweet text, timestamp
	initials  font.Face // bold 20 — avatar initials
	button    font.Face // bold 14 — follow button
	iconCount font.Face // regular 13 — counts next to icons
}

// loadFonts parses the embedded Go fonts and builds the faces. A parse
// failure here is a fatal configuration error: a missing glyph set is not
// safely substitutable in a purely visual output.
func loadFonts() (*fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	fs := &fontSet{}
	for _, f := range []struct {
		dst  *font.Face
		src  *opentype.Font
		size float64
	}{
		{&fs.name, bold, 15},
		{&fs.body, regular, 15},
		{&fs.initials, bold, 20},
		{&fs.button, bold, 14},
		{&fs.iconCount, regular, 13},
	} {
		face, err := opentype.NewFace(f.src, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("create %gpx face: %w", f.size, err)
		}
		*f.dst = face
	}

	return fs, nil
}
