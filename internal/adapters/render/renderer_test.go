package render_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"tweetshot/internal/adapters/render"
	"tweetshot/internal/domain"
)

func testDescription() domain.TweetDescription {
	return domain.TweetDescription{
		AuthorName:   "john doe",
		AuthorHandle: "johndoe",
		Text:         "Hello world, this is a rendered tweet with some text that wraps.",
		Likes:        1500,
		Retweets:     42,
		Replies:      7,
		Views:        2300000,
		Verified:     true,
	}
}

func TestRender_Deterministic(t *testing.T) {
	// Arrange
	r, err := render.NewRenderer(nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	desc := testDescription()

	// Act
	first, err := r.Render(desc)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := r.Render(desc)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	// Assert
	if !bytes.Equal(first, second) {
		t.Error("expected byte-identical output for identical input")
	}
}

func TestRender_FixedDimensionsRegardlessOfBodyLength(t *testing.T) {
	// Arrange
	r, err := render.NewRenderer(nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	wantW, wantH := r.Size()

	short := testDescription()
	short.Text = "hi"

	long := testDescription()
	for len(long.Text) < domain.MaxTextLen {
		long.Text += " more words to force wrapping"
	}

	for _, desc := range []domain.TweetDescription{short, long} {
		// Act
		data, err := r.Render(desc)
		if err != nil {
			t.Fatalf("render: %v", err)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("output is not valid PNG: %v", err)
		}

		// Assert
		bounds := img.Bounds()
		if bounds.Dx() != wantW || bounds.Dy() != wantH {
			t.Errorf("dimensions: got %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), wantW, wantH)
		}
	}
}

func TestRender_VerifiedBadgeChangesOutput(t *testing.T) {
	// Arrange
	r, err := render.NewRenderer(nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	plain := testDescription()
	plain.Verified = false
	verified := testDescription()
	verified.Verified = true

	// Act
	plainPNG, err := r.Render(plain)
	if err != nil {
		t.Fatalf("render plain: %v", err)
	}
	verifiedPNG, err := r.Render(verified)
	if err != nil {
		t.Fatalf("render verified: %v", err)
	}

	// Assert
	if bytes.Equal(plainPNG, verifiedPNG) {
		t.Error("expected the verification badge to change the output")
	}
}

func TestRender_ZeroValueDescription_DoesNotFail(t *testing.T) {
	// Arrange
	r, err := render.NewRenderer(nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	// Act
	data, err := r.Render(domain.TweetDescription{})

	// Assert
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty PNG output")
	}
}

func TestLoadTheme_ValidFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	content := []byte("canvas:\n  width: 640\n  height: 480\ncolors:\n  accent: \"#ff0000\"\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	// Act
	theme, err := render.LoadTheme(path)

	// Assert
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.Width != 640 || theme.Height != 480 {
		t.Errorf("canvas: got %dx%d, want 640x480", theme.Width, theme.Height)
	}
	if theme.Accent.R != 255 || theme.Accent.G != 0 || theme.Accent.B != 0 {
		t.Errorf("accent: got %+v, want red", theme.Accent)
	}
	// Unset values keep defaults
	if theme.Padding != render.DefaultTheme().Padding {
		t.Errorf("padding: got %d, want default", theme.Padding)
	}
}

func TestLoadTheme_MalformedColor_ReturnsError(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	content := []byte("colors:\n  accent: \"red\"\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	// Act
	_, err := render.LoadTheme(path)

	// Assert
	if err == nil {
		t.Error("expected error for malformed color")
	}
}

func TestLoadTheme_MissingFile_ReturnsError(t *testing.T) {
	// Act
	_, err := render.LoadTheme("does/not/exist.yaml")

	// Assert
	if err == nil {
		t.Error("expected error for missing file")
	}
}
