package render

import "testing"

func TestFormatCount_AbbreviatesLikeTwitter(t *testing.T) {
	// Arrange
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1K"},
		{1500, "1.5K"},
		{1500000, "1.5M"},
		{2300000, "2.3M"},
		{42, "42"},
	}

	for _, tt := range tests {
		// Act
		got := FormatCount(tt.in)

		// Assert
		if got != tt.want {
			t.Errorf("FormatCount(%d): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitials_TakesUpToTwoWords(t *testing.T) {
	// Arrange
	tests := []struct {
		in   string
		want string
	}{
		{"john doe", "JD"},
		{"alice", "A"},
		{"ana maria silva", "AM"},
		{"", ""},
	}

	for _, tt := range tests {
		// Act
		got := initials(tt.in)

		// Assert
		if got != tt.want {
			t.Errorf("initials(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapText_GreedyPacking(t *testing.T) {
	// Arrange
	fonts, err := loadFonts()
	if err != nil {
		t.Fatalf("loadFonts: %v", err)
	}

	// Act: a narrow width forces one word per line
	lines := wrapText(fonts.body, "one two three", 30)

	// Assert
	if len(lines) != 3 {
		t.Fatalf("lines: got %d (%v), want 3", len(lines), lines)
	}

	// Act: a generous width keeps everything on one line
	lines = wrapText(fonts.body, "one two three", 1000)

	// Assert
	if len(lines) != 1 {
		t.Errorf("lines: got %d (%v), want 1", len(lines), lines)
	}
	if lines[0] != "one two three" {
		t.Errorf("line: got %q, want full text", lines[0])
	}
}

func TestWrapText_EmptyText_ReturnsNoLines(t *testing.T) {
	// Arrange
	fonts, err := loadFonts()
	if err != nil {
		t.Fatalf("loadFonts: %v", err)
	}

	// Act
	lines := wrapText(fonts.body, "   ", 100)

	// Assert
	if lines != nil {
		t.Errorf("got %v, want nil", lines)
	}
}
