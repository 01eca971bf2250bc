package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/font"
)

// FormatCount abbreviates a metric the way Twitter displays it:
// 0 -> "0", 999 -> "999", 1000 -> "1K", 1500 -> "1.5K", 2300000 -> "2.3M".
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return trimScaled(float64(n)/1_000_000) + "M"
	case n >= 1_000:
		return trimScaled(float64(n)/1_000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// trimScaled formats with one decimal and drops a trailing ".0".
func trimScaled(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}

// wrapText greedily packs words into lines that fit maxWidth when measured
// with the given face. A single word wider than the line gets a line of its
// own rather than being split.
func wrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// initials returns up to two upper-cased initials from a display name.
func initials(name string) string {
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}

	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
