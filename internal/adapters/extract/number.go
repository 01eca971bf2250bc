package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberToken matches a count with an optional scale suffix: "100", "1k",
// "2.5m". Suffix casing is normalized before matching.
var numberToken = regexp.MustCompile(`^(\d+(?:\.\d+)?)([km])?$`)

// parseCount parses a numeric token with an optional k/m scale suffix,
// rounding fractional scaled values to the nearest integer. An unrecognized
// token is a no-match, never an error.
func parseCount(token string) (int, bool) {
	m := numberToken.FindStringSubmatch(strings.ToLower(token))
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	switch m[2] {
	case "k":
		value *= 1_000
	case "m":
		value *= 1_000_000
	}

	return int(math.Round(value)), true
}
