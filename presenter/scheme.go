package presenter

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// schemeEntry maps a description keyword to a background colour.
type schemeEntry struct {
	Keyword string
	Color   color.NRGBA
}

// schemeTable is matched top to bottom and the first keyword found in the
// description wins. The order is significant: "thunderstorm with light rain"
// resolves to rain, not thunder, because rain comes first.
var schemeTable = []schemeEntry{
	{"clear", mustHex("#87CEEB")},   // Sky blue
	{"cloud", mustHex("#d3d3d3")},   // Light gray
	{"rain", mustHex("#a4b0be")},    // Muted blue-gray
	{"thunder", mustHex("#57606f")}, // Dark gray
	{"snow", mustHex("#ffffff")},    // White
	{"mist", mustHex("#cfd8dc")},    // Misty gray
	{"fog", mustHex("#cfd8dc")},     // Foggy gray
	{"haze", mustHex("#f0e68c")},    // Khaki yellow
}

// DefaultScheme is used at startup and when no keyword matches.
var DefaultScheme = mustHex("#f5f5f5")

// SchemeFor picks the background colour for a weather description by
// case-insensitive substring match against the ordered keyword table.
func SchemeFor(description string) color.NRGBA {
	c, _ := matchScheme(description)
	return c
}

// SchemeKeyword returns the keyword that decided the colour, or "" for the default.
func SchemeKeyword(description string) string {
	_, kw := matchScheme(description)
	return kw
}

func matchScheme(description string) (color.NRGBA, string) {
	desc := strings.ToLower(description)
	for _, entry := range schemeTable {
		if strings.Contains(desc, entry.Keyword) {
			return entry.Color, entry.Keyword
		}
	}
	return DefaultScheme, ""
}

// ParseHex parses "#rrggbb" (case-insensitive) into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
