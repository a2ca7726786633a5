package notes

import (
	"fmt"
	"regexp"
	"strings"
)

// Color is a named note background
type Color struct {
	Name string
	Hex  string
}

// Palette lists the backgrounds offered by the note form
var Palette = []Color{
	{Name: "Salmon pink", Hex: "#FF91A4"},
	{Name: "Honeydew", Hex: "#F0FFF0"},
	{Name: "Orchid pink", Hex: "#F2BDCD"},
	{Name: "Uranian blue", Hex: "#AFDBF5"},
	{Name: "Mindaro", Hex: "#E3F988"},
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ResolveColor turns a palette name or a #RRGGBB value into a hex color.
// Names match case-insensitively, with '-' or '_' standing in for spaces.
// An empty input resolves to "" (no background).
func ResolveColor(nameOrHex string) (string, error) {
	v := strings.TrimSpace(nameOrHex)
	if v == "" {
		return "", nil
	}

	if hexColorPattern.MatchString(v) {
		return strings.ToUpper(v), nil
	}

	key := normalizeColorName(v)
	for _, c := range Palette {
		if normalizeColorName(c.Name) == key {
			return c.Hex, nil
		}
	}

	return "", fmt.Errorf("unknown color %q: use a palette name or #RRGGBB", nameOrHex)
}

// ColorName returns the palette name for hex, or hex itself if it is not in the palette
func ColorName(hex string) string {
	for _, c := range Palette {
		if strings.EqualFold(c.Hex, hex) {
			return c.Name
		}
	}
	return hex
}

func normalizeColorName(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
