package charts

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"blue":    {0x1f, 0x3f, 0xd9, 0xff},
	"brown":   {0x8b, 0x45, 0x13, 0xff},
	"cyan":    {0x00, 0xbc, 0xd4, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"green":   {0x2e, 0x8b, 0x57, 0xff},
	"magenta": {0xc2, 0x18, 0x5b, 0xff},
	"orange":  {0xff, 0x8c, 0x00, 0xff},
	"pink":    {0xff, 0x69, 0xb4, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"red":     {0xd6, 0x27, 0x28, 0xff},
	"yellow":  {0xe6, 0xb8, 0x00, 0xff},
}

// ParseColor accepts a named color or a #rgb / #rrggbb hex value.
func ParseColor(value string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return nil, errors.New("empty color")
	}
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if !strings.HasPrefix(name, "#") {
		return nil, fmt.Errorf("unknown color %q", value)
	}
	hex := name[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid hex color %q", value)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q", value)
	}
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}, nil
}

// ParsePalette parses every entry of values, failing on the first bad one.
func ParsePalette(values []string) ([]color.Color, error) {
	if len(values) == 0 {
		return nil, errors.New("palette is empty")
	}
	palette := make([]color.Color, 0, len(values))
	for _, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// chapterColor cycles through the palette by chapter id (1-based).
func chapterColor(palette []color.Color, chapter int) color.Color {
	if len(palette) == 0 {
		return color.Black
	}
	idx := (chapter - 1) % len(palette)
	if idx < 0 {
		idx += len(palette)
	}
	return palette[idx]
}
