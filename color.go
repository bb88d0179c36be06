// seehuhn.de/go/piechart - pie chart layout and rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package piechart

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

// Color is a non-premultiplied 8-bit RGBA colour.
//
// In text form (configuration files, traces) a colour is written as
// #RRGGBB, or #AARRGGBB if it is not opaque. Parsing also accepts a small
// set of colour names.
type Color struct {
	R, G, B, A uint8
}

// Commonly used colours.
var (
	Transparent = Color{}
	Black       = Color{0x00, 0x00, 0x00, 0xff}
	White       = Color{0xff, 0xff, 0xff, 0xff}
	Red         = Color{0xff, 0x00, 0x00, 0xff}
	Green       = Color{0x00, 0xff, 0x00, 0xff}
	Blue        = Color{0x00, 0x00, 0xff, 0xff}
	Yellow      = Color{0xff, 0xff, 0x00, 0xff}
	Gray        = Color{0x88, 0x88, 0x88, 0xff}
)

var colorNames = map[string]Color{
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"gray":        Gray,
	"grey":        Gray,
	"cyan":        {0x00, 0xff, 0xff, 0xff},
	"magenta":     {0xff, 0x00, 0xff, 0xff},
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String returns the colour in #RRGGBB or #AARRGGBB notation.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses a colour name, or a colour in #RGB, #RRGGBB or
// #AARRGGBB notation. In the eight digit form the alpha channel comes
// first.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colorNames[strings.ToLower(s)]; ok {
		return c, nil
	}

	digits, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, errors.Wrapf(ErrInvalidInput, "unknown colour %q", s)
	}
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0], digits[1], digits[1], digits[2], digits[2],
		})
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return Color{}, errors.Wrapf(ErrInvalidInput, "malformed colour %q", s)
	}
	switch len(b) {
	case 3:
		return Color{b[0], b[1], b[2], 0xff}, nil
	case 4:
		return Color{b[1], b[2], b[3], b[0]}, nil
	default:
		return Color{}, errors.Wrapf(ErrInvalidInput, "malformed colour %q", s)
	}
}

// palette holds the slice colours, in the order they are used.
var palette = [...]Color{
	{0x99, 0xcc, 0x00, 0xff}, // light green
	{0x33, 0xb5, 0xe5, 0xff}, // light blue
	{0xff, 0x44, 0x44, 0xff}, // light red
	{0xff, 0xbb, 0x33, 0xff}, // light orange
	{0xaa, 0x66, 0xcc, 0xff}, // purple
	Blue,
	Red,
	Yellow,
	Green,
}

// PaletteSize is the number of distinct slice colours.
const PaletteSize = len(palette)

// PaletteColor returns the fill colour for the slice drawn at position i.
// Colours repeat after [PaletteSize] slices.
func PaletteColor(i int) Color {
	i %= PaletteSize
	if i < 0 {
		i += PaletteSize
	}
	return palette[i]
}
