package piechart

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Red},
		{"#FF0000", Red},
		{"#f00", Red},
		{"  blue ", Blue},
		{"White", White},
		{"#8000ff00", Color{0x00, 0xff, 0x00, 0x80}},
		{"#99cc00", palette[0]},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "#", "#12345", "#gg0000", "mauve", "ff0000"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseColor(%q): got %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestColorString(t *testing.T) {
	if s := Blue.String(); s != "#0000ff" {
		t.Errorf("Blue.String() = %q", s)
	}
	c := Color{0x11, 0x22, 0x33, 0x44}
	if s := c.String(); s != "#44112233" {
		t.Errorf("String() = %q", s)
	}
	back, err := ParseColor(c.String())
	if err != nil || back != c {
		t.Errorf("ParseColor(%q) = %v, %v", c.String(), back, err)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{0xff, 0x00, 0x00, 0x80}.RGBA()
	// premultiplied, 16 bit
	if r != 0x8080 || g != 0 || b != 0 || a != 0x8080 {
		t.Errorf("RGBA() = %04x %04x %04x %04x", r, g, b, a)
	}
}
