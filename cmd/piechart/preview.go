package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// previewBackground is the colour transparent parts of the chart are
// shown on.
var previewBackground = color.RGBA{0x20, 0x20, 0x20, 0xff}

// preview renders img as cols columns of half-block characters. Each
// character cell shows two pixels, one above the other.
func preview(img image.Image, cols int) string {
	b := img.Bounds()
	if cols <= 0 || b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}
	rows := max(1, (cols*b.Dy()/b.Dx()+1)/2)

	small := image.NewRGBA(image.Rect(0, 0, cols, 2*rows))
	draw.Draw(small, small.Bounds(), image.NewUniform(previewBackground), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(small, small.Bounds(), img, b, draw.Over, nil)

	var sb strings.Builder
	for row := range rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for x := range cols {
			top := small.RGBAAt(x, 2*row)
			bottom := small.RGBAAt(x, 2*row+1)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom)))
			sb.WriteString(cell.Render("▀"))
		}
	}
	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
