// Package figure builds bar chart images with gonum/plot.
package figure

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Style holds every visual setting a Renderer applies. It is fixed at
// construction; nothing here touches package level plotting defaults.
type Style struct {
	// Width and Height are the output image dimensions.
	Width  vg.Length
	Height vg.Length
	// Background fills the whole figure.
	Background color.Color
	// Grid colours the horizontal grid lines; nil disables the grid.
	Grid color.Color
	// Palette colours series in order, wrapping when exhausted.
	Palette []color.Color
	// BarWidth is used when a chart has a single series.
	BarWidth vg.Length
	// GroupBarWidth is used for each bar of a grouped chart.
	GroupBarWidth vg.Length
	// LabelOffset is the gap between a bar top and its annotation.
	LabelOffset vg.Length
}

// DefaultStyle is the report chart look: white
// background, light grid, royal blue / red / orange bars.
func DefaultStyle() Style {
	return Style{
		Width:      6.4 * vg.Inch,
		Height:     4.8 * vg.Inch,
		Background: color.White,
		Grid:       color.RGBA{R: 0xE5, G: 0xE5, B: 0xE5, A: 0xFF},
		Palette: []color.Color{
			color.RGBA{R: 0x41, G: 0x69, B: 0xE1, A: 0xFF},
			color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
			color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF},
		},
		BarWidth:      40 * vg.Points(1),
		GroupBarWidth: 20 * vg.Points(1),
		LabelOffset:   3 * vg.Points(1),
	}
}

// color returns the palette entry for series i.
func (s Style) color(i int) color.Color {
	if len(s.Palette) == 0 {
		return color.Black
	}
	return s.Palette[i%len(s.Palette)]
}
