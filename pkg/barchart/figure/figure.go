package figure

import (
	"errors"
	"fmt"
	"math"

	"github.com/haproxytech/barchart-go/pkg/barchart/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// ErrNoSeries is returned when a chart has nothing to draw.
var ErrNoSeries = errors.New("chart has no series")

// Bar records one drawn bar.
type Bar struct {
	Series   string
	Category int
	Value    float64
	// Offset is the horizontal shift from the category tick.
	Offset vg.Length
}

// Annotation records one value label drawn above a bar.
type Annotation struct {
	Text     string
	Category int
	Value    float64
	// Offset is the shift from the bar top, in output units.
	Offset vg.Point
	XAlign text.XAlignment
	YAlign text.YAlignment
}

// Figure is a fully built plot that has not been written anywhere yet.
type Figure struct {
	Plot   *plot.Plot
	Width  vg.Length
	Height vg.Length

	Bars        []Bar
	Annotations []Annotation
	Legend      []string
}

// Renderer turns chart descriptions into figures using a fixed Style.
type Renderer struct {
	style Style
}

// New returns a Renderer bound to style.
func New(style Style) *Renderer {
	return &Renderer{style: style}
}

// Style returns the style the renderer was built with.
func (r *Renderer) Style() Style {
	return r.style
}

// Build lays out c as a bar chart. Series are placed side by side within
// each category, centred on the category tick.
func (r *Renderer) Build(c models.BarChart) (*Figure, error) {
	if len(c.Series) == 0 {
		return nil, ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XAxisTitle
	p.Y.Label.Text = c.YAxisTitle
	p.BackgroundColor = r.style.Background

	if r.style.Grid != nil {
		grid := plotter.NewGrid()
		grid.Vertical.Color = nil
		grid.Horizontal.Color = r.style.Grid
		p.Add(grid)
	}

	fig := &Figure{
		Plot:   p,
		Width:  r.style.Width,
		Height: r.style.Height,
	}

	width := r.style.BarWidth
	if len(c.Series) > 1 {
		width = r.style.GroupBarWidth
	}
	center := float64(len(c.Series)-1) / 2

	for i, s := range c.Series {
		if len(s.Values) == 0 {
			return nil, fmt.Errorf("series %q: no values", s.Name)
		}
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), width)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		bars.Color = r.style.color(i)
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(i)-center) * width
		p.Add(bars)

		if c.ShowLegend {
			p.Legend.Add(s.Name, bars)
			fig.Legend = append(fig.Legend, s.Name)
		}

		for cat, v := range s.Values {
			fig.Bars = append(fig.Bars, Bar{Series: s.Name, Category: cat, Value: v, Offset: bars.Offset})
		}

		if c.ShowValues {
			labels, err := r.annotate(fig, s, bars.Offset)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Name, err)
			}
			if labels != nil {
				p.Add(labels)
			}
		}
	}

	if len(c.Categories) > 0 {
		p.NominalX(c.Categories...)
	}
	p.Legend.Top = true
	padValueAxis(p)

	return fig, nil
}

// annotate builds the value labels for one series, or nil when no bar in
// the series qualifies.
func (r *Renderer) annotate(fig *Figure, s models.BarSeries, offset vg.Length) (*plotter.Labels, error) {
	var xys plotter.XYs
	var texts []string
	var anns []Annotation
	at := vg.Point{X: offset, Y: r.style.LabelOffset}

	for cat, v := range s.Values {
		if !ShouldAnnotate(v) {
			continue
		}
		txt := FormatValue(v)
		xys = append(xys, plotter.XY{X: float64(cat), Y: v})
		texts = append(texts, txt)
		// Centred on the bar, text sitting on top of it.
		anns = append(anns, Annotation{
			Text:     txt,
			Category: cat,
			Value:    v,
			Offset:   at,
			XAlign:   text.XCenter,
			YAlign:   text.YBottom,
		})
	}
	if len(xys) == 0 {
		return nil, nil
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = anns[i].XAlign
		labels.TextStyle[i].YAlign = anns[i].YAlign
	}
	labels.Offset = at
	fig.Annotations = append(fig.Annotations, anns...)
	return labels, nil
}

// padValueAxis leaves headroom above the tallest bar for its annotation.
func padValueAxis(p *plot.Plot) {
	span := p.Y.Max - p.Y.Min
	if span <= 0 || math.IsInf(span, 0) {
		return
	}
	p.Y.Max += span * 0.08
	if p.Y.Min < 0 {
		p.Y.Min -= span * 0.04
	}
}
