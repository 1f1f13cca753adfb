package barchart

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/haproxytech/barchart-go/pkg/barchart/figure"
	"github.com/haproxytech/barchart-go/pkg/barchart/models"
	"github.com/haproxytech/barchart-go/pkg/barchart/workbook"
)

// Result describes a rendered chart.
type Result struct {
	Chart  models.BarChart
	Figure *figure.Figure
}

// Renderer turns ChartRequests into image files.
type Renderer struct {
	fig    *figure.Renderer
	opts   Options
	logger *slog.Logger
}

// NewRenderer returns a Renderer whose style is fixed by opts.
func NewRenderer(opts Options) *Renderer {
	if opts.Category == "" {
		opts.Category = DefaultCategory
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Renderer{
		fig:    figure.New(opts.Style),
		opts:   opts,
		logger: logger,
	}
}

// Render validates req, draws it and writes the image to req.OutputPath.
// When req.WorkbookPath is set the data is also exported as a workbook.
func (r *Renderer) Render(req ChartRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	chart := r.Describe(req)
	r.logger.Debug("Building chart.", "kind", req.Kind(), "bars", chart.BarCount())

	fig, err := r.fig.Build(chart)
	if err != nil {
		return nil, fmt.Errorf("build chart: %w", err)
	}

	// The workbook goes first: if the image then fails, the workbook is
	// removed again so a failed render leaves neither file.
	if req.WorkbookPath != "" {
		if err := workbook.Export(req.WorkbookPath, chart, r.fig.Style().Palette); err != nil {
			return nil, NewIOError("export", req.WorkbookPath, err)
		}
	}

	if err := fig.Save(req.OutputPath); err != nil {
		if req.WorkbookPath != "" {
			os.Remove(req.WorkbookPath)
		}
		return nil, NewIOError("save", req.OutputPath, err)
	}
	r.logger.Info("Chart written.",
		"path", req.OutputPath,
		"kind", req.Kind(),
		"bars", len(fig.Bars),
		"annotations", len(fig.Annotations),
	)
	if req.WorkbookPath != "" {
		r.logger.Info("Workbook written.", "path", req.WorkbookPath)
	}

	return &Result{Chart: chart, Figure: fig}, nil
}

// RenderSingle draws one bar per value and writes the image to outputPath.
func (r *Renderer) RenderSingle(outputPath string, values []float64, title, yLabel string, showLabels bool) error {
	_, err := r.Render(ChartRequest{
		Title:           title,
		YLabel:          yLabel,
		ShowValueLabels: showLabels,
		OutputPath:      outputPath,
		Series:          SingleSeries{Values: values},
	})
	return err
}

// RenderGrouped draws bar1, bar2 and bar3 side by side per category and
// writes the image to outputPath.
func (r *Renderer) RenderGrouped(outputPath, title, yLabel string, bar1, bar2, bar3 []float64, showLabels, usePercentileLabels bool) error {
	_, err := r.Render(ChartRequest{
		Title:               title,
		YLabel:              yLabel,
		ShowValueLabels:     showLabels,
		UsePercentileLabels: usePercentileLabels,
		OutputPath:          outputPath,
		Series:              GroupedSeries{Bar1: bar1, Bar2: bar2, Bar3: bar3},
	})
	return err
}

// Describe maps a request onto the backend-neutral chart description.
// req must be valid.
func (r *Renderer) Describe(req ChartRequest) models.BarChart {
	chart := models.BarChart{
		Title:      req.Title,
		YAxisTitle: req.YLabel,
		ShowValues: req.ShowValueLabels,
	}

	switch s := req.Series.(type) {
	case SingleSeries:
		chart.XAxisTitle = r.opts.XAxisTitle
		chart.Categories = r.categories(len(s.Values))
		chart.Series = []models.BarSeries{{Name: req.YLabel, Values: s.Values}}
	case GroupedSeries:
		labels := LegendLabels(req.UsePercentileLabels)
		sets := s.sets()
		chart.Categories = r.categories(len(s.Bar1))
		chart.ShowLegend = true
		for i := range sets {
			chart.Series = append(chart.Series, models.BarSeries{Name: labels[i], Values: sets[i]})
		}
	}

	return chart
}

// categories names n category positions. A lone category carries the
// configured name; several are numbered.
func (r *Renderer) categories(n int) []string {
	if n == 1 {
		return []string{r.opts.Category}
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s %d", r.opts.Category, i+1)
	}
	return names
}

// RenderSingle renders a single bar chart with the default options.
func RenderSingle(outputPath string, values []float64, title, yLabel string, showLabels bool) error {
	return NewRenderer(DefaultOptions()).RenderSingle(outputPath, values, title, yLabel, showLabels)
}

// RenderGrouped renders a grouped bar chart with the default options.
func RenderGrouped(outputPath, title, yLabel string, bar1, bar2, bar3 []float64, showLabels, usePercentileLabels bool) error {
	return NewRenderer(DefaultOptions()).RenderGrouped(outputPath, title, yLabel, bar1, bar2, bar3, showLabels, usePercentileLabels)
}
