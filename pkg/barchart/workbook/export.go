// Package workbook writes bar charts to xlsx workbooks and reads chart
// metadata back out of them.
package workbook

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/haproxytech/barchart-go/pkg/barchart/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet holding the chart data.
const SheetName = "Data"

// ErrUnsupportedFormat indicates a workbook path excelize cannot save to.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

var extensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// CheckPath reports whether path names a workbook format excelize writes.
func CheckPath(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !extensions[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// Export writes chart to path as a workbook: one header row naming the
// series, one row per category, and a clustered column chart beside the
// data. Series are filled from palette in order.
func Export(path string, chart models.BarChart, palette []color.Color) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	rows := categoryCount(chart)
	if err := writeData(f, chart, rows); err != nil {
		return err
	}

	anchor, err := excelize.CoordinatesToCellName(len(chart.Series)+3, 2)
	if err != nil {
		return err
	}
	if err := f.AddChart(SheetName, anchor, newChart(chart, rows, palette)); err != nil {
		return fmt.Errorf("add chart: %w", err)
	}

	return f.SaveAs(path)
}

// writeData fills the Data sheet, header in row 1.
func writeData(f *excelize.File, chart models.BarChart, rows int) error {
	header := []interface{}{"Category"}
	for _, s := range chart.Series {
		header = append(header, s.Name)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		row := []interface{}{categoryName(chart, i)}
		for _, s := range chart.Series {
			if i < len(s.Values) {
				row = append(row, s.Values[i])
			} else {
				row = append(row, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func newChart(chart models.BarChart, rows int, palette []color.Color) *excelize.Chart {
	last := rows + 1
	series := make([]excelize.ChartSeries, 0, len(chart.Series))
	for i := range chart.Series {
		col, _ := excelize.ColumnNumberToName(i + 2)
		s := excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", SheetName, col),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", SheetName, last),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", SheetName, col, col, last),
		}
		if len(palette) > 0 {
			s.Fill = excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{hexColor(palette[i%len(palette)])},
			}
		}
		series = append(series, s)
	}

	c := &excelize.Chart{
		Type:     excelize.Col,
		Series:   series,
		Title:    []excelize.RichTextRun{{Text: chart.Title}},
		Legend:   excelize.ChartLegend{Position: "top"},
		PlotArea: excelize.ChartPlotArea{ShowVal: chart.ShowValues},
	}
	if !chart.ShowLegend {
		c.Legend.Position = "none"
	}
	if chart.XAxisTitle != "" {
		c.XAxis.Title = []excelize.RichTextRun{{Text: chart.XAxisTitle}}
	}
	if chart.YAxisTitle != "" {
		c.YAxis.Title = []excelize.RichTextRun{{Text: chart.YAxisTitle}}
	}
	return c
}

func categoryCount(chart models.BarChart) int {
	n := 0
	for _, s := range chart.Series {
		if len(s.Values) > n {
			n = len(s.Values)
		}
	}
	return n
}

func categoryName(chart models.BarChart, i int) string {
	if i < len(chart.Categories) {
		return chart.Categories[i]
	}
	return fmt.Sprintf("%d", i+1)
}

// hexColor converts c to the RRGGBB form excelize expects.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("%02X%02X%02X", r>>8, g>>8, b>>8)
}
