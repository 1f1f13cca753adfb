// Package models defines data structures shared by the chart renderers.
package models

// BarSeries is one named sequence of bar heights, one value per category.
type BarSeries struct {
	// Name is the legend entry for the series.
	Name string `json:"name"`
	// Values holds the bar heights in category order.
	Values []float64 `json:"values"`
}

// BarChart describes what should be drawn, independent of the output backend.
type BarChart struct {
	// Title is the chart title.
	Title string `json:"title"`
	// XAxisTitle is the category axis title (empty for none).
	XAxisTitle string `json:"x_axis_title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title"`
	// Categories names each position along the category axis.
	Categories []string `json:"categories"`
	// Series is drawn side by side within each category, in order.
	Series []BarSeries `json:"series"`
	// ShowValues annotates bars with their heights.
	ShowValues bool `json:"show_values,omitempty"`
	// ShowLegend adds a legend entry per series.
	ShowLegend bool `json:"show_legend,omitempty"`
}

// BarCount returns the total number of bars in the chart.
func (c BarChart) BarCount() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Values)
	}
	return n
}
