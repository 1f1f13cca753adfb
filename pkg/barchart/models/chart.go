package models

// ChartSeries represents series metadata for a chart stored in a workbook.
type ChartSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for bar values.
	YRange string `json:"y_range,omitempty"`
}

// Chart represents chart metadata read back from a workbook.
type Chart struct {
	// Part is the chart part name inside the package (e.g. xl/charts/chart1.xml).
	Part string `json:"part"`
	// ChartType is the chart type (e.g., Bar, Line).
	ChartType string `json:"chart_type"`
	// BarDirection is "col" or "bar" for bar charts.
	BarDirection string `json:"bar_direction,omitempty"`
	// Grouping is the bar grouping (clustered, stacked, ...).
	Grouping string `json:"grouping,omitempty"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisRange is the value axis range [min, max] when both are fixed.
	YAxisRange []float64 `json:"y_axis_range,omitempty"`
	// ShowValues reports whether data labels show values.
	ShowValues bool `json:"show_values,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
}
