// Package barchart renders single and grouped bar charts to image files.
package barchart

import (
	"log/slog"

	"github.com/haproxytech/barchart-go/pkg/barchart/figure"
)

// Kind represents the chart layout.
type Kind string

const (
	// KindSingle draws one bar per value.
	KindSingle Kind = "single"
	// KindGrouped draws three bars side by side per category.
	KindGrouped Kind = "grouped"
)

// ParseKind converts a CLI value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSingle, KindGrouped:
		return Kind(s), nil
	default:
		return "", NewInputError("chart", "%q (must be single or grouped)", s)
	}
}

// DefaultCategory names the only category drawn by the report charts.
const DefaultCategory = "NGINX"

// DefaultXAxisTitle is the category axis title of single charts.
const DefaultXAxisTitle = "Proxy"

// PercentileLabels name grouped series when they hold latency percentiles.
var PercentileLabels = [3]string{"75th", "95th", "99th"}

// StatusLabels name grouped series when they hold HTTP error counts.
var StatusLabels = [3]string{"502", "503", "504"}

// LegendLabels returns the grouped legend vocabulary.
func LegendLabels(usePercentileLabels bool) [3]string {
	if usePercentileLabels {
		return PercentileLabels
	}
	return StatusLabels
}

// Options configures a Renderer.
type Options struct {
	// Style controls the image output.
	Style figure.Style
	// Category names the category axis position(s).
	Category string
	// XAxisTitle titles the category axis of single charts.
	XAxisTitle string
	// Logger receives progress messages. If nil, logging is discarded.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by the report charts.
func DefaultOptions() Options {
	return Options{
		Style:      figure.DefaultStyle(),
		Category:   DefaultCategory,
		XAxisTitle: DefaultXAxisTitle,
	}
}
