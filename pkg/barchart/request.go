package barchart

import (
	"math"

	"github.com/haproxytech/barchart-go/pkg/barchart/figure"
	"github.com/haproxytech/barchart-go/pkg/barchart/workbook"
)

// Series is the data of a ChartRequest. It is either SingleSeries or
// GroupedSeries; the kind of chart follows from which one is present.
type Series interface {
	kind() Kind
	validate() error
}

// SingleSeries holds the values of a single bar chart.
type SingleSeries struct {
	Values []float64
}

func (SingleSeries) kind() Kind { return KindSingle }

func (s SingleSeries) validate() error {
	return checkValues("single-data", s.Values)
}

// GroupedSeries holds the three value sets of a grouped bar chart. Index i
// of each set belongs to category i.
type GroupedSeries struct {
	Bar1 []float64
	Bar2 []float64
	Bar3 []float64
}

func (GroupedSeries) kind() Kind { return KindGrouped }

func (s GroupedSeries) validate() error {
	sets := s.sets()
	names := [3]string{"bar1", "bar2", "bar3"}
	for i, vs := range sets {
		if err := checkValues(names[i], vs); err != nil {
			return err
		}
	}
	for i := 1; i < len(sets); i++ {
		if len(sets[i]) != len(sets[0]) {
			return NewInputError(names[i], "has %d values, bar1 has %d", len(sets[i]), len(sets[0]))
		}
	}
	return nil
}

func (s GroupedSeries) sets() [3][]float64 {
	return [3][]float64{s.Bar1, s.Bar2, s.Bar3}
}

// ChartRequest is everything needed to render one chart.
type ChartRequest struct {
	Title               string
	YLabel              string
	ShowValueLabels     bool
	UsePercentileLabels bool
	OutputPath          string
	// WorkbookPath, when set, also writes the data and a native chart to an
	// xlsx workbook.
	WorkbookPath string
	Series       Series
}

// Kind reports the chart layout selected by the request's series.
func (r ChartRequest) Kind() Kind {
	if r.Series == nil {
		return ""
	}
	return r.Series.kind()
}

// Validate checks the request before anything is drawn.
func (r ChartRequest) Validate() error {
	if r.OutputPath == "" {
		return NewInputError("output", "path is required")
	}
	if _, err := figure.Format(r.OutputPath); err != nil {
		return NewInputError("output", "%v", err)
	}
	if r.WorkbookPath != "" {
		if err := workbook.CheckPath(r.WorkbookPath); err != nil {
			return NewInputError("xlsx", "%v", err)
		}
	}
	if r.Series == nil {
		return NewInputError("series", "no data for chart")
	}
	return r.Series.validate()
}

func checkValues(field string, vs []float64) error {
	if len(vs) == 0 {
		return NewInputError(field, "at least one value is required")
	}
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewInputError(field, "value %d is not a finite number", i+1)
		}
	}
	return nil
}
