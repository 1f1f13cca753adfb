// Package main provides the CLI entry point for barchart.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/haproxytech/barchart-go/internal/config"
	"github.com/haproxytech/barchart-go/internal/logging"
	"github.com/haproxytech/barchart-go/pkg/barchart"
	"github.com/spf13/cobra"
)

type chartFlags struct {
	chart      string
	label      bool
	output     string
	percentile bool
	singleData []float64
	title      string
	ylabel     string
	bar1       []float64
	bar2       []float64
	bar3       []float64
	xlsx       string
	logLevel   string
	logFormat  string
}

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &chartFlags{}

	rootCmd := &cobra.Command{
		Use:   "barchart",
		Short: "Render single or grouped bar charts",
		Long: `barchart renders a single or grouped bar chart from values given on the
command line and writes it as an image. The format follows the output
extension (png by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringVarP(&f.chart, "chart", "c", "", "Type of chart to output: single or grouped")
	flags.BoolVarP(&f.label, "label", "l", false, "Print bar values above the bars")
	flags.StringVarP(&f.output, "output", "o", "", "Full path of the image to write")
	flags.BoolVarP(&f.percentile, "percentile", "p", false, "Use percentile legend labels (75th, 95th, 99th)")
	flags.Float64SliceVarP(&f.singleData, "single-data", "s", nil, "Data to chart (single)")
	flags.StringVarP(&f.title, "title", "t", "", "Title of chart")
	flags.StringVarP(&f.ylabel, "ylabel", "y", "", "Description of the y axis")
	flags.Float64SliceVar(&f.bar1, "bar1", nil, "Bar 1 data (grouped)")
	flags.Float64SliceVar(&f.bar2, "bar2", nil, "Bar 2 data (grouped)")
	flags.Float64SliceVar(&f.bar3, "bar3", nil, "Bar 3 data (grouped)")
	flags.StringVar(&f.xlsx, "xlsx", "", "Also write the data and chart to this xlsx workbook")

	for _, name := range []string{"chart", "output", "title", "ylabel"} {
		_ = rootCmd.MarkFlagRequired(name)
	}

	rootCmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "Logging level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&f.logFormat, "log-format", "text", "Log output format: text or json")

	rootCmd.AddCommand(newInspectCmd())

	return rootCmd
}

func run(cmd *cobra.Command, f *chartFlags) error {
	logger := logging.New(f.logLevel, f.logFormat, cmd.ErrOrStderr())

	req, err := buildRequest(cmd, f)
	if err != nil {
		return err
	}

	cfg, err := config.Load(logger)
	if err != nil {
		return err
	}
	opts, err := cfg.Options(logger)
	if err != nil {
		return err
	}

	if _, err := barchart.NewRenderer(opts).Render(req); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

// buildRequest resolves the chart kind once and attaches only the series
// that kind uses.
func buildRequest(cmd *cobra.Command, f *chartFlags) (barchart.ChartRequest, error) {
	req := barchart.ChartRequest{
		Title:               f.title,
		YLabel:              f.ylabel,
		ShowValueLabels:     f.label,
		UsePercentileLabels: f.percentile,
		OutputPath:          f.output,
		WorkbookPath:        f.xlsx,
	}

	kind, err := barchart.ParseKind(f.chart)
	if err != nil {
		return req, err
	}

	switch kind {
	case barchart.KindSingle:
		if !cmd.Flags().Changed("single-data") {
			return req, barchart.NewInputError("single-data", "required when --chart single")
		}
		req.Series = barchart.SingleSeries{Values: f.singleData}
	case barchart.KindGrouped:
		for _, name := range []string{"bar1", "bar2", "bar3"} {
			if !cmd.Flags().Changed(name) {
				return req, barchart.NewInputError(name, "required when --chart grouped")
			}
		}
		req.Series = barchart.GroupedSeries{Bar1: f.bar1, Bar2: f.bar2, Bar3: f.bar3}
	}

	return req, nil
}
