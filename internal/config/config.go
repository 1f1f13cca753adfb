// Package config loads the chart style from the environment.
package config

import (
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"github.com/haproxytech/barchart-go/pkg/barchart"
	"github.com/haproxytech/barchart-go/pkg/barchart/figure"
	"github.com/kelseyhightower/envconfig"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot/vg"
)

// Prefix is prepended to every variable name, e.g. BARCHART_WIDTH.
const Prefix = "BARCHART"

type Config struct {
	Width         string   `envconfig:"WIDTH" default:"6.4in"`
	Height        string   `envconfig:"HEIGHT" default:"4.8in"`
	Palette       []string `envconfig:"PALETTE" default:"4169E1,FF0000,FFA500"`
	Background    string   `envconfig:"BACKGROUND" default:"FFFFFF"`
	Grid          string   `envconfig:"GRID" default:"E5E5E5"`
	Category      string   `envconfig:"CATEGORY" default:"NGINX"`
	XLabel        string   `envconfig:"XLABEL" default:"Proxy"`
	BarWidth      string   `envconfig:"BAR_WIDTH" default:"40pt"`
	GroupBarWidth string   `envconfig:"GROUP_BAR_WIDTH" default:"20pt"`
	LabelOffset   string   `envconfig:"LABEL_OFFSET" default:"3pt"`
}

// Load reads the configuration from the environment. logger may be nil.
func Load(logger *slog.Logger) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, barchart.NewInputError("configuration", "%v", err)
	}
	if logger != nil {
		logger.Debug("Configuration loaded.", "width", cfg.Width, "height", cfg.Height)
	}
	return &cfg, nil
}

// Style converts the raw settings into a figure style.
func (c *Config) Style() (figure.Style, error) {
	var s figure.Style
	var err error

	lengths := []struct {
		name  string
		value string
		dst   *vg.Length
	}{
		{"WIDTH", c.Width, &s.Width},
		{"HEIGHT", c.Height, &s.Height},
		{"BAR_WIDTH", c.BarWidth, &s.BarWidth},
		{"GROUP_BAR_WIDTH", c.GroupBarWidth, &s.GroupBarWidth},
		{"LABEL_OFFSET", c.LabelOffset, &s.LabelOffset},
	}
	for _, l := range lengths {
		if *l.dst, err = parseLength(l.name, l.value); err != nil {
			return s, err
		}
	}

	if s.Background, err = parseColor("BACKGROUND", c.Background); err != nil {
		return s, err
	}
	if !strings.EqualFold(c.Grid, "none") {
		if s.Grid, err = parseColor("GRID", c.Grid); err != nil {
			return s, err
		}
	}
	if len(c.Palette) == 0 {
		return s, barchart.NewInputError(Prefix+"_PALETTE", "at least one colour is required")
	}
	for _, hex := range c.Palette {
		col, err := parseColor("PALETTE", hex)
		if err != nil {
			return s, err
		}
		s.Palette = append(s.Palette, col)
	}

	return s, nil
}

// Options builds renderer options from the configuration.
func (c *Config) Options(logger *slog.Logger) (barchart.Options, error) {
	style, err := c.Style()
	if err != nil {
		return barchart.Options{}, err
	}
	return barchart.Options{
		Style:      style,
		Category:   c.Category,
		XAxisTitle: c.XLabel,
		Logger:     logger,
	}, nil
}

func parseLength(name, value string) (vg.Length, error) {
	l, err := vg.ParseLength(value)
	if err != nil {
		return 0, barchart.NewInputError(Prefix+"_"+name, "%v", err)
	}
	if l <= 0 {
		return 0, barchart.NewInputError(Prefix+"_"+name, "%q must be positive", value)
	}
	return l, nil
}

// parseColor accepts RGB or RRGGBB hex, with or without a leading '#'.
func parseColor(name, value string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return nil, barchart.NewInputError(Prefix+"_"+name, "%q is not a hex colour", value)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return nil, barchart.NewInputError(Prefix+"_"+name, "%q is not a hex colour", value)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return drawing.ColorFromHex(hex), nil
}
