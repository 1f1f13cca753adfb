package config

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"testing"

	"github.com/haproxytech/barchart-go/pkg/barchart"
	"github.com/haproxytech/barchart-go/pkg/barchart/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	style, err := cfg.Style()
	require.NoError(t, err)

	def := figure.DefaultStyle()
	assert.InDelta(t, float64(def.Width), float64(style.Width), 1e-9)
	assert.InDelta(t, float64(def.Height), float64(style.Height), 1e-9)
	assert.InDelta(t, float64(def.LabelOffset), float64(style.LabelOffset), 1e-9)
	require.Len(t, style.Palette, 3)
	for i := range def.Palette {
		assert.Equal(t, rgba(def.Palette[i]), rgba(style.Palette[i]), "palette %d", i)
	}
	assert.Equal(t, rgba(color.White), rgba(style.Background))
	assert.Equal(t, "NGINX", cfg.Category)
	assert.Equal(t, "Proxy", cfg.XLabel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BARCHART_PALETTE", "#000,00ff00")
	t.Setenv("BARCHART_GRID", "none")
	t.Setenv("BARCHART_WIDTH", "10cm")
	t.Setenv("BARCHART_CATEGORY", "HAProxy")

	cfg, err := Load(nil)
	require.NoError(t, err)

	opts, err := cfg.Options(nil)
	require.NoError(t, err)

	assert.Equal(t, "HAProxy", opts.Category)
	assert.Nil(t, opts.Style.Grid)
	require.Len(t, opts.Style.Palette, 2)
	assert.Equal(t, rgba(color.Black), rgba(opts.Style.Palette[0]))
	assert.Equal(t, rgba(color.RGBA{G: 0xFF, A: 0xFF}), rgba(opts.Style.Palette[1]))
	assert.Greater(t, float64(opts.Style.Width), 0.0)
}

func TestLoadLogsToGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Load(logger)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Configuration loaded.")
	assert.Contains(t, buf.String(), "width=6.4in")
}

func TestStyleRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*Config)
	}{
		{"bad colour", func(c *Config) { c.Background = "white" }},
		{"short colour", func(c *Config) { c.Palette = []string{"12"} }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
		{"bad length", func(c *Config) { c.Width = "wide" }},
		{"negative length", func(c *Config) { c.BarWidth = "-3pt" }},
	}

	for _, tt := range tests {
		cfg, err := Load(nil)
		require.NoError(t, err)
		tt.cfg(cfg)

		_, err = cfg.Style()
		if !errors.Is(err, barchart.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tt.name, err)
		}
	}
}

func rgba(c color.Color) [4]uint32 {
	r, g, b, a := c.RGBA()
	return [4]uint32{r, g, b, a}
}
