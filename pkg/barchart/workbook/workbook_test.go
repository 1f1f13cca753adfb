package workbook

import (
	"errors"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/haproxytech/barchart-go/pkg/barchart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var palette = []color.Color{
	color.RGBA{R: 0x41, G: 0x69, B: 0xE1, A: 0xFF},
	color.RGBA{R: 0xFF, A: 0xFF},
	color.RGBA{R: 0xFF, G: 0xA5, A: 0xFF},
}

func groupedChart() models.BarChart {
	return models.BarChart{
		Title:      "Errors",
		YAxisTitle: "count",
		Categories: []string{"NGINX"},
		Series: []models.BarSeries{
			{Name: "502", Values: []float64{4}},
			{Name: "503", Values: []float64{0}},
			{Name: "504", Values: []float64{2.5}},
		},
		ShowValues: true,
		ShowLegend: true,
	}
}

func TestExportWritesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.xlsx")
	require.NoError(t, Export(path, groupedChart(), palette))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Category", "502", "503", "504"}, rows[0])
	assert.Equal(t, []string{"NGINX", "4", "0", "2.5"}, rows[1])
}

func TestExportInspectRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.xlsx")
	require.NoError(t, Export(path, groupedChart(), palette))

	charts, err := Inspect(path)
	require.NoError(t, err)
	require.Len(t, charts, 1)

	c := charts[0]
	assert.Equal(t, "Bar", c.ChartType)
	assert.Equal(t, "col", c.BarDirection)
	assert.Equal(t, "Errors", c.Title)
	assert.Equal(t, "count", c.YAxisTitle)
	assert.True(t, c.ShowValues)

	require.Len(t, c.Series, 3)
	for i, name := range []string{"502", "503", "504"} {
		assert.Equal(t, name, c.Series[i].Name)
	}
	assert.Equal(t, "Data!$B$1", c.Series[0].NameRange)
	assert.Equal(t, "Data!$A$2:$A$2", c.Series[0].XRange)
	assert.Equal(t, "Data!$D$2:$D$2", c.Series[2].YRange)
}

func TestInspectMissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestCheckPath(t *testing.T) {
	for _, p := range []string{"out.xlsx", "OUT.XLSM", "dir/t.xltx", "t.xltm"} {
		assert.NoError(t, CheckPath(p), p)
	}
	for _, p := range []string{"out.txt", "out.xls", "out", "out.csv"} {
		err := CheckPath(p)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat), "%s: got %v", p, err)
	}
}

func TestSplitReference(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		cell  string
	}{
		{"Data!$B$1", "Data", "B1"},
		{"'My Sheet'!$C$10", "My Sheet", "C10"},
		{"B1", "", ""},
	}

	for _, tt := range tests {
		sheet, cell := splitReference(tt.ref)
		if sheet != tt.sheet || cell != tt.cell {
			t.Errorf("splitReference(%q) = %q, %q, expected %q, %q", tt.ref, sheet, cell, tt.sheet, tt.cell)
		}
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(palette[0]); got != "4169E1" {
		t.Errorf("hexColor = %q, expected 4169E1", got)
	}
	if got := hexColor(color.White); got != "FFFFFF" {
		t.Errorf("hexColor(white) = %q, expected FFFFFF", got)
	}
}

func TestParseChartXML(t *testing.T) {
	data := []byte(`<c:chartSpace xmlns:c="c" xmlns:a="a"><c:chart>
<c:title><c:tx><c:rich><a:p><a:r><a:t>Latency</a:t></a:r></a:p></c:rich></c:tx></c:title>
<c:plotArea>
<c:barChart><c:barDir val="col"/><c:grouping val="clustered"/>
<c:ser><c:tx><c:strRef><c:f>Data!$B$1</c:f><c:strCache><c:pt idx="0"><c:v>75th</c:v></c:pt></c:strCache></c:strRef></c:tx>
<c:cat><c:strRef><c:f>Data!$A$2:$A$2</c:f></c:strRef></c:cat>
<c:val><c:numRef><c:f>Data!$B$2:$B$2</c:f></c:numRef></c:val></c:ser>
<c:dLbls><c:showVal val="1"/></c:dLbls>
</c:barChart>
<c:valAx><c:scaling><c:min val="0"/><c:max val="100"/></c:scaling>
<c:title><c:tx><c:rich><a:p><a:r><a:t>ms</a:t></a:r></a:p></c:rich></c:tx></c:title></c:valAx>
</c:plotArea></c:chart></c:chartSpace>`)

	c := parseChartXML(data)
	assert.Equal(t, "Bar", c.ChartType)
	assert.Equal(t, "clustered", c.Grouping)
	assert.Equal(t, "Latency", c.Title)
	assert.Equal(t, "ms", c.YAxisTitle)
	assert.Equal(t, []float64{0, 100}, c.YAxisRange)
	assert.True(t, c.ShowValues)
	require.Len(t, c.Series, 1)
	assert.Equal(t, models.ChartSeries{
		Name:      "75th",
		NameRange: "Data!$B$1",
		XRange:    "Data!$A$2:$A$2",
		YRange:    "Data!$B$2:$B$2",
	}, c.Series[0])
}
