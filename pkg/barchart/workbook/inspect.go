package workbook

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/haproxytech/barchart-go/pkg/barchart/models"
	"github.com/xuri/excelize/v2"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"barChart":      "Bar",
	"bar3DChart":    "3DBar",
	"lineChart":     "Line",
	"line3DChart":   "3DLine",
	"areaChart":     "Area",
	"pieChart":      "Pie",
	"doughnutChart": "Doughnut",
	"scatterChart":  "XYScatter",
	"radarChart":    "Radar",
}

// Inspect reads every chart part of the workbook at path. Series names
// stored only as cell references are resolved against the sheet data.
func Inspect(path string) ([]models.Chart, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var parts []*zip.File
	for _, zf := range r.File {
		if strings.HasPrefix(zf.Name, "xl/charts/chart") && strings.HasSuffix(zf.Name, ".xml") {
			parts = append(parts, zf)
		}
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].Name < parts[j].Name })

	var charts []models.Chart
	for _, zf := range parts {
		data, err := readZipFile(zf)
		if err != nil {
			return nil, err
		}
		chart := parseChartXML(data)
		chart.Part = zf.Name
		charts = append(charts, chart)
	}

	if needsNames(charts) {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		resolveSeriesNames(f, charts)
	}

	return charts, nil
}

func needsNames(charts []models.Chart) bool {
	for _, c := range charts {
		for _, s := range c.Series {
			if s.Name == "" && s.NameRange != "" {
				return true
			}
		}
	}
	return false
}

func resolveSeriesNames(f *excelize.File, charts []models.Chart) {
	for ci := range charts {
		for si := range charts[ci].Series {
			s := &charts[ci].Series[si]
			if s.Name != "" || s.NameRange == "" {
				continue
			}
			sheet, cell := splitReference(s.NameRange)
			if sheet == "" || cell == "" {
				continue
			}
			if v, err := f.GetCellValue(sheet, cell); err == nil {
				s.Name = v
			}
		}
	}
}

// splitReference splits 'Sheet'!$B$1 into its sheet name and cell.
func splitReference(ref string) (sheet, cell string) {
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", ""
	}
	sheet = strings.Trim(ref[:idx], "'")
	cell = strings.ReplaceAll(ref[idx+1:], "$", "")
	return sheet, cell
}

func readZipFile(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseChartXML parses a chart part.
func parseChartXML(data []byte) models.Chart {
	chart := models.Chart{ChartType: "unknown"}
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &chart)
		}
	}

	return chart
}

// parseChartElement parses the c:chart element.
func parseChartElement(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				chart.Title = parseTitle(decoder)
				depth--
			case "plotArea":
				parsePlotArea(decoder, chart)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseTitle joins the text runs of a title element.
func parseTitle(decoder *xml.Decoder) string {
	var parts []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					parts = append(parts, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(strings.Join(parts, ""))
}

// parsePlotArea parses the plot area: the first chart type element found
// and the value axis.
func parsePlotArea(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if ct, ok := ChartTypeMap[t.Name.Local]; ok && chart.ChartType == "unknown" {
				chart.ChartType = ct
				parseChartType(decoder, chart)
				depth--
			} else if t.Name.Local == "valAx" {
				chart.YAxisTitle, chart.YAxisRange = parseValueAxis(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartType parses the body of a chart type element such as c:barChart.
func parseChartType(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "barDir":
				chart.BarDirection = attrValue(t, "val")
			case "grouping":
				chart.Grouping = attrValue(t, "val")
			case "showVal":
				if isTrue(attrValue(t, "val")) {
					chart.ShowValues = true
				}
			case "ser":
				var s models.ChartSeries
				s, chart.ShowValues = parseSeries(decoder, chart.ShowValues)
				chart.Series = append(chart.Series, s)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseSeries parses a c:ser element. Data labels set on the series count
// toward showValues.
func parseSeries(decoder *xml.Decoder, showValues bool) (models.ChartSeries, bool) {
	var s models.ChartSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat":
				s.XRange = parseFormula(decoder)
				depth--
			case "val":
				s.YRange = parseFormula(decoder)
				depth--
			case "showVal":
				if isTrue(attrValue(t, "val")) {
					showValues = true
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return s, showValues
}

// parseSeriesName parses the cached name and its reference from c:tx.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseFormula returns the first c:f reference inside c:cat or c:val.
func parseFormula(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

// parseValueAxis parses c:valAx.
func parseValueAxis(decoder *xml.Decoder) (title string, axisRange []float64) {
	var min, max *float64
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = parseTitle(decoder)
				depth--
			case "min":
				if v, err := strconv.ParseFloat(attrValue(t, "val"), 64); err == nil {
					min = &v
				}
			case "max":
				if v, err := strconv.ParseFloat(attrValue(t, "val"), 64); err == nil {
					max = &v
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if min != nil && max != nil {
		axisRange = []float64{*min, *max}
	}
	return
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

func attrValue(se xml.StartElement, name string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

func isTrue(v string) bool {
	return v == "1" || v == "true"
}
