package render

import (
	"html/template"
	"io"

	"github.com/bcampbell/wordtrend/trend"
)

var baseTmpl string = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{ .Title }}</title>
  </head>
<body>
<header class="site-header">
  <h1>{{ .Title }}</h1>
</header>
{{ template "body" . }}
</body>
</html>
`

var chartTmpl string = `
{{define "body"}}
{{- if .Error }}
<p class="error">{{ .Error }}</p>
{{- else }}
<p class="info">{{ .Word }} by {{ .Granularity }}: {{ .Total }} mentions</p>
<div id="display">
{{- range .Bars }}
  <p>{{ .Period }}-{{ .Value }}<div style="height: 10px; background-color: black; width: {{ .Width }}px"></div></p>
{{- end }}
</div>
{{- end }}
{{end}}
`

var chartTemplate = template.Must(template.Must(template.New("chart").Parse(chartTmpl)).Parse(baseTmpl))

// Page holds everything needed to render a chart page.
// If Err is set, it is displayed in place of the chart.
type Page struct {
	Word        string
	Granularity trend.Granularity
	Series      trend.Series
	Err         error
	// MaxBarWidth limits bar length in pixels (default 800)
	MaxBarWidth int
}

// pixels per mention, unless it'd blow MaxBarWidth
const barUnit = 100

type htmlBar struct {
	Period string
	Value  int
	Width  int
}

// HTML writes out a standalone page showing the series as horizontal bars.
func HTML(w io.Writer, page *Page) error {
	maxW := page.MaxBarWidth
	if maxW <= 0 {
		maxW = 800
	}
	max := page.Series.Max()

	bars := make([]htmlBar, 0, len(page.Series))
	for _, e := range page.Series {
		width := e.Value * barUnit
		if max*barUnit > maxW {
			width = (e.Value * maxW) / max
		}
		bars = append(bars, htmlBar{Period: e.Period, Value: e.Value, Width: width})
	}

	params := struct {
		Title       string
		Word        string
		Granularity trend.Granularity
		Total       int
		Bars        []htmlBar
		Error       string
	}{
		Title:       "wordtrend",
		Word:        page.Word,
		Granularity: page.Granularity,
		Total:       page.Series.Total(),
		Bars:        bars,
	}
	if page.Word != "" {
		params.Title = "wordtrend: " + page.Word
	}
	if page.Err != nil {
		params.Error = page.Err.Error()
	}

	return chartTemplate.ExecuteTemplate(w, "chart", params)
}
