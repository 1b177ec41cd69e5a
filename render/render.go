// Package render presents a trend series: as ascii-art bars, csv, a table,
// json or a standalone html page.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bcampbell/wordtrend/trend"
	"github.com/fatih/color"
	"github.com/flytam/filenamify"
)

// Format is an output format.
type Format string

const (
	FormatBars  Format = "bars"
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatHTML  Format = "html"
)

// Formats lists all the supported formats.
var Formats = []Format{FormatBars, FormatCSV, FormatTable, FormatJSON, FormatHTML}

// ParseFormat checks a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Ext returns the file extension to use for the format.
func (f Format) Ext() string {
	switch f {
	case FormatBars, FormatTable:
		return ".txt"
	}
	return "." + string(f)
}

// OutputName makes up a filename for saving a chart of word.
// The keyword can be anything at all, so it's sanitised first.
func OutputName(word string, g trend.Granularity, f Format) (string, error) {
	name, err := filenamify.Filenamify(word, filenamify.Options{})
	if err != nil {
		return "", err
	}
	if name == "" {
		name = "_"
	}
	return fmt.Sprintf("%s-%s%s", name, g, f.Ext()), nil
}

// BarOptions controls ascii-art output.
type BarOptions struct {
	// Width is the total line width to fit the chart into.
	Width int
	// Colour highlights the bars.
	Colour bool
}

// Bars dumps out the series using a noddy ascii art chart.
func Bars(w io.Writer, series trend.Series, opts BarOptions) error {
	max := series.Max()
	numReserve := len(strconv.Itoa(max))
	labelW := 0
	for _, e := range series {
		if len(e.Period) > labelW {
			labelW = len(e.Period)
		}
	}

	barW := opts.Width - (labelW + 1 + numReserve + 1)
	if barW < 1 {
		barW = 1
	}

	barColour := color.New(color.FgGreen)
	if !opts.Colour {
		barColour.DisableColor()
	} else {
		barColour.EnableColor()
	}

	for _, e := range series {
		n := 0
		if max > 0 {
			n = (e.Value * 1024) / max
			n = (n * barW) / 1024
		}
		bar := barColour.Sprint(strings.Repeat("*", n))
		line := fmt.Sprintf("%-*s %*d %s", labelW, e.Period, numReserve, e.Value, bar)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// CSV outputs the series as a csv file, with a header row.
func CSV(w io.Writer, series trend.Series) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"period", "value"}); err != nil {
		return err
	}
	for _, e := range series {
		if err := out.Write([]string{e.Period, strconv.Itoa(e.Value)}); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

// JSON outputs the series wrapped in an object.
func JSON(w io.Writer, series trend.Series) error {
	out := struct {
		Series trend.Series `json:"series"`
	}{
		series,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
