package render

import (
	"io"
	"strconv"

	"github.com/bcampbell/wordtrend/trend"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Table outputs the series as a two-column text table.
func Table(w io.Writer, series trend.Series) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
	)

	rows := make([][]string, 0, len(series))
	for _, e := range series {
		rows = append(rows, []string{e.Period, strconv.Itoa(e.Value)})
	}

	table.Header([]string{"period", "value"})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
