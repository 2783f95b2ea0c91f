package app

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/vk/cellgridgo/internal/eval"
)

// gridOutput is the JSON document rendered per grid.
type gridOutput struct {
	Grid string      `json:"grid"`
	Rows [][]float64 `json:"rows"`
}

// render writes one grid's results in the configured output format.
func (a *App) render(name string, result *eval.Result) error {
	if a.config.Output == "json" {
		enc := json.NewEncoder(a.outW)
		return enc.Encode(gridOutput{Grid: name, Rows: result.Rows()})
	}
	return a.renderTable(name, result)
}

// renderTable writes an aligned text table, one line per grid row. Numbers
// use the shortest exact decimal form, so integers print without a fraction.
func (a *App) renderTable(name string, result *eval.Result) error {
	if _, err := fmt.Fprintf(a.outW, "grid %s:\n", name); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, row := range result.Rows() {
		for i, v := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, formatNumber(v))
		}
		fmt.Fprint(tw, "\t\n")
	}
	return tw.Flush()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
