// Package report renders analysis results for humans: a console summary and
// optional HTML charts.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/deskfang/pkg/analysis"
)

// WriteSummary renders a console summary of the analysis result.
func WriteSummary(w io.Writer, result *analysis.Analysis, noColor bool) {
	if noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	headline := color.New(color.FgGreen, color.Bold)
	headline.Fprintln(w, "Analysis complete")

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"Record", "Count"})
	tbl.AppendRow(table.Row{"Tickets", humanize.Comma(int64(result.Tickets.Total))})
	tbl.AppendRow(table.Row{"  with attachments", humanize.Comma(int64(result.Tickets.WithAttachments))})
	tbl.AppendRow(table.Row{"  with CCs", humanize.Comma(int64(result.Tickets.WithCCs))})
	tbl.AppendRow(table.Row{"  distinct custom fields", humanize.Comma(int64(len(result.Tickets.CustomFields)))})
	tbl.AppendRow(table.Row{"Users", humanize.Comma(int64(result.Users.Total))})
	tbl.AppendRow(table.Row{"Organizations", humanize.Comma(int64(result.Organizations.Total))})
	tbl.AppendFooter(table.Row{"Estimated migration time", formatMinutes(result.EstimatedTimeMinutes)})
	tbl.Render()
}

// formatMinutes renders the estimate with its unit.
func formatMinutes(minutes int) string {
	if minutes == 1 {
		return "1 minute"
	}

	return fmt.Sprintf("%s minutes", humanize.Comma(int64(minutes)))
}
