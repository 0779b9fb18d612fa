// Package report renders aggregation results as a table for terminals
// or as CSV for downstream spreadsheets. Column names are a stable
// contract; changing one breaks every consumer of the export.
package report

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/okian/gridiron/internal/domain/model"
)

// columns is the export column catalogue, in published order.
var columns = table.Row{
	"season", "week", "game_date", "team", "player_id",
	"first_name", "last_name", "jersey", "position", "height_in", "weight_lb",
	"pass_completions", "pass_attempts", "pass_tds", "pass_yards",
	"rush_attempts", "rush_yards", "rush_tds",
	"targets", "catches", "rec_yards", "rec_tds",
	"solo_tackles", "assisted_tackles", "total_tackles",
	"sacks", "tackles_for_loss", "deflections", "interceptions",
	"defensive_tds", "safeties",
	"fg_attempts", "fg_made", "pat_attempts", "pat_made",
	"punts", "punt_yards",
	"kick_returns", "kick_return_yards", "punt_returns", "punt_return_yards",
}

// Writer renders summary rows.
type Writer struct {
	rows []model.SummaryRow
}

// NewWriter creates a writer over the rows of one run.
func NewWriter(rows []model.SummaryRow) *Writer {
	return &Writer{rows: rows}
}

// RenderTable returns the rows as a bordered terminal table.
func (w *Writer) RenderTable() string {
	tbl := w.build()
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %s rows", humanize.Comma(int64(len(w.rows))))})
	return tbl.Render()
}

// RenderCSV returns the rows in CSV form with the same columns.
func (w *Writer) RenderCSV() string {
	return w.build().RenderCSV()
}

func (w *Writer) build() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(columns)
	for _, row := range w.rows {
		tbl.AppendRow(toTableRow(row))
	}
	return tbl
}

// fractional formats sack-style weights without trailing float noise:
// whole values print as integers, halves keep one decimal.
func fractional(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func toTableRow(r model.SummaryRow) table.Row {
	l := r.Line
	return table.Row{
		r.Key.SeasonYear, r.Key.Week, r.Key.GameDate, r.TeamName, r.Key.PlayerID,
		r.FirstName, r.LastName, r.Jersey, r.Position, r.HeightIn, r.WeightLb,
		l.PassingCompletions, l.PassingAttempts, l.PassingTDs, l.PassingYards,
		l.RushAttempts, l.RushingYards, l.RushingTDs,
		l.Targets, l.Catches, l.ReceivingYards, l.ReceivingTDs,
		l.SoloTackles, l.AssistedTackles, l.TotalTackles,
		fractional(l.Sacks), fractional(l.TacklesForLoss), l.Deflections, l.Interceptions,
		l.DefensiveTDs, l.Safeties,
		l.FGAttempts, l.FGMade, l.PATAttempts, l.PATMade,
		l.Punts, l.PuntYards,
		l.KickReturns, l.KickReturnYards, l.PuntReturns, l.PuntReturnYards,
	}
}
