package report_test

import (
	"strings"
	"testing"

	"github.com/okian/gridiron/internal/domain/model"
	report "github.com/okian/gridiron/internal/report"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleRows() []model.SummaryRow {
	return []model.SummaryRow{
		{
			Key: model.GroupKey{
				SeasonYear: 2023, Week: 1, GameDate: "2023-09-07",
				TeamID: "team-1", PlayerID: "player-1",
			},
			TeamName:  "Ravens",
			FirstName: "Jae",
			LastName:  "Okafor",
			HeightIn:  74,
			WeightLb:  215,
			Jersey:    "12",
			Position:  "WR, KR",
			Line: model.StatLine{
				Catches:        3,
				Targets:        5,
				ReceivingYards: 48,
				Sacks:          0.5,
				TacklesForLoss: 1.5,
			},
		},
		{
			Key: model.GroupKey{
				SeasonYear: 2023, Week: 1, GameDate: "2023-09-07",
				TeamID: "team-2", PlayerID: "player-2",
			},
			TeamName: "Raptors",
			LastName: "Reyes",
			Line:     model.StatLine{SoloTackles: 4, TotalTackles: 6, Sacks: 2},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	Convey("Given a writer over summary rows", t, func() {
		w := report.NewWriter(sampleRows())

		Convey("When rendered as CSV", func() {
			out := w.RenderCSV()
			lines := strings.Split(strings.TrimSpace(out), "\n")

			Convey("Then there is a header plus one line per row", func() {
				So(lines, ShouldHaveLength, 3)
			})

			Convey("And the header starts with the identity columns", func() {
				So(lines[0], ShouldStartWith, "season,week,game_date,team,player_id")
				So(lines[0], ShouldContainSubstring, "sacks,tackles_for_loss")
				So(lines[0], ShouldEndWith, "punt_returns,punt_return_yards")
			})

			Convey("And fractional weights print without float noise", func() {
				So(lines[1], ShouldContainSubstring, "0.5")
				So(lines[1], ShouldContainSubstring, "1.5")
				So(lines[2], ShouldContainSubstring, ",2,")
			})

			Convey("And row values land in the right columns", func() {
				So(lines[1], ShouldContainSubstring, "2023,1,2023-09-07,Ravens,player-1,Jae,Okafor,12,")
				So(lines[2], ShouldContainSubstring, "Raptors")
			})
		})
	})
}

func TestRenderTable(t *testing.T) {
	Convey("Given a writer over summary rows", t, func() {
		w := report.NewWriter(sampleRows())

		Convey("When rendered as a table", func() {
			out := w.RenderTable()

			Convey("Then it carries headers, rows and a footer count", func() {
				So(out, ShouldContainSubstring, "SEASON")
				So(out, ShouldContainSubstring, "Okafor")
				So(out, ShouldContainSubstring, "Raptors")
				So(out, ShouldContainSubstring, "Total: 2 rows")
			})
		})
	})
}

func TestRenderEmpty(t *testing.T) {
	Convey("Given a writer with no rows", t, func() {
		w := report.NewWriter(nil)

		Convey("When rendered", func() {
			Convey("Then the CSV is just the header", func() {
				lines := strings.Split(strings.TrimSpace(w.RenderCSV()), "\n")
				So(lines, ShouldHaveLength, 1)
			})

			Convey("And the table footer reports zero rows", func() {
				So(w.RenderTable(), ShouldContainSubstring, "Total: 0 rows")
			})
		})
	})
}
