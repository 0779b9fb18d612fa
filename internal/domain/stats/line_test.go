package stats_test

import (
	"testing"

	action "github.com/okian/gridiron/internal/domain/action"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

// add parses the event's action and accumulates it, the way the engine does.
func add(l *model.StatLine, ev model.PlayEvent) {
	stats.Accumulate(l, action.Parse(ev.ActionName), ev)
}

func TestYards(t *testing.T) {
	Convey("Given raw yards text", t, func() {
		Convey("Then integers parse as-is", func() {
			So(stats.Yards("7"), ShouldEqual, 7)
			So(stats.Yards("-4"), ShouldEqual, -4)
			So(stats.Yards(" 12 "), ShouldEqual, 12)
		})

		Convey("And spreadsheet-style floats are truncated", func() {
			So(stats.Yards("7.0"), ShouldEqual, 7)
		})

		Convey("And blank or malformed text contributes zero", func() {
			So(stats.Yards(""), ShouldEqual, 0)
			So(stats.Yards("   "), ShouldEqual, 0)
			So(stats.Yards("n/a"), ShouldEqual, 0)
		})
	})
}

func TestPassingMetrics(t *testing.T) {
	Convey("Given a passing sequence", t, func() {
		var l model.StatLine
		add(&l, model.PlayEvent{ActionName: "Pass Complete", Yards: "15"})
		add(&l, model.PlayEvent{ActionName: "Pass Complete", Yards: "8", Touchdown: true})
		add(&l, model.PlayEvent{ActionName: "Pass Incomplete"})

		Convey("Then completions, attempts, yards and TDs accumulate", func() {
			So(l.PassingCompletions, ShouldEqual, 2)
			So(l.PassingAttempts, ShouldEqual, 3)
			So(l.PassingYards, ShouldEqual, 23)
			So(l.PassingTDs, ShouldEqual, 1)
		})

		Convey("When a completion carries blank yards", func() {
			add(&l, model.PlayEvent{ActionName: "Pass Complete", Yards: ""})

			Convey("Then it still counts but adds no yardage", func() {
				So(l.PassingCompletions, ShouldEqual, 3)
				So(l.PassingAttempts, ShouldEqual, 4)
				So(l.PassingYards, ShouldEqual, 23)
			})
		})
	})
}

func TestRushingAndReceiving(t *testing.T) {
	Convey("Given rushes and catches", t, func() {
		var l model.StatLine
		add(&l, model.PlayEvent{ActionName: "Rush", Yards: "6"})
		add(&l, model.PlayEvent{ActionName: "Rush", Yards: "-2"})
		add(&l, model.PlayEvent{ActionName: "Rush", Yards: "11", Touchdown: true})
		add(&l, model.PlayEvent{ActionName: "Pass Target"})
		add(&l, model.PlayEvent{ActionName: "Catch", Yards: "22", Touchdown: true})

		Convey("Then rushing metrics accumulate with signed yards", func() {
			So(l.RushAttempts, ShouldEqual, 3)
			So(l.RushingYards, ShouldEqual, 15)
			So(l.RushingTDs, ShouldEqual, 1)
		})

		Convey("Then targets count both targets and catches", func() {
			So(l.Targets, ShouldEqual, 2)
			So(l.Catches, ShouldEqual, 1)
			So(l.ReceivingYards, ShouldEqual, 22)
			So(l.ReceivingTDs, ShouldEqual, 1)
		})
	})
}

func TestTackleMetrics(t *testing.T) {
	Convey("Given defensive events", t, func() {
		Convey("When a player records a sack and a tackle", func() {
			var l model.StatLine
			add(&l, model.PlayEvent{ActionName: "Sack", SackWeight: 1.0})
			add(&l, model.PlayEvent{ActionName: "Tackle"})

			Convey("Then the documented scenario holds", func() {
				So(l.SoloTackles, ShouldEqual, 2)
				So(l.TotalTackles, ShouldEqual, 2)
				So(l.Sacks, ShouldEqual, 1.0)
				So(l.TacklesForLoss, ShouldEqual, 1.0)
			})
		})

		Convey("When sacks are shared", func() {
			var l model.StatLine
			add(&l, model.PlayEvent{ActionName: "Sack Assist", SackWeight: 0.5})
			add(&l, model.PlayEvent{ActionName: "Sack Assist", SackWeight: 0.5})

			Convey("Then fractional weights sum to a whole sack", func() {
				So(l.Sacks, ShouldEqual, 1.0)
				So(l.AssistedTackles, ShouldEqual, 2)
				So(l.SoloTackles, ShouldEqual, 0)
				So(l.TotalTackles, ShouldEqual, 2)
			})
		})

		Convey("When tackles for loss combine counts and sack weight", func() {
			var l model.StatLine
			add(&l, model.PlayEvent{ActionName: "Tackle For Loss"})
			add(&l, model.PlayEvent{ActionName: "Sack", SackWeight: 1.0})

			Convey("Then TFL is count plus weight", func() {
				So(l.TacklesForLoss, ShouldEqual, 2.0)
			})
		})

		Convey("When every tackle variant appears once", func() {
			var l model.StatLine
			add(&l, model.PlayEvent{ActionName: "Tackle"})
			add(&l, model.PlayEvent{ActionName: "Tackle Assist"})
			add(&l, model.PlayEvent{ActionName: "Sack", SackWeight: 1.0})
			add(&l, model.PlayEvent{ActionName: "Sack Assist", SackWeight: 0.5})

			Convey("Then total tackles equals the union count", func() {
				So(l.TotalTackles, ShouldEqual, 4)
				So(l.SoloTackles+l.AssistedTackles, ShouldEqual, l.TotalTackles)
			})
		})
	})
}

func TestFlagMetrics(t *testing.T) {
	Convey("Given flag-driven metrics", t, func() {
		Convey("When a defensive touchdown occurs", func() {
			var l model.StatLine
			add(&l, model.PlayEvent{ActionName: "Interception", Touchdown: true, Category: "Defense"})

			Convey("Then it counts as both interception and defensive TD", func() {
				So(l.Interceptions, ShouldEqual, 1)
				So(l.DefensiveTDs, ShouldEqual, 1)
			})
		})

		Convey("When a touchdown is not defensive", func() {
			var l model.StatLine
			add(&l, model.PlayEvent{ActionName: "Rush", Touchdown: true, Category: "Offense"})

			Convey("Then no defensive TD is recorded", func() {
				So(l.DefensiveTDs, ShouldEqual, 0)
				So(l.RushingTDs, ShouldEqual, 1)
			})
		})

		Convey("When the safety flag is set", func() {
			var l model.StatLine
			add(&l, model.PlayEvent{ActionName: "Tackle", Safety: true})

			So(l.Safeties, ShouldEqual, 1)
		})
	})
}

func TestKickingMetrics(t *testing.T) {
	Convey("Given kicking and return events", t, func() {
		var l model.StatLine
		add(&l, model.PlayEvent{ActionName: "Field Goal Attempt"})
		add(&l, model.PlayEvent{ActionName: "Field Goal Made"})
		add(&l, model.PlayEvent{ActionName: "PAT Attempt"})
		add(&l, model.PlayEvent{ActionName: "PAT Made"})
		add(&l, model.PlayEvent{ActionName: "Punt", Yards: "41"})
		add(&l, model.PlayEvent{ActionName: "Kick Return", Yards: "28"})
		add(&l, model.PlayEvent{ActionName: "Punt Return", Yards: "9"})

		Convey("Then made kicks imply attempts", func() {
			So(l.FGAttempts, ShouldEqual, 2)
			So(l.FGMade, ShouldEqual, 1)
			So(l.PATAttempts, ShouldEqual, 2)
			So(l.PATMade, ShouldEqual, 1)
		})

		Convey("Then punts and returns carry yardage", func() {
			So(l.Punts, ShouldEqual, 1)
			So(l.PuntYards, ShouldEqual, 41)
			So(l.KickReturns, ShouldEqual, 1)
			So(l.KickReturnYards, ShouldEqual, 28)
			So(l.PuntReturns, ShouldEqual, 1)
			So(l.PuntReturnYards, ShouldEqual, 9)
		})
	})
}

func TestUnrecognizedActions(t *testing.T) {
	Convey("Given an event outside the taxonomy", t, func() {
		var l model.StatLine
		add(&l, model.PlayEvent{ActionName: "Fumble Recovery", Yards: "12", Touchdown: true, Category: "Defense"})

		Convey("Then it contributes to no metric", func() {
			So(l, ShouldResemble, model.StatLine{})
		})
	})
}
