package action_test

import (
	"testing"

	action "github.com/okian/gridiron/internal/domain/action"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given the action taxonomy", t, func() {
		Convey("When parsing canonical names", func() {
			So(action.Parse("Pass Complete"), ShouldEqual, action.PassComplete)
			So(action.Parse("Pass Incomplete"), ShouldEqual, action.PassIncomplete)
			So(action.Parse("Rush"), ShouldEqual, action.Rush)
			So(action.Parse("Pass Target"), ShouldEqual, action.PassTarget)
			So(action.Parse("Catch"), ShouldEqual, action.Catch)
			So(action.Parse("Tackle"), ShouldEqual, action.Tackle)
			So(action.Parse("Tackle Assist"), ShouldEqual, action.TackleAssist)
			So(action.Parse("Sack"), ShouldEqual, action.Sack)
			So(action.Parse("Sack Assist"), ShouldEqual, action.SackAssist)
			So(action.Parse("Tackle For Loss"), ShouldEqual, action.TackleForLoss)
			So(action.Parse("Tackle For Loss Assist"), ShouldEqual, action.TackleForLossAssist)
			So(action.Parse("Deflection"), ShouldEqual, action.Deflection)
			So(action.Parse("Interception"), ShouldEqual, action.Interception)
			So(action.Parse("Field Goal Attempt"), ShouldEqual, action.FieldGoalAttempt)
			So(action.Parse("Field Goal Made"), ShouldEqual, action.FieldGoalMade)
			So(action.Parse("PAT Attempt"), ShouldEqual, action.PATAttempt)
			So(action.Parse("PAT Made"), ShouldEqual, action.PATMade)
			So(action.Parse("Punt"), ShouldEqual, action.Punt)
			So(action.Parse("Kick Return"), ShouldEqual, action.KickReturn)
			So(action.Parse("Punt Return"), ShouldEqual, action.PuntReturn)
		})

		Convey("When parsing with noise", func() {
			Convey("Then matching is case-insensitive", func() {
				So(action.Parse("pass complete"), ShouldEqual, action.PassComplete)
				So(action.Parse("SACK ASSIST"), ShouldEqual, action.SackAssist)
			})

			Convey("And surrounding whitespace is trimmed", func() {
				So(action.Parse("  Tackle  "), ShouldEqual, action.Tackle)
				So(action.Parse("\tPunt Return\n"), ShouldEqual, action.PuntReturn)
			})
		})

		Convey("When parsing unknown names", func() {
			Convey("Then Parse is total and returns Unrecognized", func() {
				So(action.Parse("Fumble Recovery"), ShouldEqual, action.Unrecognized)
				So(action.Parse(""), ShouldEqual, action.Unrecognized)
				So(action.Parse("   "), ShouldEqual, action.Unrecognized)
			})
		})
	})
}

func TestString(t *testing.T) {
	Convey("Given parsed actions", t, func() {
		Convey("Then String round-trips the canonical spelling", func() {
			So(action.Sack.String(), ShouldEqual, "Sack")
			So(action.TackleForLossAssist.String(), ShouldEqual, "Tackle For Loss Assist")
			So(action.Parse(action.FieldGoalMade.String()), ShouldEqual, action.FieldGoalMade)
		})

		Convey("And Unrecognized stringifies explicitly", func() {
			So(action.Unrecognized.String(), ShouldEqual, "Unrecognized")
			So(action.Unrecognized.Known(), ShouldBeFalse)
			So(action.Rush.Known(), ShouldBeTrue)
		})
	})
}
