package refdata_test

import (
	"testing"
	"time"

	refdata "github.com/okian/gridiron/internal/adapters/refdata"
	"github.com/okian/gridiron/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStoreLookups(t *testing.T) {
	Convey("Given a reference data store", t, func() {
		s := refdata.NewStore()

		Convey("When entities are loaded", func() {
			s.AddSeason(model.Season{ID: "season-1", Year: 2023})
			s.AddTeam(model.Team{ID: "team-1", Name: "Ravens"})
			s.AddPlayer(model.Player{ID: "player-1", FirstName: "Jae", LastName: "Okafor"})
			s.AddGame(model.Game{ID: "game-1", SeasonID: "season-1", Week: 4,
				Date: time.Date(2023, time.September, 28, 0, 0, 0, 0, time.UTC)})

			Convey("Then lookups by ID succeed", func() {
				season, ok := s.SeasonByID("season-1")
				So(ok, ShouldBeTrue)
				So(season.Year, ShouldEqual, 2023)

				team, ok := s.TeamByID("team-1")
				So(ok, ShouldBeTrue)
				So(team.Name, ShouldEqual, "Ravens")

				player, ok := s.PlayerByID("player-1")
				So(ok, ShouldBeTrue)
				So(player.LastName, ShouldEqual, "Okafor")

				game, ok := s.GameByID("game-1")
				So(ok, ShouldBeTrue)
				So(game.Week, ShouldEqual, 4)
			})

			Convey("And unknown IDs report absence", func() {
				_, ok := s.SeasonByID("season-404")
				So(ok, ShouldBeFalse)
				_, ok = s.TeamByID("team-404")
				So(ok, ShouldBeFalse)
				_, ok = s.PlayerByID("player-404")
				So(ok, ShouldBeFalse)
				_, ok = s.GameByID("game-404")
				So(ok, ShouldBeFalse)
			})

			Convey("And counts reflect the load", func() {
				seasons, teams, players, games, assignments := s.Counts()
				So(seasons, ShouldEqual, 1)
				So(teams, ShouldEqual, 1)
				So(players, ShouldEqual, 1)
				So(games, ShouldEqual, 1)
				So(assignments, ShouldEqual, 0)
			})
		})

		Convey("When a record is re-added with the same ID", func() {
			s.AddTeam(model.Team{ID: "team-1", Name: "Ravens"})
			s.AddTeam(model.Team{ID: "team-1", Name: "Raptors"})

			Convey("Then the later record wins", func() {
				team, ok := s.TeamByID("team-1")
				So(ok, ShouldBeTrue)
				So(team.Name, ShouldEqual, "Raptors")
			})
		})
	})
}

func TestStoreAssignments(t *testing.T) {
	Convey("Given a store with roster assignments", t, func() {
		s := refdata.NewStore()
		a1 := model.RosterAssignment{
			ID: "ra-1", TeamID: "team-1", PlayerID: "player-1", SeasonID: "season-1",
			End: time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC),
		}
		a2 := model.RosterAssignment{
			ID: "ra-2", TeamID: "team-1", PlayerID: "player-1", SeasonID: "season-1",
			End: model.RosterEndSentinel,
		}
		s.AddAssignment(a1)
		s.AddAssignment(a2)

		Convey("When querying the assignment key", func() {
			got := s.Assignments("team-1", "player-1", "season-1")

			Convey("Then every record for the key is returned", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].ID, ShouldEqual, "ra-1")
				So(got[1].ID, ShouldEqual, "ra-2")
			})

			Convey("And mutating the result leaves the store untouched", func() {
				got[0].ID = "mutated"
				again := s.Assignments("team-1", "player-1", "season-1")
				So(again[0].ID, ShouldEqual, "ra-1")
			})
		})

		Convey("When querying a key with no records", func() {
			So(s.Assignments("team-2", "player-1", "season-1"), ShouldBeNil)
		})
	})
}
