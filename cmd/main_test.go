package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/gridiron/internal/adapters/sqlite"
	"github.com/okian/gridiron/internal/config"
	"github.com/okian/gridiron/internal/seed"
	"github.com/okian/gridiron/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestCommandWiring(t *testing.T) {
	convey.Convey("Given the CLI commands", t, func() {
		convey.Convey("Then the aggregate command exposes its flags", func() {
			cmd := newAggregateCommand()
			convey.So(cmd.Use, convey.ShouldEqual, "aggregate")
			for _, name := range []string{"snapshot", "season", "week", "workers", "format", "output"} {
				convey.So(cmd.Flags().Lookup(name), convey.ShouldNotBeNil)
			}
		})

		convey.Convey("And the seed command exposes its flags", func() {
			cmd := newSeedCommand()
			convey.So(cmd.Use, convey.ShouldEqual, "seed")
			for _, name := range []string{"snapshot", "seed", "season", "teams", "players", "weeks", "events"} {
				convey.So(cmd.Flags().Lookup(name), convey.ShouldNotBeNil)
			}
		})

		convey.Convey("And the version command prints without error", func() {
			cmd := versionCmd()
			convey.So(cmd.Use, convey.ShouldEqual, "version")
		})
	})
}

func TestSeedThenAggregate(t *testing.T) {
	convey.Convey("Given a seeded snapshot", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		snapshotPath := filepath.Join(dir, "season.db")

		store, err := sqlite.Open(snapshotPath)
		convey.So(err, convey.ShouldBeNil)
		_, err = seed.NewGenerator(
			seed.WithSeed(3),
			seed.WithSeasonYear(2023),
			seed.WithTeamCount(2),
			seed.WithPlayersPerTeam(5),
			seed.WithWeeks(2),
			seed.WithEventsPerGame(30),
		).Generate(ctx, store)
		convey.So(err, convey.ShouldBeNil)
		convey.So(store.Close(), convey.ShouldBeNil)

		convey.Convey("When the aggregate pipeline runs over it", func() {
			outputPath := filepath.Join(dir, "report.csv")
			cfg := config.New(ctx)
			cfg.SnapshotPath = snapshotPath
			cfg.OutputFormat = config.FormatCSV
			cfg.OutputPath = outputPath

			err := runAggregate(ctx, cfg)

			convey.Convey("Then a CSV report is written", func() {
				convey.So(err, convey.ShouldBeNil)

				data, readErr := os.ReadFile(outputPath)
				convey.So(readErr, convey.ShouldBeNil)

				lines := strings.Split(strings.TrimSpace(string(data)), "\n")
				convey.So(lines[0], convey.ShouldStartWith, "season,week,game_date")
				convey.So(len(lines), convey.ShouldBeGreaterThan, 1)
			})
		})

		convey.Convey("When the run is restricted to a week with no games", func() {
			cfg := config.New(ctx)
			cfg.SnapshotPath = snapshotPath
			cfg.Week = 99
			cfg.OutputFormat = config.FormatCSV
			cfg.OutputPath = filepath.Join(dir, "empty.csv")

			err := runAggregate(ctx, cfg)

			convey.Convey("Then the run still succeeds with a header-only report", func() {
				convey.So(err, convey.ShouldBeNil)

				data, readErr := os.ReadFile(cfg.OutputPath)
				convey.So(readErr, convey.ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(string(data)), "\n")
				convey.So(lines, convey.ShouldHaveLength, 1)
			})
		})
	})
}
