package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/okian/gridiron/internal/adapters/sqlite"
	"github.com/okian/gridiron/internal/seed"
	"github.com/okian/gridiron/pkg/logger"
)

func newSeedCommand() *cobra.Command {
	var (
		snapshotPath   string
		seedValue      int64
		seasonYear     int
		teams          int
		playersPerTeam int
		weeks          int
		eventsPerGame  int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic season snapshot",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := logger.Init(); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, err := sqlite.Open(snapshotPath)
			if err != nil {
				return fmt.Errorf("open snapshot: %w", err)
			}
			defer store.Close()

			g := seed.NewGenerator(
				seed.WithSeed(seedValue),
				seed.WithSeasonYear(seasonYear),
				seed.WithTeamCount(teams),
				seed.WithPlayersPerTeam(playersPerTeam),
				seed.WithWeeks(weeks),
				seed.WithEventsPerGame(eventsPerGame),
			)
			summary, err := g.Generate(ctx, store)
			if err != nil {
				return fmt.Errorf("seed season: %w", err)
			}

			green := color.New(color.FgGreen)
			color.New(color.Bold).Fprintf(os.Stderr, "Seeded %d season into %s\n", summary.SeasonYear, snapshotPath)
			green.Fprintf(os.Stderr, "  teams:   %d, players: %d, games: %d\n",
				summary.Teams, summary.Players, summary.Games)
			green.Fprintf(os.Stderr, "  events:  %s\n", humanize.Comma(int64(summary.Events)))
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "season.db", "path to the SQLite season snapshot")
	cmd.Flags().Int64Var(&seedValue, "seed", 1, "random source seed")
	cmd.Flags().IntVar(&seasonYear, "season", 0, "season year (defaults to the current year)")
	cmd.Flags().IntVar(&teams, "teams", 4, "number of teams")
	cmd.Flags().IntVar(&playersPerTeam, "players", 12, "players per team")
	cmd.Flags().IntVar(&weeks, "weeks", 6, "number of scheduled weeks")
	cmd.Flags().IntVar(&eventsPerGame, "events", 120, "play events per game")

	return cmd
}
