package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/okian/gridiron/internal/adapters/eventlog"
	"github.com/okian/gridiron/internal/adapters/sqlite"
	"github.com/okian/gridiron/internal/aggregate"
	"github.com/okian/gridiron/internal/config"
	"github.com/okian/gridiron/internal/domain/dedupe"
	"github.com/okian/gridiron/internal/report"
	"github.com/okian/gridiron/pkg/logger"
	"github.com/okian/gridiron/pkg/metrics"
)

const outputFilePermission = 0o644

func newAggregateCommand() *cobra.Command {
	var (
		snapshotPath string
		seasonYear   int
		week         int
		workers      int
		format       string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate a season snapshot into summary rows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			// Root context with cancel on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Load configuration (defaults -> optional file -> env),
			// then let explicit flags win.
			cfg, err := config.Load(ctx)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyFlag(cmd, "snapshot", &cfg.SnapshotPath, snapshotPath)
			applyIntFlag(cmd, "season", &cfg.SeasonYear, seasonYear)
			applyIntFlag(cmd, "week", &cfg.Week, week)
			applyIntFlag(cmd, "workers", &cfg.WorkerCount, workers)
			applyFlag(cmd, "format", &cfg.OutputFormat, format)
			applyFlag(cmd, "output", &cfg.OutputPath, outputPath)

			if err := logger.SetLevelString(cfg.LogLevel); err != nil {
				logger.Get().Warn(ctx, "invalid log_level; falling back to info",
					logger.String("log_level", cfg.LogLevel), logger.Error(err))
				_ = logger.SetLevelString("info")
			}

			return runAggregate(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "path to the SQLite season snapshot")
	cmd.Flags().IntVar(&seasonYear, "season", 0, "restrict the run to one season year")
	cmd.Flags().IntVar(&week, "week", 0, "restrict the run to one week")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of reduce workers")
	cmd.Flags().StringVar(&format, "format", "", "output format: table or csv")
	cmd.Flags().StringVar(&outputPath, "output", "", "write the report to a file instead of stdout")

	return cmd
}

func runAggregate(ctx context.Context, cfg *config.Config) error {
	start := time.Now()

	store, err := sqlite.Open(cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer store.Close()

	ref, events, err := store.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	// Replay through the event log so duplicate IDs in the snapshot
	// cannot double-count.
	log := eventlog.NewLog(eventlog.WithDeduper(
		dedupe.NewRingDeduper(dedupe.WithMaxSize(cfg.DedupeSize)),
	))
	for _, ev := range events {
		log.Append(ctx, ev)
	}

	engine := aggregate.New(ref,
		aggregate.WithWorkerCount(cfg.WorkerCount),
		aggregate.WithSeasonYear(cfg.SeasonYear),
		aggregate.WithWeek(cfg.Week),
	)
	result, err := engine.Run(ctx, log.All())
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	writer := report.NewWriter(result.Rows)
	var rendered string
	if cfg.OutputFormat == config.FormatCSV {
		rendered = writer.RenderCSV()
	} else {
		rendered = writer.RenderTable()
	}

	if cfg.OutputPath != "" {
		if err := os.WriteFile(cfg.OutputPath, []byte(rendered+"\n"), outputFilePermission); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	} else {
		fmt.Fprintln(os.Stdout, rendered)
	}

	printRunSummary(result, len(events), cfg.OutputPath, time.Since(start))
	logRunMetrics(ctx)
	return nil
}

// logRunMetrics dumps the final counter values at debug level so a run
// leaves an inspectable metrics trail without serving an endpoint.
func logRunMetrics(ctx context.Context) {
	families, err := metrics.GetRegistry().Gather()
	if err != nil {
		logger.Get().Warn(ctx, "failed to gather metrics", logger.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				logger.Get().Debug(ctx, "metric",
					logger.String("name", mf.GetName()),
					logger.Float64("value", m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				logger.Get().Debug(ctx, "metric",
					logger.String("name", mf.GetName()),
					logger.Float64("value", m.GetGauge().GetValue()))
			}
		}
	}
}

func printRunSummary(result aggregate.Result, loaded int, outputPath string, elapsed time.Duration) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	bold.Fprintln(os.Stderr, "Run summary")
	green.Fprintf(os.Stderr, "  events:  %s loaded, %s aggregated\n",
		humanize.Comma(int64(loaded)), humanize.Comma(int64(result.Events)))
	green.Fprintf(os.Stderr, "  rows:    %s across %s groups\n",
		humanize.Comma(int64(len(result.Rows))), humanize.Comma(int64(result.Groups)))
	if result.Skipped > 0 {
		yellow.Fprintf(os.Stderr, "  skipped: %s events\n", humanize.Comma(int64(result.Skipped)))
	}
	if outputPath != "" {
		fmt.Fprintf(os.Stderr, "  output:  %s\n", outputPath)
	}
	fmt.Fprintf(os.Stderr, "  took:    %s\n", elapsed.Round(time.Millisecond))
}

// applyFlag copies a flag value over the config field when the flag was
// set on the command line.
func applyFlag(cmd *cobra.Command, name string, dst *string, value string) {
	if cmd.Flags().Changed(name) {
		*dst = value
	}
}

func applyIntFlag(cmd *cobra.Command, name string, dst *int, value int) {
	if cmd.Flags().Changed(name) {
		*dst = value
	}
}
