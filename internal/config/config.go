// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
	"runtime"
)

// Output format values accepted by OutputFormat.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// SnapshotPath points at the SQLite season snapshot.
	SnapshotPath string `koanf:"snapshot_path"`

	// WorkerCount sets the number of reduce workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the event deduplication set.
	// Zero or negative means unbounded.
	DedupeSize int `koanf:"dedupe_size"`

	// SeasonYear restricts a run to one season year. Zero means all.
	SeasonYear int `koanf:"season_year"`

	// Week restricts a run to one week. Zero means all.
	Week int `koanf:"week"`

	// OutputFormat selects the report rendering: table or csv.
	OutputFormat string `koanf:"output_format"`

	// OutputPath writes the report to a file instead of stdout when set.
	OutputPath string `koanf:"output_path"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use
// and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:     "info",
		SnapshotPath: "season.db",
		WorkerCount:  runtime.NumCPU(),
		DedupeSize:   0,
		OutputFormat: FormatTable,
	}
}
