package aggregate

import "github.com/okian/gridiron/pkg/logger"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithWorkerCount sets the number of reduce workers.
func WithWorkerCount(count int) Option {
	return func(e *Engine) {
		if count > 0 {
			e.workerCount = count
		}
	}
}

// WithSeasonYear restricts the run to one season year. Zero means all.
func WithSeasonYear(year int) Option {
	return func(e *Engine) {
		if year > 0 {
			e.seasonYear = year
		}
	}
}

// WithWeek restricts the run to one week. Zero means all.
func WithWeek(week int) Option {
	return func(e *Engine) {
		if week > 0 {
			e.week = week
		}
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
