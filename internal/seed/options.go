package seed

import "github.com/okian/gridiron/pkg/logger"

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed sets the random source seed for deterministic schedules.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithSeasonYear sets the season year to generate.
func WithSeasonYear(year int) Option {
	return func(g *Generator) {
		if year > 0 {
			g.seasonYear = year
		}
	}
}

// WithTeamCount sets the number of teams. Odd counts round down so every
// team has an opponent each week.
func WithTeamCount(count int) Option {
	return func(g *Generator) {
		if count >= 2 {
			g.teamCount = count
		}
	}
}

// WithPlayersPerTeam sets the roster size per team.
func WithPlayersPerTeam(count int) Option {
	return func(g *Generator) {
		if count > 0 {
			g.playersPerTeam = count
		}
	}
}

// WithWeeks sets the number of scheduled weeks.
func WithWeeks(weeks int) Option {
	return func(g *Generator) {
		if weeks > 0 {
			g.weeks = weeks
		}
	}
}

// WithEventsPerGame sets the number of play events per game.
func WithEventsPerGame(count int) Option {
	return func(g *Generator) {
		if count > 0 {
			g.eventsPerGame = count
		}
	}
}

// WithLogger sets a custom logger for the generator.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}
