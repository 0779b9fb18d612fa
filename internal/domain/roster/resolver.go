// Package roster resolves the currently valid roster assignment for a
// (team, player, season) triple and normalizes its display fields.
package roster

import (
	"context"
	"sort"

	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/pkg/logger"
	"github.com/okian/gridiron/pkg/metrics"
)

// Source supplies the raw assignments for one key. Implementations return
// every assignment on record, active or not.
type Source interface {
	Assignments(teamID, playerID, seasonID string) []model.RosterAssignment
}

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithLogger sets a custom logger for the resolver.
func WithLogger(l logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// Resolver answers "which assignment is currently active" for a key.
type Resolver struct {
	src    Source
	logger logger.Logger
}

// NewResolver creates a resolver over the given source.
func NewResolver(src Source, opts ...Option) *Resolver {
	r := &Resolver{
		src:    src,
		logger: logger.Get().Named("roster"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Active returns the assignment whose validity interval is open-ended
// (the sentinel end date), or false when no such record exists.
//
// Exactly one active record per key is an upstream invariant this
// resolver depends on but does not enforce. When it is violated the
// extras are surfaced as a diagnostic and the assignment with the lowest
// ID wins, so repeated runs resolve identically.
func (r *Resolver) Active(ctx context.Context, teamID, playerID, seasonID string) (model.RosterAssignment, bool) {
	var active []model.RosterAssignment
	for _, a := range r.src.Assignments(teamID, playerID, seasonID) {
		if a.Active() {
			active = append(active, a)
		}
	}

	switch len(active) {
	case 0:
		return model.RosterAssignment{}, false
	case 1:
		return active[0], true
	}

	metrics.RecordRosterAmbiguity()
	r.logger.Warn(ctx, "multiple active roster assignments; picking lowest id",
		logger.String("teamID", teamID),
		logger.String("playerID", playerID),
		logger.String("seasonID", seasonID),
		logger.Int("count", len(active)),
	)
	sort.Slice(active, func(i, j int) bool { return active[i].ID < active[j].ID })
	return active[0], true
}
