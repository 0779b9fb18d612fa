// Package aggregate turns a batch of play events into one summary row
// per (season year, week, game date, team, player) group.
package aggregate

import (
	"context"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/okian/gridiron/internal/adapters/rowstore"
	"github.com/okian/gridiron/internal/domain/action"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/internal/domain/roster"
	"github.com/okian/gridiron/internal/domain/stats"
	"github.com/okian/gridiron/pkg/logger"
	"github.com/okian/gridiron/pkg/metrics"
)

// Skip reasons attached to diagnostics and metrics.
const (
	ReasonMissingGame   = "missing_game"
	ReasonMissingSeason = "missing_season"
	ReasonSeasonFilter  = "season_filter"
	ReasonWeekFilter    = "week_filter"
)

// ReferenceData is the read side the engine joins events against. The
// refdata store satisfies it.
type ReferenceData interface {
	SeasonByID(id string) (model.Season, bool)
	TeamByID(id string) (model.Team, bool)
	PlayerByID(id string) (model.Player, bool)
	GameByID(id string) (model.Game, bool)
	Assignments(teamID, playerID, seasonID string) []model.RosterAssignment
}

// Diagnostic describes one event the run could not use.
type Diagnostic struct {
	EventID string
	Reason  string
}

// Result is the outcome of one aggregation run.
type Result struct {
	Rows        []model.SummaryRow
	Groups      int
	Events      int
	Skipped     int
	Diagnostics []Diagnostic
}

// group carries the events of one key plus the season ID they joined
// through, so the reduce phase can resolve rosters without re-joining.
type group struct {
	key      model.GroupKey
	seasonID string
	events   []model.PlayEvent
}

// Engine aggregates play events into summary rows.
type Engine struct {
	ref      ReferenceData
	resolver *roster.Resolver

	workerCount int
	seasonYear  int
	week        int

	logger logger.Logger
}

// New constructs an engine over the given reference data.
func New(ref ReferenceData, opts ...Option) *Engine {
	e := &Engine{
		ref:         ref,
		workerCount: runtime.NumCPU(),
		logger:      logger.Get().Named("aggregate"),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resolver = roster.NewResolver(ref, roster.WithLogger(e.logger))
	return e
}

// Run aggregates the batch. The same batch always yields the same rows
// in the same order. When the context is cancelled mid-run the rows
// reduced so far are returned along with the context error.
func (e *Engine) Run(ctx context.Context, events []model.PlayEvent) (Result, error) {
	if len(events) == 0 {
		return Result{}, ErrNoEvents
	}

	runStart := time.Now()
	defer func() {
		metrics.RecordRunDuration(float64(time.Since(runStart).Milliseconds()))
	}()

	e.logger.Info(ctx, "starting aggregation run",
		logger.Int("events", len(events)),
		logger.Int("workers", e.workerCount),
	)

	groups, diags := e.partition(events)

	metrics.UpdateGroupCount(len(groups))
	metrics.UpdateWorkerCount(e.workerCount)

	store := rowstore.NewTreapStore(rowstore.WithCapacityHint(len(groups)))
	runErr := e.reduce(ctx, groups, store)

	rows, err := store.InOrder(context.WithoutCancel(ctx))
	if err != nil {
		return Result{}, err
	}
	metrics.RecordRowsEmitted(len(rows))

	result := Result{
		Rows:        rows,
		Groups:      len(groups),
		Events:      len(events),
		Skipped:     len(diags),
		Diagnostics: diags,
	}

	e.logger.Info(ctx, "aggregation run finished",
		logger.Int("rows", len(result.Rows)),
		logger.Int("skipped", result.Skipped),
	)
	return result, runErr
}

// partition joins each event to its game and buckets it under its
// group key, in input order. Events that cannot join are skipped with a
// diagnostic rather than aborting the run.
func (e *Engine) partition(events []model.PlayEvent) ([]*group, []Diagnostic) {
	byKey := make(map[model.GroupKey]*group)
	var ordered []*group
	var diags []Diagnostic

	skip := func(ev model.PlayEvent, reason string) {
		metrics.RecordEventSkipped(reason)
		diags = append(diags, Diagnostic{EventID: ev.EventID, Reason: reason})
	}

	for _, ev := range events {
		game, ok := e.ref.GameByID(ev.GameID)
		if !ok {
			skip(ev, ReasonMissingGame)
			continue
		}
		season, ok := e.ref.SeasonByID(game.SeasonID)
		if !ok {
			skip(ev, ReasonMissingSeason)
			continue
		}
		if e.seasonYear > 0 && season.Year != e.seasonYear {
			skip(ev, ReasonSeasonFilter)
			continue
		}
		if e.week > 0 && game.Week != e.week {
			skip(ev, ReasonWeekFilter)
			continue
		}

		key := model.GroupKey{
			SeasonYear: season.Year,
			Week:       game.Week,
			GameDate:   game.Date.Format(model.DateLayout),
			TeamID:     ev.TeamID,
			PlayerID:   ev.PlayerID,
		}
		g, ok := byKey[key]
		if !ok {
			g = &group{key: key, seasonID: game.SeasonID}
			byKey[key] = g
			ordered = append(ordered, g)
		}
		g.events = append(g.events, ev)
	}
	return ordered, diags
}

// reduce fans groups out to workers. Groups are disjoint so workers
// share nothing but the row store.
func (e *Engine) reduce(ctx context.Context, groups []*group, store *rowstore.TreapStore) error {
	jobs := make(chan *group)
	var wg sync.WaitGroup

	workers := e.workerCount
	if workers > len(groups) {
		workers = len(groups)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range jobs {
				e.reduceGroup(ctx, g, store)
			}
		}()
	}

	var runErr error
feed:
	for _, g := range groups {
		select {
		case jobs <- g:
		case <-ctx.Done():
			runErr = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	return runErr
}

// reduceGroup folds one group's events into a summary row and stores it.
func (e *Engine) reduceGroup(ctx context.Context, g *group, store *rowstore.TreapStore) {
	start := time.Now()
	defer func() {
		metrics.RecordReduceLatency(float64(time.Since(start).Milliseconds()))
	}()

	var line model.StatLine
	for _, ev := range g.events {
		a := action.Parse(ev.ActionName)
		if !a.Known() {
			metrics.RecordUnrecognizedAction()
			e.logger.Debug(ctx, "unrecognized action",
				logger.String("eventID", ev.EventID),
				logger.String("action", ev.ActionName),
			)
		}
		stats.Accumulate(&line, a, ev)
	}

	row := model.SummaryRow{Key: g.key, Line: line}
	if team, ok := e.ref.TeamByID(g.key.TeamID); ok {
		row.TeamName = team.Name
	}
	if player, ok := e.ref.PlayerByID(g.key.PlayerID); ok {
		row.FirstName = player.FirstName
		row.LastName = player.LastName
		row.HeightIn = player.HeightIn
		row.WeightLb = player.WeightLb
	}
	if a, ok := e.resolver.Active(ctx, g.key.TeamID, g.key.PlayerID, g.seasonID); ok {
		if n, ok := roster.NormalizeJersey(a.Jersey); ok {
			row.Jersey = strconv.Itoa(n)
		}
		row.Position = roster.FormatPositions(a.Positions)
	}

	if err := store.Put(context.WithoutCancel(ctx), row); err != nil {
		metrics.RecordErrorByComponent("aggregate", "row_store_put")
		e.logger.Error(ctx, "failed to store summary row", logger.Error(err))
	}
}
