// Package eventlog is the append-only in-memory log of play events a
// run aggregates over. Appends are deduplicated by event ID so loading
// the same snapshot twice cannot double-count.
package eventlog

import (
	"context"
	"sync"

	"github.com/okian/gridiron/internal/domain/dedupe"
	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/pkg/metrics"
)

// Option applies a configuration option to the Log.
type Option func(*Log)

// WithDeduper sets a custom deduper for the log.
func WithDeduper(d dedupe.Deduper) Option {
	return func(l *Log) {
		if d != nil {
			l.deduper = d
		}
	}
}

// Log accumulates play events in arrival order.
type Log struct {
	mu      sync.RWMutex
	events  []model.PlayEvent
	deduper dedupe.Deduper
}

// NewLog creates an event log. Unless overridden the log keeps an
// unbounded seen-set, since a batch run must reject duplicates across
// the whole input.
func NewLog(opts ...Option) *Log {
	l := &Log{
		deduper: dedupe.NewRingDeduper(dedupe.WithMaxSize(0)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append records the event and returns true, or returns false when an
// event with the same ID was appended before.
func (l *Log) Append(ctx context.Context, ev model.PlayEvent) bool {
	if l.deduper.SeenAndRecord(ctx, ev.EventID) {
		metrics.RecordDuplicateEvent()
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
	metrics.RecordEventIngested()
	return true
}

// All returns a copy of the log in arrival order.
func (l *Log) All() []model.PlayEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.PlayEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len reports the number of accepted events.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
