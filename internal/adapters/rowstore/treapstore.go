// Package rowstore keeps the per-run summary rows ordered by their
// grouping key so traversal emits the report in one deterministic pass.
package rowstore

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/pkg/metrics"
)

// Treap-based, in-memory store for summary rows.
//
// Ordering: season year ASC, week ASC, game date ASC, team ID ASC,
// player ID ASC. In-order traversal therefore produces the report in
// its published order. Priorities are derived from a hash of the key,
// so the tree shape, and with it every traversal, is identical across
// runs over the same groups.

// treap node
type node struct {
	key   model.GroupKey
	prio  uint64
	left  *node
	right *node
	size  int
}

func nsize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func fix(n *node) {
	if n != nil {
		n.size = 1 + nsize(n.left) + nsize(n.right)
	}
}

// less orders keys in report order.
func less(a, b model.GroupKey) bool {
	if a.SeasonYear != b.SeasonYear {
		return a.SeasonYear < b.SeasonYear
	}
	if a.Week != b.Week {
		return a.Week < b.Week
	}
	if a.GameDate != b.GameDate {
		return a.GameDate < b.GameDate
	}
	if a.TeamID != b.TeamID {
		return a.TeamID < b.TeamID
	}
	return a.PlayerID < b.PlayerID
}

// keyPriority hashes the key so identical groups always yield the same
// treap shape.
func keyPriority(k model.GroupKey) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strconv.Itoa(k.SeasonYear)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.Itoa(k.Week)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(k.GameDate))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(k.TeamID))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(k.PlayerID))
	return h.Sum64()
}

func rotateRight(y *node) *node {
	x := y.left
	t2 := x.right
	x.right = y
	y.left = t2
	fix(y)
	fix(x)
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	t2 := y.left
	y.left = x
	x.right = t2
	fix(x)
	fix(y)
	return y
}

func insert(n *node, key model.GroupKey) *node {
	if n == nil {
		return &node{key: key, prio: keyPriority(key), size: 1}
	}
	if key == n.key {
		return n
	}
	if less(key, n.key) {
		n.left = insert(n.left, key)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	} else {
		n.right = insert(n.right, key)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}
	fix(n)
	return n
}

func collect(n *node, byKey map[model.GroupKey]model.SummaryRow, out *[]model.SummaryRow) {
	if n == nil {
		return
	}
	collect(n.left, byKey, out)
	if row, ok := byKey[n.key]; ok {
		*out = append(*out, row)
	}
	collect(n.right, byKey, out)
}

// TreapStore holds summary rows keyed and ordered by group.
type TreapStore struct {
	mu           sync.RWMutex
	root         *node
	byKey        map[model.GroupKey]model.SummaryRow
	capacityHint int
}

// NewTreapStore constructs a row store with configuration options.
func NewTreapStore(opts ...Option) *TreapStore {
	s := &TreapStore{
		capacityHint: 256,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.byKey = make(map[model.GroupKey]model.SummaryRow, s.capacityHint)
	return s
}

// Put upserts the row under its group key.
func (s *TreapStore) Put(ctx context.Context, row model.SummaryRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	defer func() {
		metrics.RecordRowStoreUpdateLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byKey[row.Key]; !ok {
		s.root = insert(s.root, row.Key)
	}
	s.byKey[row.Key] = row
	return nil
}

// Get returns the row for a key, or ErrNotFound.
func (s *TreapStore) Get(ctx context.Context, key model.GroupKey) (model.SummaryRow, error) {
	if err := ctx.Err(); err != nil {
		return model.SummaryRow{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.byKey[key]
	if !ok {
		return model.SummaryRow{}, ErrNotFound
	}
	return row, nil
}

// InOrder returns every row in report order.
func (s *TreapStore) InOrder(ctx context.Context) ([]model.SummaryRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.RecordRowStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SummaryRow, 0, len(s.byKey))
	collect(s.root, s.byKey, &out)
	return out, nil
}

// Count returns the number of distinct groups stored.
func (s *TreapStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byKey)
}
