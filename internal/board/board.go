// internal/board/board.go
package board

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/rovshanmuradov/dealboard/internal/deal"
)

// Source provides the raw deal list.
type Source interface {
	Fetch(ctx context.Context) ([]deal.Deal, error)
}

// Cycle identifies one refresh invocation.
type Cycle struct {
	Seq       uint64
	StartedAt time.Time
}

// Result is the outcome of running a Cycle.
type Result struct {
	Seq   uint64
	Deals []deal.Deal
	Err   error
}

// Board drives the fetch/sort cycle. Only the most recently started cycle
// may change displayed data; completions of older cycles are dropped.
type Board struct {
	source  Source
	logger  *zap.Logger
	latest  atomic.Uint64
	mounted sync.Once
}

// New creates a board backed by source.
func New(source Source, logger *zap.Logger) *Board {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{
		source: source,
		logger: logger.Named("board"),
	}
}

// Begin starts a new cycle: loading is raised and any previous error is
// cleared immediately, while the current deals stay in place.
func (b *Board) Begin(s State) (State, Cycle) {
	c := Cycle{
		Seq:       b.latest.Add(1),
		StartedAt: time.Now(),
	}
	b.logger.Debug("Refresh started", zap.Uint64("seq", c.Seq))
	return s.loading(), c
}

// Run fetches and sorts deals for c. It blocks until the source returns.
func (b *Board) Run(ctx context.Context, c Cycle) Result {
	deals, err := b.source.Fetch(ctx)
	if err != nil {
		b.logger.Warn("Refresh failed",
			zap.Uint64("seq", c.Seq),
			zap.Duration("took", time.Since(c.StartedAt)),
			zap.Error(err))
		return Result{Seq: c.Seq, Err: err}
	}

	sorted := deal.SortByProfit(deals)
	b.logger.Info("Refresh completed",
		zap.Uint64("seq", c.Seq),
		zap.Int("deals", len(sorted)),
		zap.Duration("took", time.Since(c.StartedAt)))
	return Result{Seq: c.Seq, Deals: sorted}
}

// Apply folds r into s. A result from a superseded cycle returns s as is.
func (b *Board) Apply(s State, r Result) State {
	if !b.IsLatest(r.Seq) {
		b.logger.Debug("Discarding stale refresh result",
			zap.Uint64("seq", r.Seq),
			zap.Uint64("latest", b.latest.Load()))
		return s
	}
	if r.Err != nil {
		return s.failed(r.Err.Error())
	}
	return loaded(r.Deals)
}

// Refresh runs a complete cycle synchronously and returns the new state.
func (b *Board) Refresh(ctx context.Context, s State) State {
	s, c := b.Begin(s)
	return b.Apply(s, b.Run(ctx, c))
}

// Mount is the activation hook. The first call begins a cycle and
// returns true; later calls return s unchanged and false.
func (b *Board) Mount(s State) (State, Cycle, bool) {
	var (
		c       Cycle
		started bool
	)
	b.mounted.Do(func() {
		s, c = b.Begin(s)
		started = true
	})
	return s, c, started
}

// IsLatest reports whether seq belongs to the most recently started cycle.
func (b *Board) IsLatest(seq uint64) bool {
	return seq == b.latest.Load()
}
