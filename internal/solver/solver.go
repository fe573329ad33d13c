package solver

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibmemo/internal/errors"
	"github.com/agbru/fibmemo/internal/logging"
)

// DefaultWorkDelay is the artificial per-miss delay simulating real work.
// It runs outside the cache lock so concurrent solves overlap.
const DefaultWorkDelay = time.Millisecond

// Solver computes Fibonacci numbers by concurrent recursive decomposition
// over a shared memoization cache. It is safe for concurrent use; all
// invocations of one Solver share the same cache.
//
// The concurrency model is deliberately unthrottled: every cache miss spawns
// two goroutines for its sub-problems, with no upper bound on the total
// count. Memoization collapses the fan-out once the cache warms up, but a
// cold cache on a large index creates a burst of goroutines. A bounded worker
// pool would fix that for real workloads; this solver preserves the
// unbounded behavior as a documented limitation.
type Solver struct {
	cache  *Cache
	delay  time.Duration
	logger logging.Logger
}

// Option configures a Solver during construction.
type Option func(*Solver)

// WithDelay sets the simulated work delay applied on each cache miss.
// A non-positive delay disables the simulated work entirely.
func WithDelay(d time.Duration) Option {
	return func(s *Solver) { s.delay = d }
}

// WithLogger sets the logger used for per-solve debug records.
func WithLogger(logger logging.Logger) Option {
	return func(s *Solver) { s.logger = logger }
}

// New creates a Solver over the given shared cache.
//
// Parameters:
//   - cache: The shared memoization cache. Must not be nil.
//   - opts: Optional configuration (delay, logger).
//
// Returns:
//   - *Solver: The configured solver.
func New(cache *Cache, opts ...Option) *Solver {
	s := &Solver{
		cache:  cache,
		delay:  DefaultWorkDelay,
		logger: logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cache returns the shared memoization cache backing this solver.
func (s *Solver) Cache() *Cache {
	return s.cache
}

// Solve computes the nth Fibonacci number.
//
// Base cases (n == 0, n == 1) return immediately without touching the cache.
// Otherwise the cache is checked under its lock; on a hit the entry is
// returned. On a miss the lock is released, the simulated work delay elapses,
// and the two sub-problems are solved in parallel goroutines. Their sum is
// stored back and returned.
//
// Because the check and the store are separate critical sections, concurrent
// Solve calls for the same uncached n may both miss and recompute. Both then
// store the same correct value, so the race costs duplicate work but never
// correctness.
//
// Parameters:
//   - ctx: The context bounding the computation. Cancellation aborts the
//     recursion at the next suspension point.
//   - n: The Fibonacci index. Must be non-negative.
//
// Returns:
//   - int64: The nth Fibonacci number.
//   - error: An InvalidInputError for n < 0, or the context error on
//     cancellation.
func (s *Solver) Solve(ctx context.Context, n int) (int64, error) {
	if n < 0 {
		return 0, apperrors.NewInvalidInputError(n)
	}
	if n == 0 {
		return 0, nil
	}
	if n == 1 {
		return 1, nil
	}

	if v, ok := s.cache.Lookup(n); ok {
		return v, nil
	}

	if err := s.simulateWork(ctx); err != nil {
		return 0, err
	}

	var left, right int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = s.Solve(gctx, n-1)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = s.Solve(gctx, n-2)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	sum := left + right
	s.cache.Store(n, sum)
	s.logger.Debug("computed element",
		logging.Int("n", n),
		logging.Int64("value", sum))
	return sum, nil
}

// simulateWork blocks for the configured delay or until the context is done.
func (s *Solver) simulateWork(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
