package landing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Counter names one aggregate read.
type Counter string

const (
	CounterPools   Counter = "pools"
	CounterGuesses Counter = "guesses"
	CounterUsers   Counter = "users"
)

// Stats holds the three counters rendered on the landing page.
type Stats struct {
	PoolCount  int64
	GuessCount int64
	UsersCount int64
}

// CounterError reports the counter whose read failed the page load.
type CounterError struct {
	Counter Counter
	Err     error
}

func (e *CounterError) Error() string {
	return fmt.Sprintf("count %s: %v", e.Counter, e.Err)
}

func (e *CounterError) Unwrap() error {
	return e.Err
}

// StatsGateway reads the aggregate counters.
type StatsGateway interface {
	CountPools(context.Context) (int64, error)
	CountGuesses(context.Context) (int64, error)
	CountUsers(context.Context) (int64, error)
}

// loadStats reads the three counters concurrently. All must succeed: the
// first failure cancels the other reads and is returned as a *CounterError.
func loadStats(ctx context.Context, gateway StatsGateway) (Stats, error) {
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)
	read := func(counter Counter, call func(context.Context) (int64, error), dst *int64) {
		g.Go(func() error {
			n, err := call(gctx)
			if err != nil {
				return &CounterError{Counter: counter, Err: err}
			}
			*dst = n
			return nil
		})
	}
	read(CounterPools, gateway.CountPools, &stats.PoolCount)
	read(CounterGuesses, gateway.CountGuesses, &stats.GuessCount)
	read(CounterUsers, gateway.CountUsers, &stats.UsersCount)
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}
