package landing

import (
	"context"
	"errors"
	"testing"
	"time"
)

type blockingCounter struct {
	fakeGateway
}

func (b *blockingCounter) CountGuesses(ctx context.Context) (int64, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-time.After(5 * time.Second):
		return 1, nil
	}
}

func TestLoadStatsReturnsAllCounts(t *testing.T) {
	t.Parallel()

	stats, err := loadStats(context.Background(), &fakeGateway{pools: 1, guesses: 2, users: 3})
	if err != nil {
		t.Fatalf("loadStats() error = %v", err)
	}
	want := Stats{PoolCount: 1, GuessCount: 2, UsersCount: 3}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestLoadStatsFailsWholeOnAnyCounter(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tests := []struct {
		name    string
		gateway *fakeGateway
		counter Counter
	}{
		{name: "pools", gateway: &fakeGateway{poolsErr: boom, guesses: 2, users: 3}, counter: CounterPools},
		{name: "guesses", gateway: &fakeGateway{pools: 1, guessesErr: boom, users: 3}, counter: CounterGuesses},
		{name: "users", gateway: &fakeGateway{pools: 1, guesses: 2, usersErr: boom}, counter: CounterUsers},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			stats, err := loadStats(context.Background(), tc.gateway)
			if stats != (Stats{}) {
				t.Fatalf("stats = %+v, want zero value", stats)
			}
			var counterErr *CounterError
			if !errors.As(err, &counterErr) {
				t.Fatalf("error = %v, want *CounterError", err)
			}
			if counterErr.Counter != tc.counter {
				t.Fatalf("counter = %q, want %q", counterErr.Counter, tc.counter)
			}
			if !errors.Is(err, boom) {
				t.Fatalf("error = %v, want wrapped cause", err)
			}
		})
	}
}

func TestLoadStatsCancelsSiblingsOnFailure(t *testing.T) {
	t.Parallel()

	gateway := &blockingCounter{fakeGateway: fakeGateway{poolsErr: errors.New("boom")}}
	start := time.Now()
	_, err := loadStats(context.Background(), gateway)
	if err == nil {
		t.Fatal("loadStats() error = nil, want failure")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("loadStats() took %v, want sibling cancellation", elapsed)
	}
	var counterErr *CounterError
	if !errors.As(err, &counterErr) || counterErr.Counter != CounterPools {
		t.Fatalf("error = %v, want pools counter error", err)
	}
}

func TestCounterErrorMessage(t *testing.T) {
	t.Parallel()

	err := &CounterError{Counter: CounterUsers, Err: errors.New("status 503")}
	if got := err.Error(); got != "count users: status 503" {
		t.Fatalf("Error() = %q", got)
	}
}
