package landing

import (
	"context"
	"sync"
)

// fakeGateway implements Gateway with configurable results and call tracking.
type fakeGateway struct {
	mu sync.Mutex

	pools, guesses, users          int64
	poolsErr, guessesErr, usersErr error

	code      string
	createErr error
	titles    []string

	// createStarted is closed when CreatePool is entered; createRelease
	// blocks CreatePool until closed.
	createStarted chan struct{}
	createRelease chan struct{}
}

func (f *fakeGateway) CountPools(context.Context) (int64, error) {
	return f.pools, f.poolsErr
}

func (f *fakeGateway) CountGuesses(context.Context) (int64, error) {
	return f.guesses, f.guessesErr
}

func (f *fakeGateway) CountUsers(context.Context) (int64, error) {
	return f.users, f.usersErr
}

func (f *fakeGateway) CreatePool(_ context.Context, title string) (string, error) {
	f.mu.Lock()
	f.titles = append(f.titles, title)
	started := f.createStarted
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if f.createRelease != nil {
		<-f.createRelease
	}
	return f.code, f.createErr
}

func (f *fakeGateway) createCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.titles))
	copy(out, f.titles)
	return out
}
