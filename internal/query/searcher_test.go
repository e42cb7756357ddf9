package query

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSearcher_DebounceCollapsesKeystrokes(t *testing.T) {
	var calls atomic.Int32
	var mu sync.Mutex
	var terms []string

	fetch := func(_ context.Context, term string) ([]string, error) {
		calls.Add(1)
		mu.Lock()
		terms = append(terms, term)
		mu.Unlock()
		return []string{term}, nil
	}
	results := make(chan Result[string], 4)
	s := NewSearcher(context.Background(), fetch, 30*time.Millisecond, func(r Result[string]) { results <- r }, newNoopLogger())
	defer s.Close()

	for _, term := range []string{"a", "al", "ali", "alic", "alice"} {
		s.Type(term)
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case r := <-results:
		assert.Equal(t, "alice", r.Term)
		assert.Equal(t, []string{"alice"}, r.Items)
	case <-time.After(time.Second):
		t.Fatal("search did not fire")
	}

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	mu.Lock()
	assert.Equal(t, []string{"alice"}, terms)
	mu.Unlock()
}

func TestSearcher_StaleResultDropped(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var firstCanceled atomic.Bool

	fetch := func(ctx context.Context, term string) ([]string, error) {
		if term == "slow" {
			close(started)
			<-release
			if ctx.Err() != nil {
				firstCanceled.Store(true)
			}
			return []string{"slow-result"}, nil
		}
		return []string{"fast-result"}, nil
	}

	var mu sync.Mutex
	var applied []Result[string]
	s := NewSearcher(context.Background(), fetch, time.Hour, func(r Result[string]) {
		mu.Lock()
		applied = append(applied, r)
		mu.Unlock()
	}, newNoopLogger())
	defer s.Close()

	slowDone := make(chan bool)
	go func() {
		_, fresh := s.Now("slow")
		slowDone <- fresh
	}()
	<-started

	res, fresh := s.Now("fast")
	require.True(t, fresh)
	assert.Equal(t, []string{"fast-result"}, res.Items)

	close(release)
	assert.False(t, <-slowDone)
	assert.True(t, firstCanceled.Load())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, applied, 1)
	assert.Equal(t, "fast", applied[0].Term)
	assert.Equal(t, uint64(2), s.Generation())
}

func TestSearcher_CloseStopsPendingTimer(t *testing.T) {
	var calls atomic.Int32
	fetch := func(context.Context, string) ([]string, error) {
		calls.Add(1)
		return nil, nil
	}
	s := NewSearcher(context.Background(), fetch, 20*time.Millisecond, nil, newNoopLogger())

	s.Type("x")
	s.Close()
	time.Sleep(50 * time.Millisecond)

	assert.Zero(t, calls.Load())
}

func TestSearcher_IgnoresInputAfterClose(t *testing.T) {
	var calls atomic.Int32
	fetch := func(context.Context, string) ([]string, error) {
		calls.Add(1)
		return nil, nil
	}
	s := NewSearcher(context.Background(), fetch, 10*time.Millisecond, nil, newNoopLogger())
	s.Close()

	s.Type("late")
	time.Sleep(40 * time.Millisecond)

	res, ok := s.Now("late")
	assert.False(t, ok)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Zero(t, calls.Load())
	assert.Zero(t, s.Generation())
}
