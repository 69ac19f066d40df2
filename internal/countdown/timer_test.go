package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer_TickSavesCheckpoint(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	timer := NewTimer("q1", Clock{Hours: 2, Minutes: 59, Seconds: 59}, store)
	display, done := timer.Tick(ctx)
	assert.False(t, done)
	assert.Equal(t, "02 hours 59 min 58 sec", display)

	c, ok, err := store.Load(ctx, "q1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Clock{Hours: 2, Minutes: 59, Seconds: 58}, c)
}

func TestTimer_ReachesZero(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	budget, err := Parse("1 hour")
	require.NoError(t, err)
	timer := NewTimer("q1", FromDuration(budget), store)

	var (
		display string
		done    bool
		ticks   int
	)
	for ticks < 3661 && !done {
		display, done = timer.Tick(ctx)
		ticks++
	}

	assert.True(t, done)
	assert.Equal(t, 3599, ticks)
	assert.Equal(t, "00 hours 00 min 00 sec", display)

	_, ok, err := store.Load(ctx, "q1")
	require.NoError(t, err)
	assert.False(t, ok, "checkpoint must be cleared at zero")

	display, done = timer.Tick(ctx)
	assert.True(t, done, "clock stays at zero")
	assert.Equal(t, "00 hours 00 min 00 sec", display)
}

func TestTimer_Run(t *testing.T) {
	store := NewMemoryStore()
	timer := NewTimer("q1", Clock{Seconds: 3}, store)

	var displays []string
	finished := make(chan struct{})
	go func() {
		timer.Run(context.Background(), time.Millisecond, func(d string) {
			displays = append(displays, d)
		})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not stop at zero")
	}

	assert.Equal(t, []string{
		"00 hours 00 min 02 sec",
		"00 hours 00 min 01 sec",
		"00 hours 00 min 00 sec",
	}, displays)
}

func TestTimer_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	timer := NewTimer("q1", Clock{Hours: 1}, NewMemoryStore())

	finished := make(chan struct{})
	go func() {
		timer.Run(ctx, time.Hour, nil)
		close(finished)
	}()
	cancel()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("timer ignored cancellation")
	}
	assert.Equal(t, Clock{Hours: 1}, timer.Clock())
}
