package countdown

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/logger"
)

// Timer counts one question down and mirrors every tick to the store.
type Timer struct {
	questionID string
	clock      Clock
	store      CheckpointStore
}

func NewTimer(questionID string, start Clock, store CheckpointStore) *Timer {
	return &Timer{questionID: questionID, clock: start, store: store}
}

func (t *Timer) Clock() Clock {
	return t.clock
}

// Tick decrements the clock by one second and returns the display value.
// Once the clock reaches zero the checkpoint is removed and done is true.
func (t *Timer) Tick(ctx context.Context) (display string, done bool) {
	t.clock = FromDuration(t.clock.Duration() - time.Second)

	if t.clock.IsZero() {
		if err := t.store.Delete(ctx, t.questionID); err != nil {
			logger.Log.Warn("failed to clear countdown checkpoint",
				zap.String("question_id", t.questionID), zap.Error(err))
		}
		return t.clock.Display(), true
	}

	if err := t.store.Save(ctx, t.questionID, t.clock); err != nil {
		logger.Log.Warn("failed to save countdown checkpoint",
			zap.String("question_id", t.questionID), zap.Error(err))
	}
	return t.clock.Display(), false
}

// Run ticks once per interval until the clock reaches zero or ctx is done.
// onTick may be nil.
func (t *Timer) Run(ctx context.Context, interval time.Duration, onTick func(display string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			display, done := t.Tick(ctx)
			if onTick != nil {
				onTick(display)
			}
			if done {
				return
			}
		}
	}
}
