package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/models"
)

func assignedQuestion(id, delivery string, assignedAt time.Time) *models.Question {
	return &models.Question{
		ID:            id,
		DeliveryTime:  delivery,
		IsAssigned:    true,
		TutorAssigned: "alice",
		AssignedAt:    &assignedAt,
	}
}

func TestManager_StartStop(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store, time.Millisecond)
	defer m.Shutdown()

	q := assignedQuestion("q1", "1 hour", time.Now())
	require.NoError(t, m.Start(ctx, q))
	assert.True(t, m.Running("q1"))
	require.NoError(t, m.Start(ctx, q), "second start is a no-op")

	require.Eventually(t, func() bool {
		_, ok, _ := store.Load(ctx, "q1")
		return ok
	}, time.Second, time.Millisecond)

	require.NoError(t, m.Stop(ctx, "q1"))
	assert.False(t, m.Running("q1"))
	_, ok, err := store.Load(ctx, "q1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_Display(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store, time.Hour)
	defer m.Shutdown()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	t.Run("derived from assignment", func(t *testing.T) {
		cd, err := m.Display(ctx, assignedQuestion("q1", "3 hours", now.Add(-time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, "01:59:59", cd.Remaining)
		assert.Equal(t, "01 hours 59 min 59 sec", cd.Display)
		assert.False(t, cd.Expired)
	})

	t.Run("checkpoint wins", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "q2", Clock{Minutes: 10}))
		cd, err := m.Display(ctx, assignedQuestion("q2", "3 hours", now))
		require.NoError(t, err)
		assert.Equal(t, "00:10:00", cd.Remaining)
	})

	t.Run("expired", func(t *testing.T) {
		cd, err := m.Display(ctx, assignedQuestion("q3", "1 hour", now.Add(-2*time.Hour)))
		require.NoError(t, err)
		assert.True(t, cd.Expired)
		assert.Equal(t, "00 hours 00 min 00 sec", cd.Display)
	})

	t.Run("bad delivery time", func(t *testing.T) {
		_, err := m.Display(ctx, assignedQuestion("q4", "3 weeks", now))
		assert.ErrorIs(t, err, apperrors.ErrInvalidDeliveryTimeFormat)
	})
}

func TestManager_Resume(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), time.Hour)
	defer m.Shutdown()

	answered := assignedQuestion("answered", "1 hour", time.Now())
	answered.IsAnswered = true

	m.Resume(ctx, []models.Question{
		*assignedQuestion("running", "1 hour", time.Now()),
		*answered,
		{ID: "open", DeliveryTime: "1 hour"},
		*assignedQuestion("expired", "1 hour", time.Now().Add(-2*time.Hour)),
		*assignedQuestion("broken", "soon", time.Now()),
	})

	assert.True(t, m.Running("running"))
	assert.True(t, m.Running("answered"), "answering does not stop the clock")
	assert.False(t, m.Running("open"))
	assert.False(t, m.Running("expired"))
	assert.False(t, m.Running("broken"))
}

func TestManager_Shutdown(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	require.NoError(t, m.Start(context.Background(), assignedQuestion("q1", "1 hour", time.Now())))

	done := make(chan struct{})
	go func() {
		m.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shutdown did not stop timers")
	}
	assert.False(t, m.Running("q1"))
	require.NoError(t, m.Start(context.Background(), assignedQuestion("q2", "1 hour", time.Now())))
	assert.False(t, m.Running("q2"), "no timers after shutdown")
}

func TestManager_StartAfterStopIsIgnored(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store, time.Millisecond)
	defer m.Shutdown()

	require.NoError(t, m.Stop(ctx, "q1"))
	require.NoError(t, m.Start(ctx, assignedQuestion("q1", "1 hour", time.Now())))
	assert.False(t, m.Running("q1"))

	time.Sleep(5 * time.Millisecond)
	_, ok, err := store.Load(ctx, "q1")
	require.NoError(t, err)
	assert.False(t, ok, "no checkpoint is written for a stopped question")

	require.NoError(t, m.Start(ctx, assignedQuestion("q2", "1 hour", time.Now())))
	assert.True(t, m.Running("q2"), "other questions are unaffected")
}

func TestManager_StoppedEntriesExpire(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), time.Hour)
	defer m.Shutdown()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Stop(ctx, "q1"))
	now = now.Add(stoppedTTL + time.Second)
	require.NoError(t, m.Stop(ctx, "q2"))

	m.mu.Lock()
	defer m.mu.Unlock()
	assert.NotContains(t, m.stopped, "q1")
	assert.Contains(t, m.stopped, "q2")
}
