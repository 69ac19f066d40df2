package countdown

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/models"
)

// stoppedTTL bounds how long a stopped question is remembered. A Start racing
// with Stop arrives well within it.
const stoppedTTL = time.Hour

type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Manager owns one timer goroutine per assigned question.
type Manager struct {
	store    CheckpointStore
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	running map[string]*run
	stopped map[string]time.Time
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewManager(store CheckpointStore, interval time.Duration) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		store:    store,
		interval: interval,
		now:      time.Now,
		running:  make(map[string]*run),
		stopped:  make(map[string]time.Time),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the timer for an assigned question. A running timer for the
// same question is left untouched, and a question already stopped is never
// started again.
func (m *Manager) Start(ctx context.Context, q *models.Question) error {
	clock, err := m.current(ctx, q)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.running[q.ID]; ok {
		return nil
	}
	if _, ok := m.stopped[q.ID]; ok {
		logger.Log.Debug("countdown not started for stopped question", zap.String("question_id", q.ID))
		return nil
	}
	if m.ctx.Err() != nil {
		return nil
	}
	if clock.IsZero() {
		return m.store.Delete(ctx, q.ID)
	}

	timerCtx, cancel := context.WithCancel(m.ctx)
	r := &run{cancel: cancel, done: make(chan struct{})}
	m.running[q.ID] = r
	timer := NewTimer(q.ID, clock, m.store)

	m.wg.Add(1)
	go func(id string) {
		defer m.wg.Done()
		defer close(r.done)
		defer cancel()
		timer.Run(timerCtx, m.interval, nil)
		m.mu.Lock()
		if m.running[id] == r {
			delete(m.running, id)
		}
		m.mu.Unlock()
	}(q.ID)

	logger.Log.Debug("countdown started", zap.String("question_id", q.ID), zap.String("remaining", clock.String()))
	return nil
}

// Stop cancels the timer and removes its checkpoint. Later Starts for the
// question are ignored.
func (m *Manager) Stop(ctx context.Context, questionID string) error {
	m.mu.Lock()
	now := m.now()
	for id, at := range m.stopped {
		if now.Sub(at) > stoppedTTL {
			delete(m.stopped, id)
		}
	}
	m.stopped[questionID] = now
	r, ok := m.running[questionID]
	delete(m.running, questionID)
	m.mu.Unlock()
	if ok {
		r.cancel()
		<-r.done
	}
	return m.store.Delete(ctx, questionID)
}

// Display returns the remaining time of an assigned question.
func (m *Manager) Display(ctx context.Context, q *models.Question) (models.Countdown, error) {
	clock, err := m.current(ctx, q)
	if err != nil {
		return models.Countdown{}, err
	}
	return models.Countdown{
		QuestionID: q.ID,
		Remaining:  clock.String(),
		Display:    clock.Display(),
		Expired:    clock.IsZero(),
	}, nil
}

// Resume restarts timers for questions that were assigned before a restart.
func (m *Manager) Resume(ctx context.Context, questions []models.Question) {
	for i := range questions {
		q := &questions[i]
		if !q.IsAssigned {
			continue
		}
		if err := m.Start(ctx, q); err != nil {
			logger.Log.Warn("failed to resume countdown", zap.String("question_id", q.ID), zap.Error(err))
		}
	}
}

// Running reports whether a timer goroutine exists for the question.
func (m *Manager) Running(questionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.running[questionID]
	return ok
}

// Shutdown cancels every timer and waits for the goroutines to exit.
func (m *Manager) Shutdown() {
	m.cancel()
	m.wg.Wait()
}

func (m *Manager) current(ctx context.Context, q *models.Question) (Clock, error) {
	if c, ok, err := m.store.Load(ctx, q.ID); err == nil && ok {
		return c, nil
	} else if err != nil {
		logger.Log.Warn("failed to load countdown checkpoint", zap.String("question_id", q.ID), zap.Error(err))
	}

	budget, err := Parse(q.DeliveryTime)
	if err != nil {
		return Clock{}, err
	}
	assignedAt := m.now()
	if q.AssignedAt != nil {
		assignedAt = *q.AssignedAt
	}
	return Remaining(budget, assignedAt, m.now()), nil
}
