package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/models"
)

type QuestionLister interface {
	ListOpen(ctx context.Context, subjects []string) ([]models.Question, error)
}

// Poller lists open questions on every tick and hands the ones it has not
// seen before to onNew. A tick that arrives while a poll is still running is
// dropped.
type Poller struct {
	lister   QuestionLister
	subjects []string
	interval time.Duration
	onNew    func([]models.Question)

	busy    atomic.Bool
	skipped atomic.Int64
	seen    map[string]struct{}
	wg      sync.WaitGroup
}

func NewPoller(lister QuestionLister, subjects []string, interval time.Duration, onNew func([]models.Question)) *Poller {
	return &Poller{
		lister:   lister,
		subjects: subjects,
		interval: interval,
		onNew:    onNew,
		seen:     make(map[string]struct{}),
	}
}

// Run polls immediately and then on every interval until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	defer p.wg.Wait()

	p.tick(ctx)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// Skipped reports how many ticks were dropped.
func (p *Poller) Skipped() int64 {
	return p.skipped.Load()
}

func (p *Poller) tick(ctx context.Context) bool {
	if !p.busy.CompareAndSwap(false, true) {
		p.skipped.Add(1)
		logger.Log.Debug("previous poll still running, skipping tick")
		return false
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.busy.Store(false)
		p.poll(ctx)
	}()
	return true
}

func (p *Poller) poll(ctx context.Context) {
	questions, err := p.lister.ListOpen(ctx, p.subjects)
	if err != nil {
		logger.Log.Error("failed to poll open questions", zap.Error(err))
		return
	}

	open := make(map[string]struct{}, len(questions))
	var fresh []models.Question
	for _, q := range questions {
		open[q.ID] = struct{}{}
		if _, ok := p.seen[q.ID]; !ok {
			fresh = append(fresh, q)
		}
	}
	// Questions that left the open list are forgotten.
	p.seen = open

	if len(fresh) > 0 {
		p.onNew(fresh)
	}
}
