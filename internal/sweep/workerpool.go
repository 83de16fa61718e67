package sweep

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type task func() error

// pool runs expiry checks concurrently so one slow row cannot stall a whole
// sweep round.
type pool struct {
	tasks     chan task
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func newPool(workers int) *pool {
	p := &pool{tasks: make(chan task, workers)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *pool) worker() {
	defer p.wg.Done()
	for t := range p.tasks {
		if err := t(); err != nil {
			zap.L().Error("sweep task failed", zap.Error(err))
		}
	}
}

func (p *pool) submit(ctx context.Context, t task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.tasks <- t:
		return nil
	}
}

func (p *pool) close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
