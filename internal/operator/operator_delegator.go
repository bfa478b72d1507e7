package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/morningmoney/internal/operator/actions"
	"github.com/carson-networks/morningmoney/internal/storage"
)

const queueSize = 1000

// ErrStopped is returned by Process once Stop has been called.
var ErrStopped = errors.New("operator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
// With one worker every write in the process is serialized.
type OperatorDelegator struct {
	storage    *storage.Storage
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stateMutex sync.RWMutex
	stopped    bool
	stopOnce   sync.Once
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop lets queued items finish and waits for the workers to exit.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stateMutex.Lock()
		d.stopped = true
		close(d.queue)
		d.stateMutex.Unlock()
		d.wg.Wait()
	})
}

// Process queues action and blocks until its transaction has committed or
// rolled back, or ctx is done.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.stateMutex.RLock()
	if d.stopped {
		d.stateMutex.RUnlock()
		return ErrStopped
	}
	select {
	case d.queue <- item:
		d.stateMutex.RUnlock()
	case <-ctx.Done():
		d.stateMutex.RUnlock()
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
