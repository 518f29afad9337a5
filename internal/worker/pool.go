// Package worker provides a worker pool for analysing many positions in parallel.
// Each worker owns the positions it is handed; nothing is shared between workers
// except the work and result channels.
package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// WorkItem is one input position.
type WorkItem struct {
	FEN   string
	Line  int // 1-based input line
	Index int // Position in the input, used to restore order
}

// ProcessResult is the outcome of processing one work item.
type ProcessResult struct {
	Index    int
	Line     int
	FEN      string
	Analysis interface{} // Opaque analysis payload; typed by consumer
	Matched  bool        // Whether the item passed the position filters
	Error    error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; by default the pool
// has one worker and a buffer of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Cancelling ctx stops processing; items
// still queued are drained without being processed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() || ctx.Err() != nil {
			continue
		}
		p.resultChan <- p.process(item)
	}
}

// process runs processFunc and turns a panic into an error result, so one bad
// position does not take the whole batch down.
func (p *Pool) process(item WorkItem) (result ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v: %w", r, errors.ErrInvariant)
			}
			result = ProcessResult{
				Index: item.Index,
				Line:  item.Line,
				FEN:   item.FEN,
				Error: &errors.PositionError{Err: err, Line: item.Line, FEN: item.FEN},
			}
		}
	}()
	return p.processFunc(item)
}

// Submit queues a work item, blocking while the buffer is full. It gives up and
// returns the context's error if ctx is cancelled first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish, then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
