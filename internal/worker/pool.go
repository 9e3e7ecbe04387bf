// Package worker runs perft subtrees on a bounded pool of goroutines.
package worker

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is one root move to expand. State is owned by the worker that
// receives it and must not be shared with another item.
type WorkItem struct {
	State *engine.GameState
	Move  chess.Move
	Depth int
	Index int // Position in the submitted batch
}

// ProcessResult carries the node count for one root move.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Err   error
}

// ProcessFunc expands a work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size. Values below one are ignored.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker per CPU unless told otherwise.
func NewPool(processFunc ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers:  runtime.NumCPU(),
		bufferSize:  64,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker expands items until the work channel is closed. Once the pool is
// stopped or ctx is done, remaining items are drained unprocessed.
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() || ctx.Err() != nil {
			continue
		}
		p.resultChan <- p.processFunc(ctx, item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop tells workers to skip whatever is still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers, then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel of processed items.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, feeds it items and collects every result, ordered by
// Index. Workers drain the queue even after a stop, so Submit cannot block
// the feeder forever. The first failed item stops the pool; its error is returned along
// with whatever results arrived. If ctx is cancelled before every item is
// processed, the partial results come back with ctx.Err().
func (p *Pool) Run(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	p.Start(ctx)
	go func() {
		defer p.Close()
		for _, item := range items {
			if p.IsStopped() || ctx.Err() != nil {
				return
			}
			p.Submit(item)
		}
	}()

	var firstErr error
	results := make([]ProcessResult, 0, len(items))
	for res := range p.Results() {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			p.Stop()
			continue
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	if firstErr != nil {
		return results, firstErr
	}
	if len(results) < len(items) {
		return results, ctx.Err()
	}
	return results, nil
}
