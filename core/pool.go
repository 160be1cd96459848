package core

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// Sentinel errors returned by Submit and Destroy.
var (
	// ErrPoolNil is returned when an operation is invoked on a nil pool.
	ErrPoolNil = errors.New("pool is nil")

	// ErrNilJob is returned when Submit is called with a nil work function.
	ErrNilJob = errors.New("nil job function")

	// ErrPoolClosed is returned by Submit once Destroy has begun.
	ErrPoolClosed = errors.New("pool is shutting down or destroyed")

	// ErrPoolDestroyed is returned by Destroy on a pool that is already
	// being (or has been) destroyed.
	ErrPoolDestroyed = errors.New("pool already destroyed")

	// ErrInvalidWorkerCount is returned by NewPool for a non-positive
	// worker count.
	ErrInvalidWorkerCount = errors.New("worker count must be positive")
)

// Pool lifecycle states. No state is re-enterable.
const (
	stateRunning int32 = iota + 1
	stateShuttingDown
	stateDestroyed
)

// Pool executes asynchronously submitted jobs on a fixed set of workers.
// The zero value is not usable; create pools with NewPool. All fields are
// private so the handle returned by NewPool is the only way in.
type Pool struct {
	name    string
	workers int

	gate  *Gate
	queue *JobQueue

	// state drives the Running -> ShuttingDown -> Destroyed machine.
	// submitMu closes the submission window: Submit holds it shared while
	// it checks state and enqueues, Destroy holds it exclusively while it
	// flips state, so no job can slip in behind the shutdown drain.
	state    atomic.Int32
	shutdown atomic.Bool
	submitMu sync.RWMutex

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	logger       Logger
	metrics      Metrics
	panicHandler PanicHandler
}

// NewPool creates a pool with the given number of workers and default
// options. The workers start immediately and park on the gate until work
// or shutdown arrives.
func NewPool(workers int) (*Pool, error) {
	return NewPoolWithOptions(workers, DefaultPoolOptions())
}

// NewPoolWithOptions creates a pool with the given number of workers and
// the supplied options. Nil options (or nil option fields) fall back to
// defaults. No partial pool is ever returned: on a validation failure the
// result is (nil, error) and nothing has been started.
func NewPoolWithOptions(workers int, opts *PoolOptions) (*Pool, error) {
	if workers <= 0 {
		return nil, ErrInvalidWorkerCount
	}

	if opts == nil {
		opts = DefaultPoolOptions()
	}

	p := &Pool{
		name:         opts.Name,
		workers:      workers,
		gate:         NewGate(),
		queue:        NewJobQueue(),
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		panicHandler: opts.PanicHandler,
	}

	// Fill in defaults for anything the caller left nil
	if p.name == "" {
		p.name = "pool"
	}
	if p.logger == nil {
		p.logger = &NopLogger{}
	}
	if p.metrics == nil {
		p.metrics = &NilMetrics{}
	}
	if p.panicHandler == nil {
		p.panicHandler = &DefaultPanicHandler{}
	}

	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.state.Store(stateRunning)

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.logger.Info("pool started", F("pool", p.name), F("workers", workers))
	return p, nil
}

// Submit adds one job to the pool. Ownership of arg transfers to the pool:
// a worker (or, depending on flags, the shutdown drain) will pass it to
// work and then to destructor. destructor may be nil. flags control what
// happens to a job that is still queued when Destroy runs; see JobFlags.
//
// Submit fails without side effects on a nil pool, a nil work function, or
// once Destroy has begun; on failure the caller keeps ownership of arg.
// It never blocks beyond the queue's brief critical section.
func (p *Pool) Submit(work JobFunc, arg any, destructor Destructor, flags JobFlags) error {
	if p == nil {
		return ErrPoolNil
	}
	if work == nil {
		p.metrics.RecordJobRejected(p.name, "nil job")
		return ErrNilJob
	}

	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	if p.state.Load() != stateRunning {
		p.metrics.RecordJobRejected(p.name, "shutdown")
		return ErrPoolClosed
	}

	p.queue.Enqueue(&job{
		fn:         work,
		destructor: destructor,
		arg:        arg,
		flags:      flags,
	})
	p.metrics.RecordQueueDepth(p.name, p.queue.Len())
	p.gate.Signal()
	return nil
}

// Destroy tears the pool down: it stops accepting submissions, wakes every
// worker once via the gate, waits (unbounded) for all of them to exit,
// then drains the queue applying each remaining job's flags, and finally
// releases the gate. Teardown always runs to completion once started.
//
// A second Destroy, or Destroy on a nil pool, fails cleanly without
// touching anything.
func (p *Pool) Destroy() error {
	if p == nil {
		return ErrPoolNil
	}

	// Close the submission window before the wake-ups go out. The flag is
	// finalized here, so every worker woken below observes it.
	p.submitMu.Lock()
	if !p.state.CompareAndSwap(stateRunning, stateShuttingDown) {
		p.submitMu.Unlock()
		return ErrPoolDestroyed
	}
	p.shutdown.Store(true)
	p.submitMu.Unlock()

	p.logger.Info("pool shutting down", F("pool", p.name), F("pending", p.queue.Len()))

	// One wake-up per worker, whether it is parked or about to re-wait.
	for i := 0; i < p.workers; i++ {
		p.gate.Signal()
	}
	p.wg.Wait()

	p.drain()

	p.cancel()
	p.state.Store(stateDestroyed)
	p.logger.Info("pool destroyed", F("pool", p.name))
	return nil
}

// IsRunning reports whether the pool still accepts submissions.
func (p *Pool) IsRunning() bool {
	if p == nil {
		return false
	}
	return p.state.Load() == stateRunning
}

// WorkerCount returns the number of workers the pool was created with.
func (p *Pool) WorkerCount() int {
	return p.workers
}

// QueuedJobCount returns the number of jobs waiting for a worker.
func (p *Pool) QueuedJobCount() int {
	return p.queue.Len()
}

// Stats returns a point-in-time snapshot of the pool's state.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Name:    p.name,
		Workers: p.workers,
		Queued:  p.queue.Len(),
		Running: p.IsRunning(),
	}
}

// worker runs from spawn until shutdown (or a fatal wait/panic): wait on
// the gate, check the shutdown flag, dequeue, execute. An empty dequeue is
// a tolerated spurious wake.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		if err := p.gate.Wait(p.ctx); err != nil {
			return
		}
		if p.shutdown.Load() {
			// Shutdown wake-ups intentionally carry no job.
			return
		}

		j, ok := p.queue.Dequeue()
		if !ok {
			continue
		}
		if !p.runJob(id, j) {
			return
		}
	}
}

// runJob executes one job and reports whether the worker should keep
// going. A panic in the job (or its destructor) is fatal to this worker
// only: it is reported and the worker retires, degrading capacity without
// taking the pool down.
func (p *Pool) runJob(id int, j *job) (ok bool) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			p.metrics.RecordJobPanic(p.name, r)
			p.panicHandler.HandlePanic(p.name, id, r, debug.Stack())
			ok = false
		}
	}()

	j.fn(j.arg)
	if j.flags.Has(RunDestructorAfterWork) && j.destructor != nil {
		j.destructor(j.arg)
	}

	p.metrics.RecordJobDuration(p.name, time.Since(start))
	p.metrics.RecordQueueDepth(p.name, p.queue.Len())
	return true
}

// drain disposes of every job still queued at shutdown, applying its
// flags: RunOnForcedShutdown runs the work, RunDestructorAfterWork then
// releases the argument, neither means the job is dropped untouched. A
// panic during disposal is absorbed so teardown always completes.
func (p *Pool) drain() {
	for {
		j, ok := p.queue.Dequeue()
		if !ok {
			return
		}
		p.disposeJob(j)
	}
}

func (p *Pool) disposeJob(j *job) {
	defer func() {
		if r := recover(); r != nil {
			p.metrics.RecordJobPanic(p.name, r)
			p.logger.Error("panic while draining job", F("pool", p.name), F("panic", r))
		}
	}()

	action := DrainDiscarded
	if j.flags.Has(RunOnForcedShutdown) {
		action = DrainExecuted
		j.fn(j.arg)
	}
	if j.flags.Has(RunDestructorAfterWork) && j.destructor != nil {
		if action == DrainDiscarded {
			action = DrainDestructorOnly
		}
		j.destructor(j.arg)
	}

	p.metrics.RecordDrain(p.name, action)
	p.logger.Debug("drained job", F("pool", p.name), F("action", string(action)))
}
