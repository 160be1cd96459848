package core

import (
	"fmt"
	"time"
)

// =============================================================================
// PanicHandler: Interface for handling job panics
// =============================================================================

// PanicHandler is called when a job panics during execution. A panicking
// job is fatal to the worker that ran it: the worker reports the panic
// here and then exits its loop, leaving the pool running with one fewer
// worker. Implementations must be safe for concurrent use.
type PanicHandler interface {
	// HandlePanic is called with the pool name, the id of the worker that
	// ran the job, the recovered panic value, and the stack trace captured
	// at the time of panic.
	HandlePanic(poolName string, workerID int, panicInfo any, stackTrace []byte)
}

// DefaultPanicHandler prints panic information to stdout.
type DefaultPanicHandler struct{}

// HandlePanic prints panic information to stdout.
func (h *DefaultPanicHandler) HandlePanic(poolName string, workerID int, panicInfo any, stackTrace []byte) {
	fmt.Printf("[Worker %d @ %s] Panic: %v\nStack trace:\n%s",
		workerID, poolName, panicInfo, stackTrace)
}

// =============================================================================
// Metrics: Interface for observability and monitoring
// =============================================================================

// DrainAction classifies what the shutdown drain did with one job that
// was still queued when Destroy ran, per the job's flags.
type DrainAction string

const (
	// DrainExecuted: the job carried RunOnForcedShutdown, so its work ran
	// (and its destructor too, when RunDestructorAfterWork was also set).
	DrainExecuted DrainAction = "executed"

	// DrainDestructorOnly: only RunDestructorAfterWork was set, so the
	// argument was released without running the work.
	DrainDestructorOnly DrainAction = "destructor_only"

	// DrainDiscarded: no flags, the job was dropped untouched.
	DrainDiscarded DrainAction = "discarded"
)

// Metrics defines the interface for collecting pool execution metrics.
// Implementations can send metrics to monitoring systems (Prometheus,
// StatsD, etc.). Methods should be non-blocking and fast to avoid
// impacting job execution performance.
type Metrics interface {
	// RecordJobDuration records how long a job's work (plus its optional
	// destructor) took to execute on a worker.
	RecordJobDuration(poolName string, duration time.Duration)

	// RecordJobPanic records that a job panicked during execution.
	RecordJobPanic(poolName string, panicInfo any)

	// RecordQueueDepth records the current number of pending jobs.
	RecordQueueDepth(poolName string, depth int)

	// RecordJobRejected records that a submission was rejected
	// (e.g., "shutdown", "nil job").
	RecordJobRejected(poolName string, reason string)

	// RecordDrain records the disposal of one still-queued job during
	// shutdown.
	RecordDrain(poolName string, action DrainAction)
}

// NilMetrics provides a no-op metrics implementation that does nothing.
// This is the default when no metrics interface is provided.
type NilMetrics struct{}

// RecordJobDuration is a no-op.
func (m *NilMetrics) RecordJobDuration(poolName string, duration time.Duration) {
}

// RecordJobPanic is a no-op.
func (m *NilMetrics) RecordJobPanic(poolName string, panicInfo any) {
}

// RecordQueueDepth is a no-op.
func (m *NilMetrics) RecordQueueDepth(poolName string, depth int) {
}

// RecordJobRejected is a no-op.
func (m *NilMetrics) RecordJobRejected(poolName string, reason string) {
}

// RecordDrain is a no-op.
func (m *NilMetrics) RecordDrain(poolName string, action DrainAction) {
}

// =============================================================================
// PoolStats: Point-in-time observability snapshot
// =============================================================================

// PoolStats represents runtime observability state for a pool.
type PoolStats struct {
	Name    string
	Workers int
	Queued  int
	Running bool
}

// =============================================================================
// PoolOptions: Optional configuration for NewPoolWithOptions
// =============================================================================

// PoolOptions holds optional hooks for a pool. All fields are optional;
// zero values get default implementations.
type PoolOptions struct {
	// Name labels the pool in logs and metrics. Defaults to "pool".
	Name string

	// Logger receives lifecycle and drain events. Defaults to a no-op
	// logger so the library is silent unless asked not to be.
	Logger Logger

	// Metrics is called to record execution metrics. Defaults to NilMetrics.
	Metrics Metrics

	// PanicHandler is called when a job panics. Defaults to DefaultPanicHandler.
	PanicHandler PanicHandler
}

// DefaultPoolOptions returns options with default hooks.
func DefaultPoolOptions() *PoolOptions {
	return &PoolOptions{
		Name:         "pool",
		Logger:       &NopLogger{},
		Metrics:      &NilMetrics{},
		PanicHandler: &DefaultPanicHandler{},
	}
}
