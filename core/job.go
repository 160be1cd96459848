package core

// JobFunc is the unit of deferred work. The argument is the opaque payload
// the submitter handed over at Submit time; ownership of it transfers to
// the pool until the job is disposed of.
type JobFunc func(arg any)

// Destructor releases a job's argument. It is optional; when provided it
// runs only where JobFlags say it should.
type Destructor func(arg any)

// =============================================================================
// JobFlags: Per-job disposal options, combinable with |
// =============================================================================

type JobFlags int

const (
	// NoFlags submits a job with default disposal: it is discarded untouched
	// if the pool is destroyed before a worker claims it, and its argument
	// is never released by the pool.
	NoFlags JobFlags = 0

	// RunOnForcedShutdown makes the shutdown drain invoke the job's work
	// function even though no worker ever dequeued it. Without this flag a
	// still-queued job is dropped without running at destroy time.
	RunOnForcedShutdown JobFlags = 1 << 0

	// RunDestructorAfterWork invokes the destructor on the argument
	// immediately after work returns, on both the normal worker path and
	// the forced-shutdown drain path. During the drain it also runs on its
	// own when RunOnForcedShutdown is unset (work skipped, argument still
	// released). When this flag is unset the pool never touches the
	// argument via the destructor; the submitter keeps cleanup
	// responsibility for it, including for jobs that ran via the drain.
	RunDestructorAfterWork JobFlags = 1 << 1
)

// Has reports whether all bits of flag are set.
func (f JobFlags) Has(flag JobFlags) bool {
	return f&flag == flag
}

// job is one queued unit of work. It is created by Submit, lives in the
// queue until a worker or the shutdown drain claims it, and is dropped
// immediately after execution/disposal. Never duplicated.
type job struct {
	fn         JobFunc
	destructor Destructor
	arg        any
	flags      JobFlags
}
