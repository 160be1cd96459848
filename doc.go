// Package workerpool provides a fixed-size worker pool with per-job
// cleanup semantics on forced shutdown.
//
// Jobs are submitted asynchronously as a work function, an opaque
// argument, and an optional destructor for that argument. Two combinable
// flags decide what happens to a job that is still queued when the pool
// is destroyed: RunOnForcedShutdown makes the shutdown drain execute the
// work anyway, and RunDestructorAfterWork makes the pool release the
// argument via the destructor right after the work returns, on both the
// normal path and the drain path.
//
// # Quick Start
//
// Initialize the global pool at application startup:
//
//	workerpool.InitGlobalPool(4) // 4 workers
//	defer workerpool.ShutdownGlobalPool()
//
//	workerpool.Submit(func(arg any) {
//		// Your code here
//	}, nil, nil, workerpool.NoFlags)
//
// Or create a private pool:
//
//	pool, err := workerpool.NewPool(3)
//	if err != nil {
//		// handle error
//	}
//	pool.Submit(work, payload, release,
//		workerpool.RunOnForcedShutdown|workerpool.RunDestructorAfterWork)
//	pool.Destroy()
//
// # Key Concepts
//
// Pool: the opaque handle owning the job queue, the wake-up gate, and the
// fixed set of workers. Destroy stops submissions, wakes every worker,
// waits for in-flight jobs to finish, then drains the queue applying each
// remaining job's flags. Destroy is terminal; a destroyed pool cannot be
// restarted and a second Destroy fails cleanly.
//
// JobFlags: named, combinable disposal options. Without flags a queued
// job is dropped untouched at shutdown and the submitter keeps cleanup
// responsibility for its argument.
//
// Ordering: jobs are dequeued in submission order, but with more than one
// worker completion order across jobs is not guaranteed.
//
// # Observability
//
// The core package exposes Logger, Metrics, and PanicHandler hooks; the
// observability/prometheus package adapts Metrics to Prometheus
// collectors.
package workerpool
