package core

import (
	"sync"
)

const (
	defaultQueueCap     = 16
	compactMinCap       = 64 // Don't compact if capacity is less than this
	compactShrinkFactor = 4  // Trigger compaction when len < cap/4
)

// JobQueue is the pool's pending-job FIFO. Jobs enter at the back and
// leave from the front; all structural mutation happens under the mutex,
// so concurrent Enqueue/Dequeue calls are each atomic and ordered by lock
// acquisition.
//
// The backing store is a mutex-guarded slice rather than a linked list:
// FIFO order and O(1) amortized operations are the contract, not the
// pointer layout, and a dequeued job carries no queue-internal state.
type JobQueue struct {
	mu   sync.Mutex
	jobs []*job
}

// NewJobQueue creates an empty queue.
func NewJobQueue() *JobQueue {
	return &JobQueue{
		jobs: make([]*job, 0, defaultQueueCap),
	}
}

// Enqueue appends a job at the back of the queue.
func (q *JobQueue) Enqueue(j *job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, j)
}

// Dequeue removes and returns the job at the front of the queue.
// It returns (nil, false) when the queue is empty.
func (q *JobQueue) Dequeue() (*job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.jobs) == 0 {
		return nil, false
	}

	j := q.jobs[0]
	// Zero out the element in the underlying array to prevent memory leak
	q.jobs[0] = nil
	q.jobs = q.jobs[1:]
	q.maybeCompactLocked()

	return j, true
}

// maybeCompactLocked reallocates the backing array once the live window
// has shrunk well below capacity, so a long-lived pool does not pin the
// memory of its deepest historical backlog.
func (q *JobQueue) maybeCompactLocked() {
	n := len(q.jobs)
	c := cap(q.jobs)

	if c < compactMinCap {
		return
	}
	if n == 0 {
		q.jobs = make([]*job, 0, defaultQueueCap)
		return
	}
	if n*compactShrinkFactor >= c {
		return
	}

	newCap := max(max(c/2, defaultQueueCap), n)

	newSlice := make([]*job, n, newCap)
	copy(newSlice, q.jobs)
	q.jobs = newSlice
}

// Len returns the number of pending jobs.
func (q *JobQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

// IsEmpty reports whether the queue holds no pending jobs.
func (q *JobQueue) IsEmpty() bool {
	return q.Len() == 0
}
