// Package frame batches geometry reads and layout writes into separate
// per-frame passes so a pointer-move never interleaves measurement with
// mutation. The drag engine takes the scheduler as an injected capability;
// the workbench flushes it once per frame message, tests flush it inline.
package frame

// Scheduler is the two-queue capability consumed by the drag engine.
type Scheduler interface {
	// Read enqueues a geometry measurement for the next read pass.
	Read(fn func())
	// Write enqueues a layout or placeholder mutation for the write pass
	// that follows the read pass.
	Write(fn func())
}

// Queue is the standard Scheduler: two FIFO queues flushed in order.
// It is not safe for concurrent use; all callers run on the UI event loop.
type Queue struct {
	reads  []func()
	writes []func()
}

// NewQueue returns an empty scheduler.
func NewQueue() *Queue {
	return &Queue{}
}

// Read enqueues fn into the read pass.
func (q *Queue) Read(fn func()) {
	if fn != nil {
		q.reads = append(q.reads, fn)
	}
}

// Write enqueues fn into the write pass.
func (q *Queue) Write(fn func()) {
	if fn != nil {
		q.writes = append(q.writes, fn)
	}
}

// Flush runs every queued read, then every queued write. Work enqueued while
// flushing runs within the same flush, so a read that schedules a write still
// lands in this frame's write pass.
func (q *Queue) Flush() {
	for len(q.reads) > 0 {
		fn := q.reads[0]
		q.reads = q.reads[1:]
		fn()
	}
	for len(q.writes) > 0 {
		if len(q.reads) > 0 {
			// A write scheduled another read; finish the read pass first.
			fn := q.reads[0]
			q.reads = q.reads[1:]
			fn()
			continue
		}
		fn := q.writes[0]
		q.writes = q.writes[1:]
		fn()
	}
}

// Pending reports whether any work is queued.
func (q *Queue) Pending() bool {
	return len(q.reads) > 0 || len(q.writes) > 0
}

// Immediate is a Scheduler that runs every callback synchronously. Useful in
// tests that do not care about pass ordering.
type Immediate struct{}

// Read runs fn now.
func (Immediate) Read(fn func()) { fn() }

// Write runs fn now.
func (Immediate) Write(fn func()) { fn() }
