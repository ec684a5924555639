package worker

import (
	"github.com/getsentry/sentry-go"
	"github.com/sasha-s/go-deadlock"
)

// Worker runs submitted functions one after another on its own goroutine. Functions run in the
// order they were submitted.
type Worker struct {
	queue chan func()
	done  chan struct{}

	closed bool
	mu     deadlock.Mutex
}

// New starts a worker with a queue holding up to size pending functions.
func New(size int) *Worker {
	if size < 1 {
		size = 1
	}
	w := &Worker{
		queue: make(chan func(), size),
		done:  make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Worker) run() {
	defer close(w.done)
	for f := range w.queue {
		execute(f)
	}
}

func execute(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to be run by the worker. It blocks while the queue is full and returns false if the
// worker was closed.
func (w *Worker) Submit(f func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	w.queue <- f
	return true
}

// Close stops accepting functions and waits until every queued function has run.
func (w *Worker) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()
	<-w.done
}
