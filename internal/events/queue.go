// Package events provides the default event dispatch sink: an unbounded
// FIFO queue that delivers named playback events to a host handler on a
// dedicated goroutine, in exactly the order they were posted.
package events

import (
	"sync"

	"github.com/emberplay/emberplay/internal/domain"
	"go.uber.org/zap"
)

// Handler receives dispatched events. It runs on the queue's goroutine, so
// a slow handler delays later events but never reorders them.
type Handler func(event domain.Event)

// Queue is an ordered asynchronous event dispatch queue. Post never blocks
// the caller; the queue grows as needed because dropping or reordering
// playback events would break the element's event-ordering contract.
type Queue struct {
	logger  *zap.Logger
	handler Handler

	mu      sync.Mutex
	cond    *sync.Cond
	pending []domain.Event
	closed  bool

	done chan struct{}
}

// NewQueue creates a queue and starts its dispatch goroutine. The caller
// must Close the queue to stop it; events posted before Close are delivered
// before the goroutine exits.
func NewQueue(logger *zap.Logger, handler Handler) *Queue {
	q := &Queue{
		logger:  logger,
		handler: handler,
		done:    make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)

	go q.dispatchLoop()
	return q
}

// Post enqueues an event for delivery. Events posted after Close are
// dropped with a warning.
func (q *Queue) Post(event domain.Event) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("Event posted after queue close, dropping",
			zap.String("event", string(event)))
		return
	}
	q.pending = append(q.pending, event)
	q.mu.Unlock()

	q.cond.Signal()
}

// Close stops the queue after draining already-posted events. Safe to call
// once; blocks until the dispatch goroutine has exited.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.cond.Signal()
	<-q.done
}

// dispatchLoop delivers pending events in post order until the queue is
// closed and drained. The handler runs outside the lock so it may post
// further events (reentrant posting keeps ordering: it lands at the tail).
func (q *Queue) dispatchLoop() {
	defer close(q.done)

	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.pending) == 0 && q.closed {
			q.mu.Unlock()
			return
		}
		event := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.handler(event)
	}
}
