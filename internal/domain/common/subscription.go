// internal/domain/common/subscription.go
package common

import "sync"

// Subscription delivers values pushed by a remote live query until it is
// closed. Each subscription is independent and must be closed by the consumer
// that opened it; an unclosed subscription keeps the remote listener alive.
//
// Delivery is latest-wins: if the consumer has not drained the previous
// snapshot when a new one arrives, the stale snapshot is replaced. Every
// snapshot is complete, so intermediate states are disposable.
type Subscription[T any] struct {
	mu     sync.Mutex
	ch     chan T
	done   chan struct{}
	err    error
	closed bool
}

func NewSubscription[T any]() *Subscription[T] {
	return &Subscription[T]{
		ch:   make(chan T, 1),
		done: make(chan struct{}),
	}
}

// Updates is the snapshot channel. It is never closed; consumers should
// select on Updates and Done together.
func (s *Subscription[T]) Updates() <-chan T { return s.ch }

// Done is closed when the subscription terminates, either by Close or by a
// fatal stream error (see Err).
func (s *Subscription[T]) Done() <-chan struct{} { return s.done }

// Err reports the fatal stream error, if any. Valid after Done is closed.
func (s *Subscription[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Publish hands a new snapshot to the consumer, replacing an undelivered one.
// Publishing after termination is a no-op.
func (s *Subscription[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for {
		select {
		case s.ch <- v:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

// Fail terminates the subscription with a fatal stream error.
func (s *Subscription[T]) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.err = err
	s.closed = true
	close(s.done)
}

// Close terminates the subscription. Safe to call more than once.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}
