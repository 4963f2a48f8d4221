package lucid

import "sync"

// Signal is a subscriber list for one kind of outbound event. Controls
// expose a Signal per public event; firing notifies all current
// subscribers in subscription order.
//
// The zero value is ready to use. Signals are safe for concurrent
// Subscribe/Emit, though handlers themselves run on the emitting
// goroutine.
type Signal[T any] struct {
	mu   sync.Mutex
	next uint64
	subs []subscriber[T]
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers a handler and returns a cancel function that
// removes it. Cancel is idempotent.
func (s *Signal[T]) Subscribe(fn func(T)) (cancel func()) {
	s.mu.Lock()
	s.next++
	id := s.next
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit notifies all current subscribers with v. Emitting with no
// subscribers is a no-op.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(v)
	}
}

// Len returns the number of current subscribers.
func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
