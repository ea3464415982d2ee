// Package signal provides a small typed observer list. Handlers are detached
// through the Unsubscribe token returned on registration.
package signal

import "sync"

// Unsubscribe detaches a handler. Calling it more than once is a no-op.
type Unsubscribe func()

type handler[T any] struct {
	id uint64
	fn func(T)
}

// Signal delivers values to handlers in registration order. The zero value is
// ready to use.
type Signal[T any] struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers []handler[T]
}

func (s *Signal[T]) Subscribe(fn func(T)) Unsubscribe {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, handler[T]{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Signal[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return
		}
	}
}

// Emit calls every handler registered at the time of the call. No lock is held
// while handlers run, so a handler may subscribe or unsubscribe.
func (s *Signal[T]) Emit(v T) {
	s.mu.RLock()
	handlers := make([]handler[T], len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.RUnlock()

	for _, h := range handlers {
		h.fn(v)
	}
}

func (s *Signal[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.handlers)
}
