package state

import (
	"log/slog"
	"sync"
)

// Listener получает новое состояние после каждого Dispatch.
type Listener func(State)

// Store потокобезопасный контейнер State.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]Listener
	nextID    int
	log       *slog.Logger
}

// NewStore создаёт Store с начальным состоянием.
func NewStore(initial State, log *slog.Logger) *Store {
	return &Store{
		state:     initial,
		listeners: make(map[int]Listener),
		log:       log,
	}
}

// Dispatch единственная точка изменения состояния.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	s.log.Debug("state transition", slog.String("action", a.Name()))

	for _, l := range listeners {
		l(next)
	}
	return next
}

// Snapshot возвращает копию текущего состояния.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe регистрирует слушателя, возвращает функцию отписки.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
