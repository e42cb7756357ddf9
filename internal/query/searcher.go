// Package query реализует экраны поиска администратора: отложенный запрос
// к серверу после ввода, защиту от устаревших ответов, фильтры и пагинацию.
package query

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/magabrotheeeer/staking-bank/internal/lib/sl"
)

// FetchFunc загружает строки по строке поиска.
type FetchFunc[T any] func(ctx context.Context, term string) ([]T, error)

// Result ответ одного запуска поиска.
type Result[T any] struct {
	Generation uint64
	Term       string
	Items      []T
	Err        error
}

// Searcher откладывает запрос до паузы во вводе. Каждый запуск получает
// новое поколение и отменяет предыдущий запрос; ответы старых поколений отбрасываются.
type Searcher[T any] struct {
	fetch    FetchFunc[T]
	delay    time.Duration
	onResult func(Result[T])
	log      *slog.Logger

	base context.Context
	stop context.CancelFunc

	gen atomic.Uint64

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
}

// NewSearcher создаёт Searcher. onResult вызывается только для актуальных ответов.
func NewSearcher[T any](ctx context.Context, fetch FetchFunc[T], delay time.Duration, onResult func(Result[T]), log *slog.Logger) *Searcher[T] {
	base, stop := context.WithCancel(ctx)
	return &Searcher[T]{
		fetch:    fetch,
		delay:    delay,
		onResult: onResult,
		log:      log,
		base:     base,
		stop:     stop,
	}
}

// Type сообщает о новом вводе. Запрос уйдёт через delay после последнего вызова.
// После Close вызов игнорируется.
func (s *Searcher[T]) Type(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(term)
	})
}

// Now выполняет запрос сразу, отменяя отложенный. Возвращает false, если
// ответ устарел до завершения.
func (s *Searcher[T]) Now(term string) (Result[T], bool) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.run(term)
}

// Generation номер последнего запущенного запроса.
func (s *Searcher[T]) Generation() uint64 {
	return s.gen.Load()
}

// Close останавливает таймер и отменяет запрос в полёте.
func (s *Searcher[T]) Close() {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	s.stop()
}

func (s *Searcher[T]) run(term string) (Result[T], bool) {
	const op = "query.Searcher.run"

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Result[T]{Term: term, Err: context.Canceled}, false
	}
	gen := s.gen.Add(1)
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(s.base)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	items, err := s.fetch(ctx, term)
	res := Result[T]{Generation: gen, Term: term, Items: items, Err: err}

	if gen != s.gen.Load() {
		s.log.Debug("stale search result dropped", sl.Op(op),
			slog.String("term", term), slog.Uint64("generation", gen))
		return res, false
	}
	if err != nil {
		s.log.Error("search failed", sl.Op(op), slog.String("term", term), sl.Err(err))
	}
	if s.onResult != nil {
		s.onResult(res)
	}
	return res, true
}
