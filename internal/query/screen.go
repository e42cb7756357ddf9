package query

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/magabrotheeeer/staking-bank/internal/config"
)

// Screen общее состояние экрана поиска: строки последнего актуального
// ответа, строка поиска, фильтр и текущая страница.
type Screen[T any] struct {
	mu       sync.RWMutex
	rows     []T
	term     string
	page     int
	size     int
	loading  bool
	err      string
	applied  uint64
	filter   func(T) bool
	searcher *Searcher[T]
}

func newScreen[T any](ctx context.Context, fetch FetchFunc[T], cfg config.Search, log *slog.Logger) *Screen[T] {
	s := &Screen[T]{
		page: 1,
		size: ValidPageSize(cfg.PageSize, DefaultPageSize),
	}
	s.searcher = NewSearcher(ctx, fetch, cfg.Debounce, s.apply, log)
	return s
}

func (s *Screen[T]) apply(res Result[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res.Generation < s.applied {
		return
	}
	s.applied = res.Generation
	s.loading = false
	if res.Err != nil {
		s.err = res.Err.Error()
		return
	}
	s.err = ""
	s.rows = slices.Clone(res.Items)
	s.page = 1
}

// Search запоминает строку поиска и планирует отложенный запрос.
func (s *Screen[T]) Search(term string) {
	s.mu.Lock()
	s.term = term
	s.loading = true
	s.mu.Unlock()

	s.searcher.Type(term)
}

// Load загружает строки сразу и возвращает ошибку запроса.
func (s *Screen[T]) Load(term string) error {
	s.mu.Lock()
	s.term = term
	s.loading = true
	s.mu.Unlock()

	res, _ := s.searcher.Now(term)
	return res.Err
}

// Refresh повторяет запрос с текущей строкой поиска.
func (s *Screen[T]) Refresh() error {
	s.mu.RLock()
	term := s.term
	s.mu.RUnlock()
	return s.Load(term)
}

// SetPage выбирает страницу, номер прижимается при выводе.
func (s *Screen[T]) SetPage(page int) {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
}

// SetPageSize меняет размер страницы и возвращает на первую.
func (s *Screen[T]) SetPageSize(size int) {
	s.mu.Lock()
	s.size = ValidPageSize(size, s.size)
	s.page = 1
	s.mu.Unlock()
}

func (s *Screen[T]) setFilter(f func(T) bool) {
	s.mu.Lock()
	s.filter = f
	s.page = 1
	s.mu.Unlock()
}

// View возвращает текущую страницу с учётом фильтра.
func (s *Screen[T]) View() Page[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.rows
	if s.filter != nil {
		rows = slices.DeleteFunc(slices.Clone(rows), func(v T) bool { return !s.filter(v) })
	}
	p := Paginate(rows, s.page, s.size)
	p.Term = s.term
	p.Loading = s.loading
	p.Error = s.err
	return p
}

// Close отменяет отложенные и текущие запросы.
func (s *Screen[T]) Close() {
	s.searcher.Close()
}

// patch применяет fn к строкам, для которых match вернул true.
func (s *Screen[T]) patch(match func(T) bool, fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if match(s.rows[i]) {
			fn(&s.rows[i])
		}
	}
}
