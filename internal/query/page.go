package query

// PageSizes допустимые размеры страницы.
var PageSizes = []int{5, 10, 20, 50}

// DefaultPageSize используется, если размер не из PageSizes.
const DefaultPageSize = 10

// Page одна страница строк экрана.
type Page[T any] struct {
	Items      []T    `json:"items"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
	Term       string `json:"term"`
	Loading    bool   `json:"loading"`
	Error      string `json:"error,omitempty"`
}

// ValidPageSize возвращает size, если он допустим, иначе fallback или DefaultPageSize.
func ValidPageSize(size, fallback int) int {
	for _, s := range PageSizes {
		if s == size {
			return size
		}
	}
	for _, s := range PageSizes {
		if s == fallback {
			return fallback
		}
	}
	return DefaultPageSize
}

// Paginate режет items на страницы. Номер страницы начинается с 1 и
// прижимается к допустимому диапазону.
func Paginate[T any](items []T, page, size int) Page[T] {
	size = ValidPageSize(size, DefaultPageSize)
	total := len(items)
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * size
	end := min(start+size, total)
	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:      out,
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: pages,
	}
}
