package domain

// Page is the page/limit pair handlers parse from the query string.
// Zero values normalize to page 1 / limit 10; limit is clamped at 100.
type Page struct {
	Page  int
	Limit int
}

func (p Page) Normalize() Page {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	return p
}

func (p Page) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.Limit
}

type Paginated[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginated[T any](data []T, total int64, p Page) Paginated[T] {
	p = p.Normalize()
	if data == nil {
		data = []T{}
	}
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Paginated[T]{Data: data, Total: total, Page: p.Page, Limit: p.Limit, TotalPages: pages}
}
