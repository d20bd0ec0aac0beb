package models

type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

func NewPaginationMeta(page, pageSize, totalItems int) PaginationMeta {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return PaginationMeta{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages(totalItems, pageSize),
	}
}

// totalPages is ceil(totalItems/pageSize) without the overflow of the
// usual (n+size-1)/size form.
func totalPages(totalItems, pageSize int) int {
	pages := totalItems / pageSize
	if totalItems%pageSize != 0 {
		pages++
	}
	return pages
}

// Range returns the 1-based positions of the first and last item shown on
// the current page, or 0, 0 when the page is empty.
func (m PaginationMeta) Range() (int, int) {
	if m.TotalItems <= 0 || m.Page < 1 || m.PageSize < 1 || m.Page > m.TotalPages {
		return 0, 0
	}
	offset := (m.Page - 1) * m.PageSize
	last := m.TotalItems
	if m.PageSize < last-offset {
		last = offset + m.PageSize
	}
	return offset + 1, last
}

func (m PaginationMeta) HasPrev() bool {
	return m.Page > 1
}

func (m PaginationMeta) HasNext() bool {
	return m.Page < m.TotalPages
}

type ArticlePage struct {
	Items []Article `json:"items"`
	PaginationMeta
}
