package models

import "math"

type SortField string

const (
	SortByDate  SortField = "date"
	SortByTitle SortField = "title"
)

func (s SortField) Valid() bool {
	return s == SortByDate || s == SortByTitle
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Filter selects, orders and pages the article collection. Empty strings
// mean "no constraint".
type Filter struct {
	Query    string    `json:"query,omitempty"`
	Author   string    `json:"author,omitempty"`
	FromDate string    `json:"fromDate,omitempty"`
	ToDate   string    `json:"toDate,omitempty"`
	Sort     SortField `json:"sort,omitempty"`
	Order    SortOrder `json:"order,omitempty"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

// Normalize applies paging defaults and drops values outside the sort enums.
func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if !f.Sort.Valid() {
		f.Sort = ""
	}
	if !f.Order.Valid() {
		f.Order = ""
	}
	return f
}

func (f Filter) WithPage(page int) Filter {
	f.Page = page
	return f
}

// Offset is the index of the first item of the filter's page. It saturates
// at math.MaxInt instead of overflowing.
func (f Filter) Offset() int {
	f = f.Normalize()
	if f.Page-1 > math.MaxInt/f.PageSize {
		return math.MaxInt
	}
	return (f.Page - 1) * f.PageSize
}
