// Package filter maps article filters to and from URL query parameters.
package filter

import (
	"net/url"
	"strconv"

	"scholar-catalog/models"
)

const (
	KeyQuery    = "query"
	KeyAuthor   = "author"
	KeyFromDate = "fromDate"
	KeyToDate   = "toDate"
	KeySort     = "sort"
	KeyOrder    = "order"
	KeyPage     = "page"
	KeyPageSize = "pageSize"
)

// Decode reads a Filter from query parameters. Empty values are unset,
// page and pageSize fall back to their defaults when absent, non-numeric or
// below one, and unknown keys are ignored.
func Decode(values url.Values) models.Filter {
	f := models.Filter{
		Query:    values.Get(KeyQuery),
		Author:   values.Get(KeyAuthor),
		FromDate: values.Get(KeyFromDate),
		ToDate:   values.Get(KeyToDate),
		Sort:     models.SortField(values.Get(KeySort)),
		Order:    models.SortOrder(values.Get(KeyOrder)),
		Page:     atoi(values.Get(KeyPage)),
		PageSize: atoi(values.Get(KeyPageSize)),
	}
	return f.Normalize()
}

// Encode writes f as query parameters, omitting unset values and defaults.
func Encode(f models.Filter) url.Values {
	f = f.Normalize()
	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	set(KeyQuery, f.Query)
	set(KeyAuthor, f.Author)
	set(KeyFromDate, f.FromDate)
	set(KeyToDate, f.ToDate)
	set(KeySort, string(f.Sort))
	set(KeyOrder, string(f.Order))
	if f.Page != models.DefaultPage {
		values.Set(KeyPage, strconv.Itoa(f.Page))
	}
	if f.PageSize != models.DefaultPageSize {
		values.Set(KeyPageSize, strconv.Itoa(f.PageSize))
	}
	return values
}

// DecodeString parses a raw query string; a leading "?" is accepted.
func DecodeString(raw string) (models.Filter, error) {
	if len(raw) > 0 && raw[0] == '?' {
		raw = raw[1:]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return models.Filter{}, err
	}
	return Decode(values), nil
}

func EncodeString(f models.Filter) string {
	return Encode(f).Encode()
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
