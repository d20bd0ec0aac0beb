package repositories

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"scholar-catalog/models"
)

// matches reports whether a satisfies the search and date constraints of f.
// Dates compare as strings, which is chronological for YYYY-MM-DD.
func matches(a models.Article, f models.Filter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Abstract), q) {
			return false
		}
	}

	if f.Author != "" {
		q := strings.ToLower(f.Author)
		found := false
		for _, name := range a.Authors {
			if strings.Contains(strings.ToLower(name), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.FromDate != "" && a.PublicationDate < f.FromDate {
		return false
	}
	if f.ToDate != "" && a.PublicationDate > f.ToDate {
		return false
	}
	return true
}

// sortArticles orders articles in place by the filter's sort field. Without
// a sort field the input order is kept. Descending order negates the
// ascending comparison.
func sortArticles(articles []models.Article, f models.Filter) {
	if !f.Sort.Valid() {
		return
	}

	// Collators keep internal buffers and are not safe for concurrent use.
	col := collate.New(language.English)
	key := func(a models.Article) string {
		if f.Sort == models.SortByDate {
			return a.PublicationDate
		}
		return a.Title
	}

	sort.SliceStable(articles, func(i, j int) bool {
		cmp := col.CompareString(key(articles[i]), key(articles[j]))
		if f.Order == models.OrderDesc {
			cmp = -cmp
		}
		return cmp < 0
	})
}

// paginate returns the slice of articles on the filter's page.
func paginate(articles []models.Article, f models.Filter) []models.Article {
	f = f.Normalize()
	start := f.Offset()
	if start >= len(articles) {
		return []models.Article{}
	}
	end := len(articles)
	if f.PageSize < end-start {
		end = start + f.PageSize
	}
	return articles[start:end]
}
