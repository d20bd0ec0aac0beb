package client

import "scholar-catalog/models"

// wireArticle accepts both "id" and the legacy "_id" key for the article
// identifier.
type wireArticle struct {
	models.Article
	LegacyID string `json:"_id"`
}

func (w wireArticle) normalize() *models.Article {
	a := w.Article
	if a.ID == "" {
		a.ID = w.LegacyID
	}
	if a.Authors == nil {
		a.Authors = []string{}
	}
	if a.Citations == nil {
		a.Citations = []models.Citation{}
	}
	return &a
}

type wirePage struct {
	Items []wireArticle `json:"items"`
	models.PaginationMeta
}

func (w wirePage) normalize() *models.ArticlePage {
	page := &models.ArticlePage{
		Items:          make([]models.Article, 0, len(w.Items)),
		PaginationMeta: w.PaginationMeta,
	}
	for _, item := range w.Items {
		page.Items = append(page.Items, *item.normalize())
	}
	if page.PageSize > 0 && page.TotalPages == 0 && page.TotalItems > 0 {
		page.PaginationMeta = models.NewPaginationMeta(page.Page, page.PageSize, page.TotalItems)
	}
	return page
}
