// Package controllers holds the client-side state of the catalog: the article
// collection driven by the location's query string, the article being viewed,
// and the article and citation forms.
package controllers

import (
	"context"
	"errors"

	"scholar-catalog/client"
	"scholar-catalog/models"
)

// ArticleAPI is the subset of the catalog API the controllers call.
// *client.Client implements it.
type ArticleAPI interface {
	ListArticles(ctx context.Context, f models.Filter) (*models.ArticlePage, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	CreateArticle(ctx context.Context, in models.ArticleInput) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error)
	AddCitation(ctx context.Context, id string, in models.CitationInput) (*models.Article, error)
}

var _ ArticleAPI = (*client.Client)(nil)

// User-facing messages. Underlying causes are logged, never shown.
const (
	MsgFetchFailed       = "Failed to fetch articles. Please try again later."
	MsgLoadFailed        = "Failed to load article details."
	MsgNotFound          = "Article not found"
	MsgAddCitationFailed = "Failed to add citation."
	MsgRequiredFields    = "Please fill in all required fields."
	MsgSaveFailed        = "Failed to save article. Please try again."
	MsgInvalidYear       = "Year must be a valid number."
)

var (
	// ErrInvalidDraft is returned by form submits rejected before any
	// network call.
	ErrInvalidDraft = errors.New("draft failed validation")

	// ErrSubmitInProgress is returned when a submit is already running.
	ErrSubmitInProgress = errors.New("submit already in progress")
)

func isNotFound(err error) bool {
	if client.IsNotFound(err) {
		return true
	}
	var notFound models.ErrorNotFound
	return errors.As(err, &notFound)
}
