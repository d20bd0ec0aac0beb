package controllers

import (
	"context"
	"sync"

	"scholar-catalog/helper"
	"scholar-catalog/models"
	"scholar-catalog/repositories"
	"scholar-catalog/seed"
	"scholar-catalog/services"
)

// fakeAPI serves the controllers from an in-memory service. Hooks override
// single operations and errors force failures.
type fakeAPI struct {
	svc services.ArticleService

	listHook func(f models.Filter) (*models.ArticlePage, error)
	getHook  func(id string) (*models.Article, error)

	listErr   error
	getErr    error
	createErr error
	updateErr error
	citeErr   error

	mu    sync.Mutex
	calls map[string]int
}

func newFakeAPI() *fakeAPI {
	repo := repositories.NewMemoryArticleRepository(seed.MockArticles()...)
	return &fakeAPI{
		svc:   services.NewArticleService(repo, helper.NewValidator()),
		calls: map[string]int{},
	}
}

func (f *fakeAPI) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
}

func (f *fakeAPI) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeAPI) ListArticles(ctx context.Context, flt models.Filter) (*models.ArticlePage, error) {
	f.record("list")
	if f.listHook != nil {
		return f.listHook(flt)
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.svc.GetArticles(ctx, flt)
}

func (f *fakeAPI) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	f.record("get")
	if f.getHook != nil {
		return f.getHook(id)
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.svc.GetArticle(ctx, id)
}

func (f *fakeAPI) CreateArticle(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	f.record("create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.svc.CreateArticle(ctx, in)
}

func (f *fakeAPI) UpdateArticle(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error) {
	f.record("update")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.svc.UpdateArticle(ctx, id, upd)
}

func (f *fakeAPI) AddCitation(ctx context.Context, id string, in models.CitationInput) (*models.Article, error) {
	f.record("cite")
	if f.citeErr != nil {
		return nil, f.citeErr
	}
	return f.svc.AddCitation(ctx, id, in)
}

func titledPage(title string) *models.ArticlePage {
	return &models.ArticlePage{
		Items:          []models.Article{{ID: title, Title: title}},
		PaginationMeta: models.NewPaginationMeta(1, 10, 1),
	}
}
