package controllers

import (
	"context"
	"log/slog"
	"time"

	"scholar-catalog/helper"
	"scholar-catalog/models"
)

// Store wires the controllers to one API and location. Views receive the
// store they need instead of reaching for shared globals.
type Store struct {
	Collection   *Collection
	Detail       *Detail
	Form         *Form
	CitationForm *CitationForm

	api    ArticleAPI
	logger *slog.Logger
}

type StoreOption func(*storeConfig)

type storeConfig struct {
	logger    *slog.Logger
	validator *helper.Validator
	now       func() time.Time
}

func WithLogger(logger *slog.Logger) StoreOption {
	return func(c *storeConfig) {
		c.logger = logger
	}
}

func WithValidator(v *helper.Validator) StoreOption {
	return func(c *storeConfig) {
		c.validator = v
	}
}

// WithClock sets the clock used for the default publication date of new
// drafts.
func WithClock(now func() time.Time) StoreOption {
	return func(c *storeConfig) {
		c.now = now
	}
}

func NewStore(api ArticleAPI, loc Location, opts ...StoreOption) *Store {
	cfg := storeConfig{logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.validator == nil {
		cfg.validator = helper.NewValidator()
	}

	s := &Store{
		api:    api,
		logger: cfg.logger,
	}
	s.Collection = NewCollection(api, loc, cfg.logger)
	s.Detail = NewDetail(api, cfg.logger)
	s.Form = NewForm(s, cfg.validator, cfg.logger, cfg.now)
	s.CitationForm = NewCitationForm(s.Detail, cfg.validator)
	return s
}

// CreateArticle creates the article and refreshes the collection. A failed
// refresh is recorded on the collection and does not fail the create.
func (s *Store) CreateArticle(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	article, err := s.api.CreateArticle(ctx, in)
	if err != nil {
		return nil, err
	}
	s.refresh(ctx)
	return article, nil
}

// UpdateArticle updates the article, refreshes the collection and replaces
// the viewed article when it is the one updated.
func (s *Store) UpdateArticle(ctx context.Context, id string, upd models.ArticleUpdate) (*models.Article, error) {
	article, err := s.api.UpdateArticle(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.Detail.Replace(article)
	s.refresh(ctx)
	return article, nil
}

func (s *Store) refresh(ctx context.Context) {
	if err := s.Collection.Refresh(ctx); err != nil {
		s.logger.Warn("refreshing articles after save", "error", err)
	}
}
