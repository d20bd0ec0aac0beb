package services

import (
	"context"

	"github.com/google/uuid"

	"scholar-catalog/helper"
	"scholar-catalog/models"
	"scholar-catalog/repositories"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, req models.ArticleInput) (*models.Article, error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	GetArticles(ctx context.Context, f models.Filter) (*models.ArticlePage, error)
	UpdateArticle(ctx context.Context, id string, req models.ArticleUpdate) (*models.Article, error)
	GetCitations(ctx context.Context, id string) ([]models.Citation, error)
	AddCitation(ctx context.Context, id string, req models.CitationInput) (*models.Article, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	validator   *helper.Validator
	newID       func() string
}

func NewArticleService(articleRepo repositories.ArticleRepository, validator *helper.Validator) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		validator:   validator,
		newID:       uuid.NewString,
	}
}

func (s *articleService) CreateArticle(ctx context.Context, req models.ArticleInput) (*models.Article, error) {
	req = req.Normalize()
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	article := &models.Article{
		ID:              s.newID(),
		Title:           req.Title,
		Authors:         req.Authors,
		Abstract:        req.Abstract,
		PublicationDate: req.PublicationDate,
		DOI:             req.DOI,
		Citations:       []models.Citation{},
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(ctx, article.ID)
}

func (s *articleService) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

func (s *articleService) GetArticles(ctx context.Context, f models.Filter) (*models.ArticlePage, error) {
	f = f.Normalize()

	articles, total, err := s.articleRepo.GetList(ctx, f)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []models.Article{}
	}

	return &models.ArticlePage{
		Items:          articles,
		PaginationMeta: models.NewPaginationMeta(f.Page, f.PageSize, int(total)),
	}, nil
}

// UpdateArticle merges the partial update into the stored article and
// validates the merged result, so a partial body cannot blank a required
// field.
func (s *articleService) UpdateArticle(ctx context.Context, id string, req models.ArticleUpdate) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(article)
	merged := article.Input().Normalize()
	if err := s.validator.Struct(merged); err != nil {
		return nil, err
	}

	article.Title = merged.Title
	article.Authors = merged.Authors
	article.Abstract = merged.Abstract
	article.PublicationDate = merged.PublicationDate
	article.DOI = merged.DOI

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(ctx, id)
}

func (s *articleService) GetCitations(ctx context.Context, id string) ([]models.Citation, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article.Citations == nil {
		return []models.Citation{}, nil
	}
	return article.Citations, nil
}

// AddCitation stores a citation under the article and returns the updated
// article including the new citation.
func (s *articleService) AddCitation(ctx context.Context, id string, req models.CitationInput) (*models.Article, error) {
	req = req.Normalize()
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	citation := &models.Citation{
		ID:      s.newID(),
		Title:   req.Title,
		Authors: req.Authors,
		Year:    req.Year,
		DOI:     req.DOI,
	}
	if err := s.articleRepo.AddCitation(ctx, id, citation); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(ctx, id)
}
