package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholar-catalog/models"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetList(ctx context.Context, f models.Filter) ([]models.Article, int64, error)
	Update(ctx context.Context, article *models.Article) error
	AddCitation(ctx context.Context, articleID string, citation *models.Citation) error
	Count(ctx context.Context) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func preloadCitations(db *gorm.DB) *gorm.DB {
	return db.Preload("Citations", func(db *gorm.DB) *gorm.DB {
		return db.Order("citations.created_at asc")
	})
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	err := preloadCitations(r.db.WithContext(ctx)).First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetList(ctx context.Context, f models.Filter) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	f = f.Normalize()
	query := r.db.WithContext(ctx).Model(&models.Article{})

	if f.Query != "" {
		like := "%" + escapeLike(strings.ToLower(f.Query)) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(abstract) LIKE ?", like, like)
	}

	// Authors are stored as a JSON array; a substring match on its text form
	// matches any single author name.
	if f.Author != "" {
		like := "%" + escapeLike(strings.ToLower(f.Author)) + "%"
		query = query.Where("LOWER(authors) LIKE ?", like)
	}

	if f.FromDate != "" {
		query = query.Where("publication_date >= ?", f.FromDate)
	}
	if f.ToDate != "" {
		query = query.Where("publication_date <= ?", f.ToDate)
	}

	query = query.Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	desc := f.Order == models.OrderDesc
	switch f.Sort {
	case models.SortByDate:
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: "publication_date"}, Desc: desc})
	case models.SortByTitle:
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: "title"}, Desc: desc})
	default:
		query = query.Order("created_at desc")
	}

	err := preloadCitations(query).Offset(f.Offset()).Limit(f.PageSize).Find(&articles).Error
	return articles, total, err
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	article.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&models.Article{ID: article.ID}).
		Select("title", "authors", "abstract", "publication_date", "doi", "updated_at").
		Updates(article)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrorNotFound{Message: "article not found"}
	}
	return nil
}

func (r *articleRepository) AddCitation(ctx context.Context, articleID string, citation *models.Citation) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).Where("id = ?", articleID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return models.ErrorNotFound{Message: "article not found"}
	}

	citation.ArticleID = articleID
	return r.db.WithContext(ctx).Create(citation).Error
}

func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Article{}).Count(&count).Error
	return count, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
