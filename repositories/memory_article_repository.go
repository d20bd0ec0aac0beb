package repositories

import (
	"context"
	"sync"
	"time"

	"scholar-catalog/models"
)

type memoryArticleRepository struct {
	mu       sync.RWMutex
	articles []models.Article
}

// NewMemoryArticleRepository returns an in-process repository seeded with
// the given articles. New articles are stored ahead of existing ones so the
// unsorted listing shows the newest first.
func NewMemoryArticleRepository(seed ...models.Article) ArticleRepository {
	r := &memoryArticleRepository{}
	for _, a := range seed {
		r.articles = append(r.articles, a.Clone())
	}
	return r
}

func (r *memoryArticleRepository) Create(ctx context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(article.ID) >= 0 {
		return models.ErrorBadRequest{Message: "article already exists"}
	}

	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	r.articles = append([]models.Article{article.Clone()}, r.articles...)
	return nil
}

func (r *memoryArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}
	article := r.articles[i].Clone()
	return &article, nil
}

func (r *memoryArticleRepository) GetList(ctx context.Context, f models.Filter) ([]models.Article, int64, error) {
	r.mu.RLock()
	filtered := make([]models.Article, 0, len(r.articles))
	for _, a := range r.articles {
		if matches(a, f) {
			filtered = append(filtered, a.Clone())
		}
	}
	r.mu.RUnlock()

	sortArticles(filtered, f)
	return paginate(filtered, f), int64(len(filtered)), nil
}

func (r *memoryArticleRepository) Update(ctx context.Context, article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(article.ID)
	if i < 0 {
		return models.ErrorNotFound{Message: "article not found"}
	}

	// Citations are only changed through AddCitation.
	stored := article.Clone()
	stored.Citations = r.articles[i].Citations
	stored.CreatedAt = r.articles[i].CreatedAt
	stored.UpdatedAt = time.Now()
	r.articles[i] = stored
	return nil
}

func (r *memoryArticleRepository) AddCitation(ctx context.Context, articleID string, citation *models.Citation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(articleID)
	if i < 0 {
		return models.ErrorNotFound{Message: "article not found"}
	}

	citation.ArticleID = articleID
	citation.CreatedAt = time.Now()
	c := *citation
	c.Authors = append([]string(nil), citation.Authors...)
	r.articles[i].Citations = append(r.articles[i].Citations, c)
	return nil
}

func (r *memoryArticleRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.articles)), nil
}

func (r *memoryArticleRepository) indexOf(id string) int {
	for i := range r.articles {
		if r.articles[i].ID == id {
			return i
		}
	}
	return -1
}
