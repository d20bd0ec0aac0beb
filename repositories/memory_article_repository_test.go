package repositories

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholar-catalog/models"
	"scholar-catalog/seed"
)

func newSeededRepo() ArticleRepository {
	return NewMemoryArticleRepository(seed.MockArticles()...)
}

func TestMemoryRepository_PaginationWindow(t *testing.T) {
	repo := newSeededRepo()

	items, total, err := repo.GetList(context.Background(), models.Filter{Page: 3, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(50), total)
	require.Len(t, items, 10)
	assert.Equal(t, "21", items[0].ID)
	assert.Equal(t, "30", items[9].ID)

	meta := models.NewPaginationMeta(3, 10, int(total))
	assert.Equal(t, 5, meta.TotalPages)
}

func TestMemoryRepository_PagePastEnd(t *testing.T) {
	repo := newSeededRepo()

	items, total, err := repo.GetList(context.Background(), models.Filter{Page: 9, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(50), total)
	assert.Empty(t, items)
}

func TestMemoryRepository_HugePageSize(t *testing.T) {
	repo := newSeededRepo()

	items, total, err := repo.GetList(context.Background(), models.Filter{Page: 3, PageSize: 1 << 62})
	require.NoError(t, err)
	assert.Equal(t, int64(50), total)
	assert.Empty(t, items)

	items, _, err = repo.GetList(context.Background(), models.Filter{Page: 1, PageSize: math.MaxInt})
	require.NoError(t, err)
	assert.Len(t, items, 50)

	items, _, err = repo.GetList(context.Background(), models.Filter{Page: math.MaxInt, PageSize: math.MaxInt})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryRepository_QueryMatchesTitleOrAbstract(t *testing.T) {
	repo := NewMemoryArticleRepository(
		models.Article{ID: "1", Title: "Deep Learning", Abstract: "nets"},
		models.Article{ID: "2", Title: "Shallow", Abstract: "Goes DEEP into graphs"},
		models.Article{ID: "3", Title: "Unrelated", Abstract: "nothing here"},
	)

	items, total, err := repo.GetList(context.Background(), models.Filter{Query: "deep"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	for _, a := range items {
		text := strings.ToLower(a.Title + " " + a.Abstract)
		assert.Contains(t, text, "deep")
	}
}

func TestMemoryRepository_AuthorSubstring(t *testing.T) {
	repo := newSeededRepo()

	items, total, err := repo.GetList(context.Background(), models.Filter{Author: "author b4"})
	require.NoError(t, err)

	// B4 and B40..B49
	assert.Equal(t, int64(11), total)
	assert.Len(t, items, 10)
}

func TestMemoryRepository_DateRangeInclusive(t *testing.T) {
	repo := NewMemoryArticleRepository(
		models.Article{ID: "1", PublicationDate: "2020-01-01"},
		models.Article{ID: "2", PublicationDate: "2020-06-15"},
		models.Article{ID: "3", PublicationDate: "2020-12-31"},
		models.Article{ID: "4", PublicationDate: "2021-01-01"},
	)

	items, _, err := repo.GetList(context.Background(), models.Filter{FromDate: "2020-06-15", ToDate: "2020-12-31"})
	require.NoError(t, err)

	ids := []string{}
	for _, a := range items {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"2", "3"}, ids)
}

func TestMemoryRepository_SortTitleDesc(t *testing.T) {
	repo := NewMemoryArticleRepository(
		models.Article{ID: "1", Title: "beta"},
		models.Article{ID: "2", Title: "Alpha"},
		models.Article{ID: "3", Title: "gamma"},
	)

	items, _, err := repo.GetList(context.Background(), models.Filter{Sort: models.SortByTitle, Order: models.OrderDesc})
	require.NoError(t, err)

	titles := []string{items[0].Title, items[1].Title, items[2].Title}
	assert.Equal(t, []string{"gamma", "beta", "Alpha"}, titles)
}

func TestMemoryRepository_SortDateAsc(t *testing.T) {
	repo := newSeededRepo()

	items, _, err := repo.GetList(context.Background(), models.Filter{Sort: models.SortByDate, Order: models.OrderAsc, PageSize: 50})
	require.NoError(t, err)

	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].PublicationDate, items[i].PublicationDate)
	}
}

func TestMemoryRepository_CreatePrependsAndCopies(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	article := &models.Article{ID: "new", Title: "X", Authors: []string{"A", "B"}, PublicationDate: "2024-01-01"}
	require.NoError(t, repo.Create(ctx, article))
	article.Authors[0] = "mutated"

	items, total, err := repo.GetList(ctx, models.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(51), total)
	assert.Equal(t, "new", items[0].ID)
	assert.Equal(t, []string{"A", "B"}, items[0].Authors)

	err = repo.Create(ctx, &models.Article{ID: "new"})
	assert.ErrorAs(t, err, &models.ErrorBadRequest{})
}

func TestMemoryRepository_GetByIDNotFound(t *testing.T) {
	_, err := newSeededRepo().GetByID(context.Background(), "nope")

	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}

func TestMemoryRepository_UpdateKeepsCitations(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	article, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	article.Title = "Renamed"
	article.Citations = nil
	require.NoError(t, repo.Update(ctx, article))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Len(t, got.Citations, 2)

	err = repo.Update(ctx, &models.Article{ID: "missing"})
	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}

func TestMemoryRepository_AddCitation(t *testing.T) {
	repo := newSeededRepo()
	ctx := context.Background()

	citation := &models.Citation{ID: "c9", Title: "Cit Title", Authors: []string{"Cit Author"}, Year: 2024}
	require.NoError(t, repo.AddCitation(ctx, "2", citation))

	got, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	require.Len(t, got.Citations, 3)
	assert.Equal(t, "Cit Title", got.Citations[2].Title)
	assert.Equal(t, "2", got.Citations[2].ArticleID)

	err = repo.AddCitation(ctx, "missing", &models.Citation{})
	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}

func TestMemoryRepository_Count(t *testing.T) {
	n, err := newSeededRepo().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(50), n)
}
