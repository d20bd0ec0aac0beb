package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/go-playground/validator.v9"

	"scholar-catalog/helper"
	"scholar-catalog/models"
	"scholar-catalog/repositories"
	"scholar-catalog/seed"
)

func newService() ArticleService {
	repo := repositories.NewMemoryArticleRepository(seed.MockArticles()...)
	return NewArticleService(repo, helper.NewValidator())
}

func strPtr(s string) *string { return &s }

func TestCreateArticle(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	article, err := svc.CreateArticle(ctx, models.ArticleInput{
		Title:           "  X ",
		Authors:         []string{"A", " B ", ""},
		Abstract:        "Y",
		PublicationDate: "2024-01-01",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, article.ID)
	assert.Equal(t, "X", article.Title)
	assert.Equal(t, []string{"A", "B"}, article.Authors)
	assert.Empty(t, article.Citations)

	page, err := svc.GetArticles(ctx, models.Filter{})
	require.NoError(t, err)
	assert.Equal(t, article.ID, page.Items[0].ID)
	assert.Equal(t, 51, page.TotalItems)
	assert.Equal(t, 6, page.TotalPages)
}

func TestCreateArticle_Validation(t *testing.T) {
	_, err := newService().CreateArticle(context.Background(), models.ArticleInput{
		Title:           "X",
		Authors:         []string{" "},
		Abstract:        "Y",
		PublicationDate: "2024-01-01",
	})

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "authors", validationErrors[0].Field())
}

func TestGetArticles_Defaults(t *testing.T) {
	page, err := newService().GetArticles(context.Background(), models.Filter{Page: 0, PageSize: -3})
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 50, page.TotalItems)
	assert.Equal(t, 5, page.TotalPages)
	assert.Len(t, page.Items, 10)
}

func TestGetArticles_EmptyResultIsNotNil(t *testing.T) {
	page, err := newService().GetArticles(context.Background(), models.Filter{Query: "no such paper"})
	require.NoError(t, err)

	assert.NotNil(t, page.Items)
	assert.Zero(t, page.TotalItems)
	assert.Zero(t, page.TotalPages)
}

func TestUpdateArticle_Partial(t *testing.T) {
	svc := newService()

	article, err := svc.UpdateArticle(context.Background(), "3", models.ArticleUpdate{Title: strPtr("X2")})
	require.NoError(t, err)

	assert.Equal(t, "X2", article.Title)
	assert.Equal(t, []string{"Author A2", "Author B2"}, article.Authors)
	assert.Len(t, article.Citations, 2)
}

func TestUpdateArticle_CannotBlankRequiredField(t *testing.T) {
	_, err := newService().UpdateArticle(context.Background(), "3", models.ArticleUpdate{Abstract: strPtr("   ")})

	var validationErrors validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrors)
}

func TestUpdateArticle_NotFound(t *testing.T) {
	_, err := newService().UpdateArticle(context.Background(), "missing", models.ArticleUpdate{Title: strPtr("X")})

	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}

func TestAddCitation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	article, err := svc.AddCitation(ctx, "1", models.CitationInput{
		Title:   "Cit Title",
		Authors: []string{"Cit Author"},
		Year:    2024,
		DOI:     "10.1000/cit",
	})
	require.NoError(t, err)
	require.Len(t, article.Citations, 3)
	assert.Equal(t, "Cit Title", article.Citations[2].Title)
	assert.NotEmpty(t, article.Citations[2].ID)

	citations, err := svc.GetCitations(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, citations, 3)
}

func TestAddCitation_Validation(t *testing.T) {
	_, err := newService().AddCitation(context.Background(), "1", models.CitationInput{Title: "T", Authors: []string{"A"}})

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "year", validationErrors[0].Field())
}

func TestGetCitations_NotFound(t *testing.T) {
	_, err := newService().GetCitations(context.Background(), "missing")

	assert.ErrorAs(t, err, &models.ErrorNotFound{})
}
