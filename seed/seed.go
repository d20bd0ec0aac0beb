// Package seed provides the demo catalog served by the in-memory backend and
// loads article fixtures from YAML files.
package seed

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"scholar-catalog/models"
)

// MockArticleCount is the size of the generated demo catalog.
const MockArticleCount = 50

// MockArticles generates the demo catalog. Article i (1-based) has id "i",
// two authors and a publication date cycling through 2020-2024.
func MockArticles() []models.Article {
	articles := make([]models.Article, 0, MockArticleCount)
	for i := 0; i < MockArticleCount; i++ {
		n := i + 1
		id := strconv.Itoa(n)
		date := time.Date(2020+i%5, time.Month(i%12+1), i%28+1, 0, 0, 0, 0, time.UTC)
		articles = append(articles, models.Article{
			ID:              id,
			Title:           fmt.Sprintf("Academic Paper Title %d: Advances in Computing", n),
			Authors:         []string{fmt.Sprintf("Author A%d", i), fmt.Sprintf("Author B%d", i)},
			Abstract:        fmt.Sprintf("This is the abstract for paper %d. It discusses various topics in computer science and software engineering.", n),
			PublicationDate: date.Format(models.DateLayout),
			DOI:             fmt.Sprintf("10.1000/xyz.%d", n),
			Citations:       mockCitations(id),
		})
	}
	return articles
}

func mockCitations(articleID string) []models.Citation {
	return []models.Citation{
		{
			ID:        articleID + "-c1",
			ArticleID: articleID,
			Title:     "Previous Work on X",
			Authors:   []string{"Old Guy"},
			Year:      2018,
			DOI:       "10.1000/old.1",
		},
		{
			ID:        articleID + "-c2",
			ArticleID: articleID,
			Title:     "Foundational Theory",
			Authors:   []string{"Turing"},
			Year:      1936,
		},
	}
}

type fixtureCitation struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Authors []string `yaml:"authors"`
	Year    int      `yaml:"year"`
	DOI     string   `yaml:"doi"`
}

type fixtureArticle struct {
	ID              string            `yaml:"id"`
	Title           string            `yaml:"title"`
	Authors         []string          `yaml:"authors"`
	Abstract        string            `yaml:"abstract"`
	PublicationDate string            `yaml:"publicationDate"`
	DOI             string            `yaml:"doi"`
	Citations       []fixtureCitation `yaml:"citations"`
}

type fixtureFile struct {
	Articles []fixtureArticle `yaml:"articles"`
}

// Parse decodes a YAML fixture document with a top-level "articles" list.
func Parse(data []byte) ([]models.Article, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	articles := make([]models.Article, 0, len(file.Articles))
	for i, fa := range file.Articles {
		if fa.ID == "" {
			return nil, fmt.Errorf("fixture article %d: missing id", i+1)
		}
		a := models.Article{
			ID:              fa.ID,
			Title:           fa.Title,
			Authors:         fa.Authors,
			Abstract:        fa.Abstract,
			PublicationDate: fa.PublicationDate,
			DOI:             fa.DOI,
		}
		for j, fc := range fa.Citations {
			id := fc.ID
			if id == "" {
				id = fmt.Sprintf("%s-c%d", fa.ID, j+1)
			}
			a.Citations = append(a.Citations, models.Citation{
				ID:        id,
				ArticleID: fa.ID,
				Title:     fc.Title,
				Authors:   fc.Authors,
				Year:      fc.Year,
				DOI:       fc.DOI,
			})
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// LoadFile reads and parses a YAML fixture file.
func LoadFile(path string) ([]models.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return Parse(data)
}

// Store is the subset of an article repository needed for seeding.
type Store interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, article *models.Article) error
}

// Apply inserts articles into an empty store. It returns the number of
// inserted articles; a store that already holds data is left untouched.
func Apply(ctx context.Context, store Store, articles []models.Article) (int, error) {
	count, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	// Insert in reverse so stores that list newest first show article 1 first.
	for i := len(articles) - 1; i >= 0; i-- {
		a := articles[i].Clone()
		if err := store.Create(ctx, &a); err != nil {
			return len(articles) - 1 - i, fmt.Errorf("creating article %s: %w", a.ID, err)
		}
	}
	return len(articles), nil
}
