package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scholar-catalog/models"
	"scholar-catalog/seed"
)

// PostgresRepositoryTestSuite runs against a live database and is skipped
// unless DB_HOST is set.
type PostgresRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo ArticleRepository
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (suite *PostgresRepositoryTestSuite) SetupSuite() {
	host := os.Getenv("DB_HOST")
	if host == "" {
		suite.T().Skip("DB_HOST not set; skipping PostgreSQL repository tests")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host,
		getenv("DB_PORT", "5432"),
		getenv("DB_USER", "myuser"),
		getenv("DB_PASSWORD", "mypassword"),
		getenv("DB_NAME", "catalog_test_db"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("Failed to connect to test database:", err)
	}
	suite.Require().NoError(db.AutoMigrate(&models.Article{}, &models.Citation{}))

	suite.db = db
	suite.repo = NewArticleRepository(db)
}

func (suite *PostgresRepositoryTestSuite) TearDownSuite() {
	if suite.db == nil {
		return
	}
	suite.db.Exec("DROP TABLE IF EXISTS citations")
	suite.db.Exec("DROP TABLE IF EXISTS articles")
}

func (suite *PostgresRepositoryTestSuite) SetupTest() {
	suite.db.Exec("TRUNCATE TABLE citations, articles CASCADE")

	_, err := seed.Apply(context.Background(), suite.repo, seed.MockArticles())
	suite.Require().NoError(err)
}

func (suite *PostgresRepositoryTestSuite) TestPagination() {
	items, total, err := suite.repo.GetList(context.Background(), models.Filter{Sort: models.SortByDate, Order: models.OrderAsc, Page: 5, PageSize: 10})
	suite.NoError(err)
	suite.Equal(int64(50), total)
	suite.Len(items, 10)
}

func (suite *PostgresRepositoryTestSuite) TestHugePageSize() {
	items, total, err := suite.repo.GetList(context.Background(), models.Filter{Page: 3, PageSize: 1 << 62})
	suite.NoError(err)
	suite.Equal(int64(50), total)
	suite.Empty(items)
}

func (suite *PostgresRepositoryTestSuite) TestQueryAndAuthor() {
	_, total, err := suite.repo.GetList(context.Background(), models.Filter{Query: "paper 1."})
	suite.NoError(err)
	suite.Equal(int64(1), total)

	_, total, err = suite.repo.GetList(context.Background(), models.Filter{Author: "author b4"})
	suite.NoError(err)
	suite.Equal(int64(11), total)
}

func (suite *PostgresRepositoryTestSuite) TestGetUpdateAndCite() {
	ctx := context.Background()

	article, err := suite.repo.GetByID(ctx, "1")
	suite.Require().NoError(err)
	suite.Len(article.Citations, 2)

	article.Title = "X2"
	suite.NoError(suite.repo.Update(ctx, article))

	suite.NoError(suite.repo.AddCitation(ctx, "1", &models.Citation{ID: "1-c3", Title: "New", Authors: []string{"A"}, Year: 2024}))

	got, err := suite.repo.GetByID(ctx, "1")
	suite.Require().NoError(err)
	suite.Equal("X2", got.Title)
	suite.Len(got.Citations, 3)

	_, err = suite.repo.GetByID(ctx, "missing")
	suite.ErrorAs(err, &models.ErrorNotFound{})
}

func TestPostgresRepositorySuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
