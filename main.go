package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"scholar-catalog/config"
	"scholar-catalog/handlers"
	"scholar-catalog/helper"
	"scholar-catalog/models"
	"scholar-catalog/repositories"
	"scholar-catalog/seed"
	"scholar-catalog/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	// Initialize repositories
	var articleRepo repositories.ArticleRepository
	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := config.InitDB(cfg.DB)
		if err != nil {
			log.Fatal(err)
		}
		articleRepo = repositories.NewArticleRepository(db)
	case config.StorageMemory:
		articleRepo = repositories.NewMemoryArticleRepository()
	default:
		log.Fatalf("Unknown STORAGE %q", cfg.Storage)
	}

	if err := seedCatalog(context.Background(), cfg, articleRepo); err != nil {
		log.Fatal(err)
	}

	// Initialize services and handlers
	validator := helper.NewValidator()
	articleService := services.NewArticleService(articleRepo, validator)
	articleHandler := handlers.NewArticleHandler(articleService, helper.NewHTTPHelper(validator))

	router := handlers.NewRouter(articleHandler)

	log.Printf("Server starting on port %s (storage: %s)", cfg.Port, cfg.Storage)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

// seedCatalog fills an empty repository from SEED_FILE, or with the
// generated demo catalog when SEED_MOCK is set.
func seedCatalog(ctx context.Context, cfg config.Config, repo repositories.ArticleRepository) error {
	var articles []models.Article
	switch {
	case cfg.SeedFile != "":
		loaded, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		articles = loaded
	case cfg.SeedMock:
		articles = seed.MockArticles()
	default:
		return nil
	}

	n, err := seed.Apply(ctx, repo, articles)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("Seeded %d articles", n)
	}
	return nil
}
