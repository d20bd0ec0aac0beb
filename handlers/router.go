package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scholar-catalog/middleware"
)

// NewRouter builds the API engine: health and metrics endpoints plus the
// article routes under /api/v1.
func NewRouter(articleHandler *ArticleHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	RegisterRoutes(v1, articleHandler)

	return router
}

// RegisterRoutes mounts the article endpoints on rg.
func RegisterRoutes(rg *gin.RouterGroup, articleHandler *ArticleHandler) {
	articles := rg.Group("/articles")
	{
		articles.GET("", articleHandler.GetArticles)
		articles.POST("", articleHandler.CreateArticle)
		articles.GET("/:id", articleHandler.GetArticle)
		articles.PUT("/:id", articleHandler.UpdateArticle)
		articles.GET("/:id/citations", articleHandler.GetCitations)
		articles.POST("/:id/citations", articleHandler.AddCitation)
	}
}
