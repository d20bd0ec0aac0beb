package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scholar-catalog/filter"
	"scholar-catalog/helper"
	"scholar-catalog/models"
	"scholar-catalog/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: httpHelper}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.ArticleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// GetArticles lists articles. Query parameters go through the filter codec
// so malformed paging values fall back to their defaults instead of failing.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	f := filter.Decode(c.Request.URL.Query())

	page, err := h.articleService.GetArticles(c.Request.Context(), f)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req models.ArticleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) GetCitations(c *gin.Context) {
	citations, err := h.articleService.GetCitations(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, citations)
}

func (h *ArticleHandler) AddCitation(c *gin.Context) {
	var req models.CitationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.AddCitation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}
