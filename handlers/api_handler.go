package handlers

import (
	"net/http"

	"geniusinvert/helper"
	"geniusinvert/models"
	"geniusinvert/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

// APIHandler is the read-mostly JSON boundary. Create is the only write;
// there are no update or delete endpoints here.
type APIHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewAPIHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *APIHandler {
	return &APIHandler{articleService: articleService, Helper: httpHelper}
}

func (h *APIHandler) ListArticles(c *gin.Context) {
	articles, err := h.articleService.GetAllArticles()
	if err != nil {
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	responses := make([]models.ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, models.NewArticleResponse(&articles[i]))
	}

	c.JSON(http.StatusOK, responses)
}

func (h *APIHandler) GetArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article id", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.GetArticle(id)
	if err != nil {
		if h.Helper.GetStatusCode(err) == http.StatusNotFound {
			h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	c.JSON(http.StatusOK, models.NewArticleResponse(article))
}

func (h *APIHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.Helper.Validate.Struct(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.CreateArticle(models.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Ratings: req.RatingValues(),
	})
	if err != nil {
		if h.Helper.GetStatusCode(err) == http.StatusBadRequest {
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendInternalError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	c.JSON(http.StatusCreated, models.NewArticleResponse(article))
}
