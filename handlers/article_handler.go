package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"geniusinvert/helper"
	"geniusinvert/middleware"
	"geniusinvert/models"
	"geniusinvert/services"

	"github.com/gin-gonic/gin"
)

// ArticleHandler serves the HTML side of the wiki: home, listing with the
// letter filter, the article view and the edit workflow.
type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: httpHelper}
}

func (h *ArticleHandler) Index(c *gin.Context) {
	recent, err := h.articleService.RecentArticles(5)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	random, err := h.articleService.RandomArticle()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"T":      middleware.Translations(c),
		"Recent": recent,
		"Random": random,
	})
}

func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.articleService.ListPage(params)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.HTML(http.StatusOK, "list.html", gin.H{
		"T":      middleware.Translations(c),
		"Page":   page,
		"Rows":   services.LetterRows(),
		"Paging": h.Helper.GeneratePaging(c, page.Page, page.PerPage, int(page.TotalCount), page.Letter),
	})
}

func (h *ArticleHandler) ViewArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := h.articleService.GetArticle(id)
	if err != nil {
		c.String(h.Helper.GetStatusCode(err), err.Error())
		return
	}

	versions, err := h.articleService.GetArticleVersions(id)
	if err != nil {
		c.String(h.Helper.GetStatusCode(err), err.Error())
		return
	}

	c.HTML(http.StatusOK, "article.html", gin.H{
		"T":        middleware.Translations(c),
		"Article":  article,
		"Rendered": helper.RenderMarkdown(article.Content),
		"Versions": versions,
	})
}

func (h *ArticleHandler) NewArticleForm(c *gin.Context) {
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"T":       middleware.Translations(c),
		"Article": &models.Article{},
	})
}

func (h *ArticleHandler) EditArticleForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := h.articleService.GetArticle(id)
	if err != nil {
		c.String(h.Helper.GetStatusCode(err), err.Error())
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{
		"T":       middleware.Translations(c),
		"Article": article,
	})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	article, err := h.articleService.CreateArticle(formInput(c))
	if err != nil {
		h.renderEditError(c, &models.Article{Title: c.PostForm("title"), Content: c.PostForm("content")}, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/article/%d", article.ID))
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := h.articleService.UpdateArticle(id, formInput(c))
	if err != nil {
		if _, ok := err.(models.ErrorNotFound); ok {
			c.String(http.StatusNotFound, err.Error())
			return
		}
		h.renderEditError(c, &models.Article{ID: id, Title: c.PostForm("title"), Content: c.PostForm("content")}, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/article/%d", article.ID))
}

func (h *ArticleHandler) renderEditError(c *gin.Context, article *models.Article, err error) {
	c.HTML(h.Helper.GetStatusCode(err), "edit.html", gin.H{
		"T":       middleware.Translations(c),
		"Article": article,
		"Error":   err.Error(),
	})
}

// formInput gathers the edit form into the shared service input. Every
// rating field goes through the same coercion table the API uses; a field
// missing from the post body comes through as nil.
func formInput(c *gin.Context) models.ArticleInput {
	ratings := make(map[string]interface{}, len(models.RatingFieldNames))
	for _, name := range models.RatingFieldNames {
		if value, ok := c.GetPostForm(name); ok {
			ratings[name] = value
		} else {
			ratings[name] = nil
		}
	}

	return models.ArticleInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Ratings: ratings,
	}
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
