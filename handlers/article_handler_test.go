package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"geniusinvert/models"

	"github.com/stretchr/testify/assert"
)

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebCreateArticle(t *testing.T) {
	router, _, store := newTestRouter()

	w := postForm(router, "/article/new", url.Values{
		"title":              {"Test"},
		"content":            {"Content"},
		"meme_potential":     {"0.5"},
		"reality_disruption": {"42"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/article/1", w.Header().Get("Location"))

	article := store.articles[1]
	assert.Equal(t, "Test", article.Title)
	assert.Equal(t, 0.5, *article.MemePotential)
	assert.Equal(t, 42, *article.RealityDisruption)
	assert.Len(t, store.versions[1], 1)
}

func TestWebCreateArticleInvalidNumbers(t *testing.T) {
	router, _, store := newTestRouter()

	w := postForm(router, "/article/new", url.Values{
		"title":              {"Bad"},
		"content":            {"Bad"},
		"meme_potential":     {"Курический"},
		"reality_disruption": {"blah"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	article := store.articles[1]
	assert.Nil(t, article.MemePotential)
	assert.Nil(t, article.RealityDisruption)
}

func TestWebCreateArticleMissingTitle(t *testing.T) {
	router, _, store := newTestRouter()

	w := postForm(router, "/article/new", url.Values{
		"content": {"Content"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.articles)
}

func TestWebEditArticle(t *testing.T) {
	router, svc, store := newTestRouter()

	created, err := svc.CreateArticle(models.ArticleInput{Title: "Before", Content: "v1"})
	assert.NoError(t, err)

	w := postForm(router, "/article/1/edit", url.Values{
		"title":   {"After"},
		"content": {"v2"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/article/1", w.Header().Get("Location"))

	article := store.articles[created.ID]
	assert.Equal(t, "After", article.Title)
	assert.Equal(t, "v2", article.Content)

	versions := store.versions[created.ID]
	assert.Len(t, versions, 2)
	assert.Equal(t, 2, versions[1].Version)
	assert.Equal(t, "v2", versions[1].Content)
}

func TestWebEditArticleNotFound(t *testing.T) {
	router, _, _ := newTestRouter()

	w := postForm(router, "/article/42/edit", url.Values{
		"title":   {"T"},
		"content": {"C"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebViewArticleRendersMarkdown(t *testing.T) {
	router, svc, _ := newTestRouter()

	_, err := svc.CreateArticle(models.ArticleInput{
		Title:   "Formatted",
		Content: "# Heading\n\nSome *emphasis*.",
	})
	assert.NoError(t, err)

	w := getJSON(router, "/article/1")
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Heading</h1>")
	assert.Contains(t, body, "<em>emphasis</em>")
}

func TestWebViewArticleNotFound(t *testing.T) {
	router, _, _ := newTestRouter()

	w := getJSON(router, "/article/7")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebIndexLocalized(t *testing.T) {
	router, _, _ := newTestRouter()

	w := getJSON(router, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Genius Inverted Wiki")

	w = getJSON(router, "/?lang=ru")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Гениально-инвертированная Вики")
}

func TestFormAndAPIStoreIdenticalRatings(t *testing.T) {
	formRouter, _, formStore := newTestRouter()
	apiRouter, _, apiStore := newTestRouter()

	w := postForm(formRouter, "/article/new", url.Values{
		"title":              {"Same"},
		"content":            {"Body"},
		"meme_potential":     {"0.7"},
		"reality_disruption": {"13"},
		"loss_index":         {"None"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	w = postJSON(apiRouter, "/api/articles", map[string]interface{}{
		"title":              "Same",
		"content":            "Body",
		"meme_potential":     "0.7",
		"reality_disruption": "13",
		"loss_index":         "None",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	fromForm := formStore.articles[1]
	fromAPI := apiStore.articles[1]
	assert.Equal(t, fromForm.MemePotential, fromAPI.MemePotential)
	assert.Equal(t, fromForm.RealityDisruption, fromAPI.RealityDisruption)
	assert.Equal(t, fromForm.LossIndex, fromAPI.LossIndex)
}
