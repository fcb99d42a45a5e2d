package handlers

import (
	"sort"

	"geniusinvert/helper"
	"geniusinvert/middleware"
	"geniusinvert/models"
	"geniusinvert/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// In-memory repositories backing the handler tests, behaving like the
// gorm ones: article writes always commit together with a version row.

type memStore struct {
	articles map[uint]models.Article
	versions map[uint][]models.ArticleVersion
	nextID   uint
}

func newMemStore() *memStore {
	return &memStore{
		articles: map[uint]models.Article{},
		versions: map[uint][]models.ArticleVersion{},
	}
}

func (s *memStore) appendVersion(articleID uint, content string) {
	current := 0
	for _, v := range s.versions[articleID] {
		if v.Version > current {
			current = v.Version
		}
	}
	s.versions[articleID] = append(s.versions[articleID], models.ArticleVersion{
		ArticleID: articleID,
		Content:   content,
		Version:   current + 1,
	})
}

type memArticleRepo struct {
	s *memStore
}

func (r *memArticleRepo) CreateWithVersion(article *models.Article) error {
	r.s.nextID++
	article.ID = r.s.nextID
	r.s.articles[article.ID] = *article
	r.s.appendVersion(article.ID, article.Content)
	return nil
}

func (r *memArticleRepo) UpdateWithVersion(article *models.Article) error {
	r.s.articles[article.ID] = *article
	r.s.appendVersion(article.ID, article.Content)
	return nil
}

func (r *memArticleRepo) GetByID(id uint) (*models.Article, error) {
	article, ok := r.s.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}

func (r *memArticleRepo) GetAll() ([]models.Article, error) {
	all := make([]models.Article, 0, len(r.s.articles))
	for _, a := range r.s.articles {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *memArticleRepo) GetList(params models.ArticleListParams, perPage int) ([]models.Article, int64, error) {
	all, _ := r.GetAll()
	return all, int64(len(all)), nil
}

func (r *memArticleRepo) GetRecent(limit int) ([]models.Article, error) {
	all, _ := r.GetAll()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *memArticleRepo) GetRandom() (*models.Article, error) {
	all, _ := r.GetAll()
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

type memVersionRepo struct {
	s *memStore
}

func (r *memVersionRepo) GetByArticleID(articleID uint) ([]models.ArticleVersion, error) {
	versions := append([]models.ArticleVersion(nil), r.s.versions[articleID]...)
	sort.Slice(versions, func(i, j int) bool { return versions[i].Version > versions[j].Version })
	return versions, nil
}

func newTestRouter() (*gin.Engine, services.ArticleService, *memStore) {
	gin.SetMode(gin.TestMode)

	store := newMemStore()
	articleService := services.NewArticleService(&memArticleRepo{s: store}, &memVersionRepo{s: store})
	httpHelper := helper.NewHTTPHelper()

	articleHandler := NewArticleHandler(articleService, httpHelper)
	apiHandler := NewAPIHandler(articleService, httpHelper)

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.html")

	web := router.Group("/")
	web.Use(middleware.Locale())
	{
		web.GET("", articleHandler.Index)
		web.GET("articles", articleHandler.ListArticles)
		web.GET("article/new", articleHandler.NewArticleForm)
		web.POST("article/new", articleHandler.CreateArticle)
		web.GET("article/:id", articleHandler.ViewArticle)
		web.GET("article/:id/edit", articleHandler.EditArticleForm)
		web.POST("article/:id/edit", articleHandler.UpdateArticle)
	}

	api := router.Group("/api")
	{
		api.GET("/articles", apiHandler.ListArticles)
		api.GET("/articles/:id", apiHandler.GetArticle)
		api.POST("/articles", apiHandler.CreateArticle)
	}

	return router, articleService, store
}
