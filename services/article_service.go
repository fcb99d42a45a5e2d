package services

import (
	"errors"
	"math"
	"strings"

	"geniusinvert/models"
	"geniusinvert/repositories"

	"gorm.io/gorm"
)

// PerPage is how many articles one listing page holds.
const PerPage = 10

type ArticleService interface {
	CreateArticle(input models.ArticleInput) (*models.Article, error)
	UpdateArticle(id uint, input models.ArticleInput) (*models.Article, error)
	GetArticle(id uint) (*models.Article, error)
	GetAllArticles() ([]models.Article, error)
	ListPage(params models.ArticleListParams) (*models.ArticlePage, error)
	RecentArticles(limit int) ([]models.Article, error)
	RandomArticle() (*models.Article, error)
	GetArticleVersions(articleID uint) ([]models.ArticleVersion, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	versionRepo repositories.ArticleVersionRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, versionRepo repositories.ArticleVersionRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		versionRepo: versionRepo,
	}
}

// CreateArticle validates the input, coerces the rating fields and commits
// the article together with version 1 of its content.
func (s *articleService) CreateArticle(input models.ArticleInput) (*models.Article, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:   input.Title,
		Content: input.Content,
	}
	models.ApplyRatings(article, input.Ratings)

	if err := s.articleRepo.CreateWithVersion(article); err != nil {
		return nil, err
	}

	return article, nil
}

// UpdateArticle overwrites title, content and ratings of an existing
// article and commits the next version snapshot.
func (s *articleService) UpdateArticle(id uint, input models.ArticleInput) (*models.Article, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	article, err := s.GetArticle(id)
	if err != nil {
		return nil, err
	}

	article.Title = input.Title
	article.Content = input.Content
	models.ApplyRatings(article, input.Ratings)

	if err := s.articleRepo.UpdateWithVersion(article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetAllArticles() ([]models.Article, error) {
	return s.articleRepo.GetAll()
}

// ListPage returns one page of the title-ordered listing, optionally
// restricted to titles starting with the given letter.
func (s *articleService) ListPage(params models.ArticleListParams) (*models.ArticlePage, error) {
	if params.Page < 1 {
		params.Page = 1
	}

	articles, total, err := s.articleRepo.GetList(params, PerPage)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(PerPage)))
	if totalPages < 1 {
		totalPages = 1
	}

	return &models.ArticlePage{
		Articles:   articles,
		Page:       params.Page,
		PerPage:    PerPage,
		TotalCount: total,
		TotalPages: totalPages,
		Letter:     params.Letter,
	}, nil
}

func (s *articleService) RecentArticles(limit int) ([]models.Article, error) {
	return s.articleRepo.GetRecent(limit)
}

func (s *articleService) RandomArticle() (*models.Article, error) {
	return s.articleRepo.GetRandom()
}

func (s *articleService) GetArticleVersions(articleID uint) ([]models.ArticleVersion, error) {
	if _, err := s.GetArticle(articleID); err != nil {
		return nil, err
	}
	return s.versionRepo.GetByArticleID(articleID)
}

func validateInput(input models.ArticleInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return models.ErrorValidation{Message: "title is required"}
	}
	if strings.TrimSpace(input.Content) == "" {
		return models.ErrorValidation{Message: "content is required"}
	}
	return nil
}
