package repositories

import (
	"math/rand"

	"geniusinvert/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	CreateWithVersion(article *models.Article) error
	UpdateWithVersion(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetAll() ([]models.Article, error)
	GetList(params models.ArticleListParams, perPage int) ([]models.Article, int64, error)
	GetRecent(limit int) ([]models.Article, error)
	GetRandom() (*models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// CreateWithVersion persists the article together with version 1 of its
// content. Both rows commit or neither does.
func (r *articleRepository) CreateWithVersion(article *models.Article) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return err
		}
		return appendVersion(tx, article)
	})
}

// UpdateWithVersion overwrites the article row and snapshots its content
// as the next version inside the same transaction.
func (r *articleRepository) UpdateWithVersion(article *models.Article) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(article).Error; err != nil {
			return err
		}
		return appendVersion(tx, article)
	})
}

// appendVersion inserts a snapshot numbered max(version)+1 for the article.
// Numbers are assigned at commit time and never recomputed afterwards.
func appendVersion(tx *gorm.DB, article *models.Article) error {
	var current int
	err := tx.Model(&models.ArticleVersion{}).
		Where("article_id = ?", article.ID).
		Select("COALESCE(MAX(version), 0)").
		Scan(&current).Error
	if err != nil {
		return err
	}

	version := &models.ArticleVersion{
		ArticleID: article.ID,
		Content:   article.Content,
		Version:   current + 1,
	}
	return tx.Create(version).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("id asc").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetList(params models.ArticleListParams, perPage int) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{})

	if params.Letter != "" {
		query = query.Where("upper(left(title, 1)) = upper(?)", params.Letter)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (params.Page - 1) * perPage
	err := query.Order("title asc, id asc").
		Offset(offset).
		Limit(perPage).
		Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) GetRecent(limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("created_at desc").Limit(limit).Find(&articles).Error
	return articles, err
}

// GetRandom picks uniformly among existing rows via a random offset into
// the current count. Returns nil without error on an empty store.
func (r *articleRepository) GetRandom() (*models.Article, error) {
	var count int64
	if err := r.db.Model(&models.Article{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	var article models.Article
	err := r.db.Order("id asc").Offset(rand.Intn(int(count))).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}
