package repositories

import (
	"geniusinvert/models"

	"gorm.io/gorm"
)

type ArticleVersionRepository interface {
	GetByArticleID(articleID uint) ([]models.ArticleVersion, error)
}

type articleVersionRepository struct {
	db *gorm.DB
}

func NewArticleVersionRepository(db *gorm.DB) ArticleVersionRepository {
	return &articleVersionRepository{db: db}
}

func (r *articleVersionRepository) GetByArticleID(articleID uint) ([]models.ArticleVersion, error) {
	var versions []models.ArticleVersion
	err := r.db.Where("article_id = ?", articleID).
		Order("version desc").
		Find(&versions).Error
	return versions, err
}
