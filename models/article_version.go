package models

import (
	"time"
)

// ArticleVersion is an immutable content snapshot taken on every edit.
// Version numbers start at 1 and grow by one per commit, never reused.
type ArticleVersion struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;index"`
	Article   *Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Version   int       `json:"version" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
