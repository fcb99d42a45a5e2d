package models

import (
	"time"
)

type Article struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Characteristics. The two numeric ones are nullable on purpose:
	// malformed input degrades to NULL instead of failing the save.
	LossIndex           *string  `json:"loss_index" gorm:"size:50"`
	MemePotential       *float64 `json:"meme_potential"`
	RealityDisruption   *int     `json:"reality_disruption"`
	LegalRisk           *string  `json:"legal_risk" gorm:"size:50"`
	EthicalToxicity     *string  `json:"ethical_toxicity" gorm:"size:50"`
	Scalability         *string  `json:"scalability" gorm:"size:50"`
	UserRetention       *string  `json:"user_retention" gorm:"size:50"`
	ImplementationCost  *string  `json:"implementation_cost" gorm:"size:50"`
	SideEffectIndex     *string  `json:"side_effect_index" gorm:"size:50"`
	InverseGeniusRating *string  `json:"inverse_genius_rating" gorm:"size:50"`

	Versions []ArticleVersion `json:"versions,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}
