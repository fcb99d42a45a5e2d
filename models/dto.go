package models

import (
	"time"
)

// CreateArticleRequest is the JSON API create payload. The rating fields
// are untyped on purpose: callers may send strings, numbers or null, and
// the coercion table decides what actually gets stored.
type CreateArticleRequest struct {
	Title               string      `json:"title" validate:"required"`
	Content             string      `json:"content" validate:"required"`
	LossIndex           interface{} `json:"loss_index"`
	MemePotential       interface{} `json:"meme_potential"`
	RealityDisruption   interface{} `json:"reality_disruption"`
	LegalRisk           interface{} `json:"legal_risk"`
	EthicalToxicity     interface{} `json:"ethical_toxicity"`
	Scalability         interface{} `json:"scalability"`
	UserRetention       interface{} `json:"user_retention"`
	ImplementationCost  interface{} `json:"implementation_cost"`
	SideEffectIndex     interface{} `json:"side_effect_index"`
	InverseGeniusRating interface{} `json:"inverse_genius_rating"`
}

// RatingValues maps the request's rating fields by their wire names.
func (r *CreateArticleRequest) RatingValues() map[string]interface{} {
	return map[string]interface{}{
		"loss_index":            r.LossIndex,
		"meme_potential":        r.MemePotential,
		"reality_disruption":    r.RealityDisruption,
		"legal_risk":            r.LegalRisk,
		"ethical_toxicity":      r.EthicalToxicity,
		"scalability":           r.Scalability,
		"user_retention":        r.UserRetention,
		"implementation_cost":   r.ImplementationCost,
		"side_effect_index":     r.SideEffectIndex,
		"inverse_genius_rating": r.InverseGeniusRating,
	}
}

// ArticleInput is what both edit entry points hand to the service.
type ArticleInput struct {
	Title   string
	Content string
	Ratings map[string]interface{}
}

type ArticleListParams struct {
	Page   int    `form:"page,default=1"`
	Letter string `form:"letter"`
}

// ArticlePage is one slice of the filtered, title-ordered listing.
type ArticlePage struct {
	Articles   []Article
	Page       int
	PerPage    int
	TotalCount int64
	TotalPages int
	Letter     string
}

// ArticleResponse is the public JSON shape of an article.
type ArticleResponse struct {
	ID                  uint     `json:"id"`
	Title               string   `json:"title"`
	Content             string   `json:"content"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           *string  `json:"updated_at"`
	LossIndex           *string  `json:"loss_index"`
	MemePotential       *float64 `json:"meme_potential"`
	RealityDisruption   *int     `json:"reality_disruption"`
	LegalRisk           *string  `json:"legal_risk"`
	EthicalToxicity     *string  `json:"ethical_toxicity"`
	Scalability         *string  `json:"scalability"`
	UserRetention       *string  `json:"user_retention"`
	ImplementationCost  *string  `json:"implementation_cost"`
	SideEffectIndex     *string  `json:"side_effect_index"`
	InverseGeniusRating *string  `json:"inverse_genius_rating"`
}

func NewArticleResponse(a *Article) ArticleResponse {
	resp := ArticleResponse{
		ID:                  a.ID,
		Title:               a.Title,
		Content:             a.Content,
		CreatedAt:           a.CreatedAt.Format(time.RFC3339),
		LossIndex:           a.LossIndex,
		MemePotential:       a.MemePotential,
		RealityDisruption:   a.RealityDisruption,
		LegalRisk:           a.LegalRisk,
		EthicalToxicity:     a.EthicalToxicity,
		Scalability:         a.Scalability,
		UserRetention:       a.UserRetention,
		ImplementationCost:  a.ImplementationCost,
		SideEffectIndex:     a.SideEffectIndex,
		InverseGeniusRating: a.InverseGeniusRating,
	}
	if !a.UpdatedAt.IsZero() {
		updated := a.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updated
	}
	return resp
}
