package models

import (
	"strconv"
)

// RatingFieldNames lists the ten characteristic fields in display order.
// Both the edit form and the JSON API address ratings by these names.
var RatingFieldNames = []string{
	"loss_index",
	"meme_potential",
	"reality_disruption",
	"legal_risk",
	"ethical_toxicity",
	"scalability",
	"user_retention",
	"implementation_cost",
	"side_effect_index",
	"inverse_genius_rating",
}

type ratingSetter func(a *Article, raw interface{})

// ratingSetters is the single coercion table shared by the form and API
// entry points, so both store identical values for identical input.
var ratingSetters = map[string]ratingSetter{
	"loss_index":            func(a *Article, raw interface{}) { a.LossIndex = CoerceString(raw) },
	"meme_potential":        func(a *Article, raw interface{}) { a.MemePotential = CoerceFloat(raw) },
	"reality_disruption":    func(a *Article, raw interface{}) { a.RealityDisruption = CoerceInt(raw) },
	"legal_risk":            func(a *Article, raw interface{}) { a.LegalRisk = CoerceString(raw) },
	"ethical_toxicity":      func(a *Article, raw interface{}) { a.EthicalToxicity = CoerceString(raw) },
	"scalability":           func(a *Article, raw interface{}) { a.Scalability = CoerceString(raw) },
	"user_retention":        func(a *Article, raw interface{}) { a.UserRetention = CoerceString(raw) },
	"implementation_cost":   func(a *Article, raw interface{}) { a.ImplementationCost = CoerceString(raw) },
	"side_effect_index":     func(a *Article, raw interface{}) { a.SideEffectIndex = CoerceString(raw) },
	"inverse_genius_rating": func(a *Article, raw interface{}) { a.InverseGeniusRating = CoerceString(raw) },
}

// ApplyRatings writes every rating present in values onto the article.
// Fields absent from values keep whatever the article already holds.
func ApplyRatings(a *Article, values map[string]interface{}) {
	for name, set := range ratingSetters {
		if raw, ok := values[name]; ok {
			set(a, raw)
		}
	}
}

// CoerceFloat turns raw user input into a float or nil. Empty input, the
// literal "None" and anything that fails a strict parse all become nil;
// coercion never reports an error.
func CoerceFloat(raw interface{}) *float64 {
	switch v := raw.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case string:
		if v == "" || v == "None" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// CoerceInt is CoerceFloat's integer counterpart. String input must be a
// whole base-10 number ("4blah" is nil, not 4); JSON numbers truncate.
func CoerceInt(raw interface{}) *int {
	switch v := raw.(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		return &v
	case string:
		if v == "" || v == "None" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

// CoerceString passes text ratings through untouched, including "None".
func CoerceString(raw interface{}) *string {
	if v, ok := raw.(string); ok {
		return &v
	}
	return nil
}

// RatingEntry is one rating field prepared for display.
type RatingEntry struct {
	Name  string
	Value string
}

var ratingGetters = map[string]func(a *Article) string{
	"loss_index":            func(a *Article) string { return stringValue(a.LossIndex) },
	"meme_potential":        func(a *Article) string { return floatValue(a.MemePotential) },
	"reality_disruption":    func(a *Article) string { return intValue(a.RealityDisruption) },
	"legal_risk":            func(a *Article) string { return stringValue(a.LegalRisk) },
	"ethical_toxicity":      func(a *Article) string { return stringValue(a.EthicalToxicity) },
	"scalability":           func(a *Article) string { return stringValue(a.Scalability) },
	"user_retention":        func(a *Article) string { return stringValue(a.UserRetention) },
	"implementation_cost":   func(a *Article) string { return stringValue(a.ImplementationCost) },
	"side_effect_index":     func(a *Article) string { return stringValue(a.SideEffectIndex) },
	"inverse_genius_rating": func(a *Article) string { return stringValue(a.InverseGeniusRating) },
}

// RatingEntries lists the ratings in display order, null as empty string.
func (a *Article) RatingEntries() []RatingEntry {
	entries := make([]RatingEntry, 0, len(RatingFieldNames))
	for _, name := range RatingFieldNames {
		entries = append(entries, RatingEntry{Name: name, Value: ratingGetters[name](a)})
	}
	return entries
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func intValue(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
