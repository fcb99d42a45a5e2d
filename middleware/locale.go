package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	localeCookie = "lang"

	// LocaleKey and TranslationsKey are the gin context keys the web
	// handlers read. Locale only ever affects presentation; nothing in
	// the stored data depends on it.
	LocaleKey       = "locale"
	TranslationsKey = "T"
)

const defaultLocale = "en"

var translations = map[string]map[string]string{
	"en": {
		"site_title":      "Genius Inverted Wiki",
		"nav_home":        "Home",
		"nav_articles":    "All articles",
		"nav_new":         "New article",
		"recent_articles": "Recent articles",
		"random_article":  "Random article",
		"versions":        "Version history",
		"version":         "Version",
		"edit":            "Edit",
		"save":            "Save",
		"title":           "Title",
		"content":         "Content",
		"characteristics": "Characteristics",
		"page":            "Page",
		"prev_page":       "Previous",
		"next_page":       "Next",
		"all_letters":     "All",
		"nothing_yet":     "Nothing here yet",
	},
	"ru": {
		"site_title":      "Гениально-инвертированная Вики",
		"nav_home":        "Главная",
		"nav_articles":    "Все статьи",
		"nav_new":         "Новая статья",
		"recent_articles": "Недавние статьи",
		"random_article":  "Случайная статья",
		"versions":        "История версий",
		"version":         "Версия",
		"edit":            "Править",
		"save":            "Сохранить",
		"title":           "Заголовок",
		"content":         "Текст",
		"characteristics": "Характеристики",
		"page":            "Страница",
		"prev_page":       "Назад",
		"next_page":       "Вперёд",
		"all_letters":     "Все",
		"nothing_yet":     "Здесь пока пусто",
	},
}

// Locale resolves the request language: an explicit ?lang= switch wins and
// is remembered in a cookie, otherwise the cookie value, otherwise English.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if _, ok := translations[lang]; !ok {
			lang = ""
		}

		if lang == "" {
			if cookie, err := c.Cookie(localeCookie); err == nil {
				if _, ok := translations[cookie]; ok {
					lang = cookie
				}
			}
		}

		if lang == "" {
			lang = defaultLocale
		}

		c.SetCookie(localeCookie, lang, 30*24*3600, "/", "", false, true)
		c.Set(LocaleKey, lang)
		c.Set(TranslationsKey, translations[lang])

		c.Next()
	}
}

// Translations returns the string table for the request's language.
func Translations(c *gin.Context) map[string]string {
	if t, ok := c.Get(TranslationsKey); ok {
		if table, ok := t.(map[string]string); ok {
			return table
		}
	}
	return translations[defaultLocale]
}
