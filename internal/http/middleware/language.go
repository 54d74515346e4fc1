package middleware

import "github.com/gin-gonic/gin"

// The SPA persists the picked language in the app-language cookie.
// Arabic is the default; anything unrecognized falls back to it.
const (
	LanguageCookie = "app-language"
	ctxKeyLang     = "lang"
)

func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, err := c.Cookie(LanguageCookie)
		if err != nil || (lang != "ar" && lang != "en") {
			lang = "ar"
		}
		c.Set(ctxKeyLang, lang)
		c.Next()
	}
}

func CurrentLanguage(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyLang); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "ar"
}

// Direction maps the language to a document direction for the client.
func Direction(lang string) string {
	if lang == "en" {
		return "ltr"
	}
	return "rtl"
}
