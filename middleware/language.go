package middleware

import (
	"strings"

	"labport/config"
	"labport/models"

	"github.com/gin-gonic/gin"
)

const LanguageKey = "lang"

// LanguageMiddleware resolves the request language from the lang query
// parameter or the Accept-Language header, falling back to the app default.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("lang")
		if raw == "" {
			raw = primaryAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if raw == "" {
			raw = config.AppConfig.DefaultLanguage
		}
		c.Set(LanguageKey, models.ParseLanguage(raw))
		c.Next()
	}
}

// RequestLanguage reads the language resolved by LanguageMiddleware.
func RequestLanguage(c *gin.Context) models.Language {
	if v, ok := c.Get(LanguageKey); ok {
		if lang, ok := v.(models.Language); ok {
			return lang
		}
	}
	return models.ParseLanguage(config.AppConfig.DefaultLanguage)
}

func primaryAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := strings.Split(header, ",")[0]
	first = strings.Split(first, ";")[0]
	first = strings.Split(strings.TrimSpace(first), "-")[0]
	return first
}
