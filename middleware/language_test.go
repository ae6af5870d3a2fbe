package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"labport/config"
	"labport/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func resolveLanguage(t *testing.T, target string, headers map[string]string) models.Language {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got models.Language
	r := gin.New()
	r.Use(LanguageMiddleware())
	r.GET("/probe", func(c *gin.Context) {
		got = RequestLanguage(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestLanguageFromQuery(t *testing.T) {
	assert.Equal(t, models.LangEnglish, resolveLanguage(t, "/probe?lang=en", nil))
	assert.Equal(t, models.LangBangla, resolveLanguage(t, "/probe?lang=bn", nil))
}

func TestLanguageFromAcceptHeader(t *testing.T) {
	got := resolveLanguage(t, "/probe", map[string]string{"Accept-Language": "en-US,en;q=0.9,bn;q=0.8"})
	assert.Equal(t, models.LangEnglish, got)
}

func TestLanguageDefaultsToConfig(t *testing.T) {
	prev := config.AppConfig.DefaultLanguage
	config.AppConfig.DefaultLanguage = "bn"
	defer func() { config.AppConfig.DefaultLanguage = prev }()

	assert.Equal(t, models.LangBangla, resolveLanguage(t, "/probe", nil))
}

func TestQueryBeatsHeader(t *testing.T) {
	got := resolveLanguage(t, "/probe?lang=bn", map[string]string{"Accept-Language": "en-US"})
	assert.Equal(t, models.LangBangla, got)
}
