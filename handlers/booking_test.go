package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalogRepo "labport/database/repository/catalog"
	"labport/models"
	"labport/services/booking"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	BookingService = &booking.DefaultBookingSessionService{
		Catalog: catalogRepo.NewMemoryCatalogRepo(),
		Records: nil,
		Cache:   redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		Now:     func() time.Time { return time.Date(2024, 3, 22, 9, 0, 0, 0, time.UTC) },
	}
	CatalogRepo = catalogRepo.NewMemoryCatalogRepo()

	r := gin.New()
	r.POST("/api/booking/session", StartBookingSession)
	r.GET("/api/booking/session/:sessionID", GetBookingSession)
	r.POST("/api/booking/session/:sessionID/cart", AddToCart)
	r.POST("/api/booking/session/:sessionID/open", OpenBookingFlow)
	r.POST("/api/booking/session/:sessionID/advance", AdvanceBookingStep)
	r.GET("/api/catalog/tests", ListTests)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStartAndFetchSession(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		SessionID string `json:"sessionID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.SessionID)

	w = doJSON(t, r, http.MethodGet, "/api/booking/session/"+created.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view models.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Len(t, view.Days, 7)
	assert.Equal(t, models.StepBrowsing, view.Session.Step)
}

func TestUnknownSessionReturns404(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/booking/session/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCartValidation(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		SessionID string `json:"sessionID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPost, "/api/booking/session/"+created.SessionID+"/cart", gin.H{"testId": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/booking/session/"+created.SessionID+"/cart", gin.H{"testId": "99"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/booking/session/"+created.SessionID+"/cart", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvanceConflictMapping(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		SessionID string `json:"sessionID"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Advancing from browsing is a step conflict.
	w = doJSON(t, r, http.MethodPost, "/api/booking/session/"+created.SessionID+"/advance", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/booking/session/"+created.SessionID+"/open", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// An empty cart blocks the advance with a validation error.
	w = doJSON(t, r, http.MethodPost, "/api/booking/session/"+created.SessionID+"/advance", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListTestsLocalized(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/catalog/tests", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tests []models.TestPackage `json:"tests"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Tests, 6)
}
