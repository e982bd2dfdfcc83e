package status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kitaptakip/bot-telegram/service/fetch"
	"github.com/kitaptakip/bot-telegram/service/watch"
	"github.com/kitaptakip/bot-telegram/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	storUsers, err := storage.NewUsers(filepath.Join(dir, "users.json"))
	require.Nil(t, err)
	storAdmins, err := storage.NewAdmins(filepath.Join(dir, "admins.json"), "111")
	require.Nil(t, err)
	svcWatch := watch.NewService(storUsers)
	_, err = svcWatch.Add(context.Background(), "1", "a", "u1", fetch.Facts{InStock: true})
	require.Nil(t, err)
	h := Handler{
		SvcWatch:   svcWatch,
		StorAdmins: storAdmins,
		LastTick: func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		},
	}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", h.Healthz)
	r.GET("/v1/status", h.Status)
	return r
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	newRouter(t).ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestStatus(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/status", nil)
	newRouter(t).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(
		t,
		`{"users": 1, "activeUsers": 1, "watches": 1, "admins": 1, "lastTick": "2025-06-01T12:00:00Z"}`,
		w.Body.String(),
	)
}
