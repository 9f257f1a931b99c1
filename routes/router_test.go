package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BerniceZTT/mentorship_analytics/models"
	"github.com/BerniceZTT/mentorship_analytics/repository/mocks"
	"github.com/BerniceZTT/mentorship_analytics/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestRouter(repo *mocks.AnalyticsRepository, statusErr error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, repo, func() (map[string]interface{}, error) {
		if statusErr != nil {
			return nil, statusErr
		}
		return map[string]interface{}{"status": "connected"}, nil
	})
	return r
}

func TestPublicRoutes(t *testing.T) {
	r := newTestRouter(new(mocks.AnalyticsRepository), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/db-status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "connected")

	r = newTestRouter(new(mocks.AnalyticsRepository), errors.New("down"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/db-status", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "down")
}

func TestProtectedRoutes(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	repo.On("FindSelfAssessments", mock.Anything, mock.Anything).Return(nil, nil)
	r := newTestRouter(repo, nil)

	token, err := utils.GenerateToken(models.User{
		ID:       primitive.NewObjectID(),
		Username: "owner",
		Role:     models.UserRoleENTREPRENEUR,
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		auth   bool
		want   int
	}{
		{"heatmap without token", http.MethodGet, "/api/analytics/heatmap", false, http.StatusUnauthorized},
		{"heatmap", http.MethodGet, "/api/analytics/heatmap", true, http.StatusOK},
		{"create enterprise as entrepreneur", http.MethodPost, "/api/enterprises", true, http.StatusForbidden},
		{"validate", http.MethodGet, "/api/auth/validate", true, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
