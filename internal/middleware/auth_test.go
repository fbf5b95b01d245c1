package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testpro/internal/domain"
	"testpro/internal/middleware"
	"testpro/internal/service"
	"testpro/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func viewerEcho(c *gin.Context) {
	v := middleware.GetViewer(c)
	c.JSON(http.StatusOK, gin.H{"user_id": v.UserID, "name": v.Name, "role": v.Role})
}

func TestOptionalAuth_NoHeaderIsGuest(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)

	r := gin.New()
	r.Use(middleware.OptionalAuth(mockAuth))
	r.GET("/test", viewerEcho)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "guest", resp["role"])
	mockAuth.AssertNotCalled(t, "ValidateToken")
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	userID := uuid.New()
	mockAuth.On("ValidateToken", "valid-token").Return(&service.Claims{
		UserID: userID,
		Name:   "Ana",
		Role:   domain.RoleEditor,
	}, nil)

	r := gin.New()
	r.Use(middleware.OptionalAuth(mockAuth))
	r.GET("/test", viewerEcho)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer valid-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, userID.String(), resp["user_id"])
	assert.Equal(t, "Ana", resp["name"])
	assert.Equal(t, "editor", resp["role"])
	mockAuth.AssertExpectations(t)
}

func TestOptionalAuth_InvalidToken(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "bad").Return(nil, errors.New("expired"))

	r := gin.New()
	r.Use(middleware.OptionalAuth(mockAuth))
	r.GET("/test", viewerEcho)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNAUTHORIZED", resp["code"])
}

func TestOptionalAuth_MalformedHeader(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)

	r := gin.New()
	r.Use(middleware.OptionalAuth(mockAuth))
	r.GET("/test", viewerEcho)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name   string
		viewer *domain.Viewer
		want   int
	}{
		{"guest", nil, http.StatusUnauthorized},
		{"student", &domain.Viewer{UserID: uuid.New(), Role: domain.RoleStudent}, http.StatusForbidden},
		{"owner", &domain.Viewer{UserID: uuid.New(), Role: domain.RoleOwner}, http.StatusOK},
		{"admin", &domain.Viewer{UserID: uuid.New(), Role: domain.RoleAdmin}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(func(c *gin.Context) {
				if tt.viewer != nil {
					c.Set(middleware.ContextKeyViewer, *tt.viewer)
				}
				c.Next()
			})
			r.Use(middleware.RequireRole(domain.RoleOwner, domain.RoleEditor, domain.RoleAdmin))
			r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
