package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"testpro/internal/config"
	"testpro/internal/domain"
	"testpro/internal/handler"
	"testpro/internal/router"
	"testpro/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Log:  config.LogConfig{Level: "info"},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
}

func TestSetup_CatalogDisabled(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	genH := handler.NewGenerationHandler(new(mocks.MockGenerationService), 10<<20)
	r := router.Setup(testConfig(), authSvc, genH, nil, handler.NewHealthHandler(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	for _, path := range []string{"/api/tests", "/api/categories", "/api/tests/abc/export"} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		assert.Contains(t, w.Body.String(), "CATALOG_DISABLED", path)
	}
}

func TestSetup_GuestCannotCreate(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	testSvc := new(mocks.MockTestService)
	genH := handler.NewGenerationHandler(new(mocks.MockGenerationService), 10<<20)
	testH := handler.NewTestHandler(testSvc, 10<<20)
	r := router.Setup(testConfig(), authSvc, genH, testH, handler.NewHealthHandler(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/tests", http.NoBody))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	testSvc.AssertNotCalled(t, "CreateFromUpload", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetup_GuestListsCategories(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	testSvc := new(mocks.MockTestService)
	testSvc.On("Categories", mock.Anything, domain.Viewer{Role: domain.RoleGuest}).
		Return([]string{"Historia"}, nil)
	genH := handler.NewGenerationHandler(new(mocks.MockGenerationService), 10<<20)
	testH := handler.NewTestHandler(testSvc, 10<<20)
	r := router.Setup(testConfig(), authSvc, genH, testH, handler.NewHealthHandler(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":["Historia"]}`, w.Body.String())
}

func TestSetup_CORSPreflight(t *testing.T) {
	genH := handler.NewGenerationHandler(new(mocks.MockGenerationService), 10<<20)
	r := router.Setup(testConfig(), new(mocks.MockAuthService), genH, nil, handler.NewHealthHandler(nil))

	req := httptest.NewRequest(http.MethodOptions, "/api/tests/pdf", http.NoBody)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
