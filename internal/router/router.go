package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"testpro/internal/config"
	"testpro/internal/domain"
	"testpro/internal/handler"
	"testpro/internal/middleware"
	"testpro/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
// testH may be nil when the catalog is disabled; its routes then answer 503.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	genH *handler.GenerationHandler,
	testH *handler.TestHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/readyz", healthH.Readiness)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/health", healthH.Liveness)

	// Stateless generation, open to everyone
	api.POST("/tests/pdf", genH.GenerateFromPDF)

	catalog := api.Group("")
	if testH == nil {
		catalog.Any("/tests", catalogDisabled)
		catalog.Any("/tests/:id", catalogDisabled)
		catalog.Any("/tests/:id/*action", catalogDisabled)
		catalog.GET("/categories", catalogDisabled)
		return r
	}

	catalog.Use(middleware.OptionalAuth(authSvc))

	tests := catalog.Group("/tests")
	tests.POST("", middleware.RequireRole(domain.RoleOwner, domain.RoleEditor, domain.RoleAdmin), testH.Create)
	tests.GET("", testH.List)
	tests.GET("/:id", testH.GetByID)
	tests.PATCH("/:id", testH.Update)
	tests.DELETE("/:id", testH.Delete)
	tests.POST("/:id/submissions", testH.Submit)
	tests.GET("/:id/export", testH.Export)

	catalog.GET("/categories", testH.Categories)

	return r
}

func catalogDisabled(c *gin.Context) {
	handler.HandleError(c, domain.ErrCatalogDisabled)
}
