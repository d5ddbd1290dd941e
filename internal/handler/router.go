package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/spaarke-dev/spaakre-website/internal/handler/api"
	"github.com/spaarke-dev/spaakre-website/internal/handler/httperr"
	"github.com/spaarke-dev/spaakre-website/internal/handler/middleware"
	"github.com/spaarke-dev/spaakre-website/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, contactHandler *api.ContactHandler, earlyReleaseHandler *api.EarlyReleaseHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, contactHandler, earlyReleaseHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, contactHandler *api.ContactHandler, earlyReleaseHandler *api.EarlyReleaseHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addPostOnlyRoute(apiGroup, "/contact", contactHandler.Submit)
		addPostOnlyRoute(apiGroup, "/early-release", earlyReleaseHandler.Submit)
	}
}

// addPostOnlyRoute registers the POST handler plus explicit 405 responses for
// the other verbs, so callers always get a well-formed body and an Allow
// header instead of gin's default 404.
func addPostOnlyRoute(g *gin.RouterGroup, path string, h gin.HandlerFunc) {
	addRoutes(g, []route{
		{Method: http.MethodPost, Path: path, Handler: h},
		{Method: http.MethodGet, Path: path, Handler: methodNotAllowed},
		{Method: http.MethodPut, Path: path, Handler: methodNotAllowed},
		{Method: http.MethodPatch, Path: path, Handler: methodNotAllowed},
		{Method: http.MethodDelete, Path: path, Handler: methodNotAllowed},
	})
}

func methodNotAllowed(c *gin.Context) {
	c.Header("Allow", http.MethodPost)
	c.JSON(http.StatusMethodNotAllowed, httperr.Response{Error: "METHOD_NOT_ALLOWED"})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
