package api

import (
	"context"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nhle/project-tracker/internal/auth"
	"github.com/nhle/project-tracker/internal/logger"
)

// RouterConfig wires the router's collaborators.
type RouterConfig struct {
	Handler  *Handler
	Resolver auth.Resolver
	Logger   *zap.Logger

	// AuthHeader is added to the CORS allow list so browsers may send it.
	AuthHeader  string
	CORSOrigins []string
	// StaticDir, when it exists, is served for every non-API path.
	StaticDir string
}

// NewRouter builds the gin engine with logging, recovery, CORS, the /api
// routes, and optional static file serving.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(logger.GinMiddleware(log), logger.Recovery(log))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins, cfg.AuthHeader)))

	h := cfg.Handler
	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)

		protected := api.Group("", RequireIdentity(cfg.Resolver))
		{
			protected.GET("/me", h.Me)

			protected.POST("/projects", h.CreateProject)
			protected.GET("/projects", h.ListProjects)
			protected.GET("/projects/:id", h.GetProject)
			protected.DELETE("/projects/:id", h.DeleteProject)

			protected.GET("/activities", h.ListActivities)

			protected.GET("/notifications", h.ListNotifications)
			protected.PUT("/notifications/:id/read", h.MarkNotificationRead)

			protected.GET("/counts", h.Counts)
		}
	}

	r.NoRoute(noRoute(cfg.StaticDir))
	return r
}

func corsConfig(origins []string, authHeader string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", logger.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if authHeader != "" {
		cfg.AllowHeaders = append(cfg.AllowHeaders, authHeader)
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// noRoute serves files from staticDir for non-API paths and a JSON 404
// everywhere else.
func noRoute(staticDir string) gin.HandlerFunc {
	var files http.Handler
	if info, err := os.Stat(staticDir); staticDir != "" && err == nil && info.IsDir() {
		files = http.FileServer(gin.Dir(staticDir, false))
	}
	return func(c *gin.Context) {
		if files == nil || strings.HasPrefix(c.Request.URL.Path, "/api") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Health reports whether the store answers.
func (h *Handler) Health(c *gin.Context) {
	if p, ok := h.store.(pinger); ok {
		if err := p.Ping(c.Request.Context()); err != nil {
			h.logger(c).Error("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
