package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vincfleurette/agenda-spv/internal/config"
	"github.com/vincfleurette/agenda-spv/internal/server/handlers"
	"github.com/vincfleurette/agenda-spv/internal/service/store"
)

//go:embed static
var staticFiles embed.FS

// Server is the local HTTP server.
type Server struct {
	router  *gin.Engine
	uploads *store.UploadStore
}

// NewServer builds the router and its dependencies.
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	uploads := store.NewUploadStore()
	h := handlers.NewHandlers(cfg, uploads)

	s := &Server{
		router:  gin.Default(),
		uploads: uploads,
	}

	s.setupRoutes(h, devMode)

	return s
}

func (s *Server) setupRoutes(h *handlers.Handlers, devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/upload", h.Upload)
		api.GET("/files/:fileId/sheets", h.Sheets)
		api.GET("/files/:fileId/names", h.Names)
		api.GET("/files/:fileId/events", h.Events)
		api.GET("/files/:fileId/calendar", h.Calendar)
		api.DELETE("/files/:fileId", h.Delete)
	}

	if devMode {
		// Dev mode proxies the page to the frontend dev server.
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}

	sub, _ := fs.Sub(staticFiles, "static")

	s.router.GET("/", func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	s.router.NoRoute(func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
