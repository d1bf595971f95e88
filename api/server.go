// Package api is the thin, deterministic HTTP layer. It is ONLY responsible
// for input ingestion, engine orchestration and output serialization; it
// never performs preparedness logic itself.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"prepstock/core/engine"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	router  *gin.Engine
	version string
}

// NewServer creates a server around a wired engine
func NewServer(eng *engine.Engine, version string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), metricsMiddleware())

	s := &Server{
		engine:  eng,
		router:  router,
		version: version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/version", s.handleVersion)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	v1.POST("/report", s.handleReport)
	v1.POST("/score", s.handleScore)
	v1.GET("/catalog", s.handleCatalog)
}

// Router exposes the underlying gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server on the given address
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
