// Package server exposes the orchestrator over HTTP.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ShayCichocki/devcrew/internal/config"
	"github.com/ShayCichocki/devcrew/internal/logger"
	"github.com/ShayCichocki/devcrew/internal/orchestrator"
)

// Server wires the orchestrator into a gin router.
type Server struct {
	Router *gin.Engine
	orch   *orchestrator.Orchestrator
	config *config.Config
}

// New creates a Server over the given orchestrator.
func New(cfg *config.Config, orch *orchestrator.Orchestrator) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		Router: gin.New(),
		orch:   orch,
		config: cfg,
	}
	s.setupRoutes()
	return s
}

// Start runs the HTTP server until it fails or is interrupted.
func (s *Server) Start() error {
	addr := s.config.Server.Addr()
	logger.Logger.Info().Str("addr", addr).Msg("http server listening")
	return s.Router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestLogger())

	corsConfig := cors.Config{
		AllowOrigins: s.config.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}
	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	s.Router.Use(cors.New(corsConfig))

	s.Router.GET("/", s.rootHandler)
	s.Router.GET("/healthz", s.healthHandler)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.Router.GET("/status", s.statusHandler)

	workflows := s.Router.Group("/workflows")
	{
		workflows.POST("", s.createWorkflowHandler)
		workflows.GET("", s.listWorkflowsHandler)
		workflows.GET("/:id", s.getWorkflowHandler)
	}

	tasks := s.Router.Group("/tasks")
	{
		tasks.GET("/next", s.nextTasksHandler)
		tasks.GET("/:id", s.getTaskHandler)
		tasks.POST("/:id/complete", s.completeTaskHandler)
	}

	agents := s.Router.Group("/agents")
	{
		agents.GET("", s.listAgentsHandler)
		agents.GET("/:name", s.getAgentHandler)
		agents.POST("/:name/response", s.agentResponseHandler)
	}

	s.Router.GET("/templates", s.listTemplatesHandler)
}

// requestLogger logs each request through the structured logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
