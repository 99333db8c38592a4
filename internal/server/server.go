package server

import (
	"context"
	"net/http"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/config"
	"github.com/mebelart/admin-service/internal/auth"
)

// Registrar is implemented by every feature handler.
type Registrar interface {
	Register(rg *gin.RouterGroup)
}

type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	http   *http.Server
}

func New(cfg *config.Config, logger *zap.Logger, authClient *fbauth.Client, handlers ...Registrar) *Server {
	if cfg.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	api.Use(auth.Middleware(authClient, logger))
	for _, h := range handlers {
		h.Register(api)
	}

	return &Server{
		cfg:    cfg,
		logger: logger,
		http: &http.Server{
			Addr:         cfg.Server.HTTPPort,
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

func (s *Server) Run() error {
	s.logger.Info("http server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
