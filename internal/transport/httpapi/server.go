// Package httpapi exposes the assistant over HTTP. It serves the chat and
// reset endpoints plus health and Prometheus metrics, and participates in
// the service lifecycle like the other transports.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jayani-123/tasbot/internal/config"
	"github.com/Jayani-123/tasbot/pkg/log"
)

// Conversation is the assistant surface the handlers need.
type Conversation interface {
	Chat(ctx context.Context, sessionID, query string) string
	Reset(ctx context.Context, sessionID string) string
}

type Server struct {
	cfg *config.HTTPConfig
	srv *http.Server
}

func NewServer(ctx context.Context, cfg *config.HTTPConfig, conversation Conversation) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := newRouter(ctx, cfg, conversation)

	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:    cfg.Addr,
			Handler: engine,
		},
	}
}

func newRouter(ctx context.Context, cfg *config.HTTPConfig, conversation Conversation) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(ctx), measureRequests())

	h := &handlers{conversation: conversation}

	engine.GET("/healthz", h.health)
	engine.POST("/v1/chat", h.chat)
	engine.POST("/v1/sessions/:id/reset", h.reset)

	if cfg.EnableMetrics {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	return engine
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.Addr).Msg("starting http api")

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
