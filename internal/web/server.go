// Package web runs a small status HTTP server: liveness plus a view of the
// active playback sessions.
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"euplay-bot/internal/music/session"
	"euplay-bot/internal/version"
)

// NewRouter builds the status routes around a session registry.
func NewRouter(registry *session.Registry) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"app":     version.AppName,
			"version": version.GitCommit,
		})
	})

	r.GET("/v1/sessions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sessions": registry.Snapshot()})
	})

	return r
}

// RunServer serves the status API until ctx is cancelled. Run in a goroutine;
// a failed listen is logged, not fatal.
func RunServer(ctx context.Context, addr string, registry *session.Registry) {
	srv := &http.Server{Addr: addr, Handler: NewRouter(registry)}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down status server")
		_ = srv.Shutdown(context.Background())
	}()

	log.Info().Str("addr", addr).Msg("status server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("status server exited")
	}
}
