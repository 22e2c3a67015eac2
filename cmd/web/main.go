package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/delote/beauty-web/internal/action"
	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/cache"
	"github.com/delote/beauty-web/internal/config"
	"github.com/delote/beauty-web/internal/handler"
	"github.com/delote/beauty-web/internal/router"
	"github.com/delote/beauty-web/internal/service"
	"github.com/delote/beauty-web/internal/session"
	"github.com/delote/beauty-web/pkg/logger"
	"github.com/delote/beauty-web/pkg/metrics"
	"github.com/delote/beauty-web/web"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLog := logger.NewLogger(&logger.Config{Level: logger.ParseLevel(cfg.LogLevel)})
	m := metrics.NewMetrics("beauty_web")

	// Pick the revalidation cache backend: shared Redis when configured,
	// in-process otherwise.
	var store cache.Store
	if cfg.Cache.RedisURL != "" {
		redisStore, err := cache.NewRedisStore(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		store = redisStore
	} else {
		store = cache.NewMemoryStore()
	}

	// Initialize the backend API client and the read services
	api := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout, store, m, appLog)
	svc := service.NewRegistry(api)

	// Initialize the mutation layer and its cache revalidator
	reval := cache.NewRevalidator(store, m)
	actions := action.New(api, reval, appLog)

	// Initialize rendering and session handling
	render, err := handler.NewRenderer(web.Templates, cfg.API.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}
	sess := session.NewStore(cfg.Cookie, cfg.IsProduction())

	h := handler.New(cfg, render, sess, svc, actions, appLog)
	r := router.Setup(cfg, h, m)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		appLog.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
