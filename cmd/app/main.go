package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/db"
	httpServer "fintrack/internal/http"
	"fintrack/internal/http/middleware"
	"fintrack/internal/keepalive"
	"fintrack/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	dbPool := db.Connect(cfg.DatabaseURL)
	defer dbPool.Close()

	var limiter middleware.Limiter
	if cfg.RedisAddr != "" {
		rl, err := middleware.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RateLimit, cfg.RateWindow)
		if err != nil {
			logger.Fatal("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
		}
		limiter = rl
		logger.Info("rate limiter backed by redis", "addr", cfg.RedisAddr)
	} else {
		limiter = middleware.NewMemoryLimiter(cfg.RateLimit, cfg.RateWindow)
		logger.Warn("REDIS_ADDR not set, using in-process rate limiter")
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, dbPool, limiter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.EnableKeepAlive {
		keepalive.New(cfg.KeepAliveURL, cfg.KeepAliveInterval).Start(ctx)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
