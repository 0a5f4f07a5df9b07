package http

import (
	"fintrack/internal/http/handlers"
	"fintrack/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires the API surface onto the engine. Health endpoints are
// deliberately outside the rate-limited group so probes and the keep-alive
// ping never count against a client window.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, limiter middleware.Limiter) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db)

	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")
	api.GET("/health", healthHandler.Health)
	api.Use(middleware.RateLimit(limiter))

	api.POST("/transactions", h.CreateTransaction)
	api.GET("/transactions/:userId", h.ListTransactions)
	api.GET("/transactions/summary/:userId", h.GetSummary)
	api.DELETE("/transactions/:id", h.DeleteTransaction)
}
