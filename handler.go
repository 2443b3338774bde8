package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler holds shared dependencies for all route handlers. Everything here is
// read-only after newHandler, so handlers are safe to run concurrently.
type Handler struct {
	apiTokenHash string // bcrypt hash of the API token; empty disables auth
	metrics      *estimateMetrics
	gatherer     prometheus.Gatherer
}

// newHandler registers the estimate collectors on reg and serves reg on /metrics.
func newHandler(cfg config, reg *prometheus.Registry) *Handler {
	return &Handler{
		apiTokenHash: cfg.APITokenHash,
		metrics:      newEstimateMetrics(reg),
		gatherer:     reg,
	}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// requestIDMiddleware tags each request with X-Request-ID, reusing the
// client's value when it sent one. Stored on the context as "request_id".
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// registerRoutes registers all routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	router.Use(requestIDMiddleware())

	// Public routes
	router.GET("/healthz", healthz)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))

	// Token-protected when API_TOKEN_HASH is set
	api := router.Group("/api", h.authMiddleware())
	api.GET("/options", h.getOptions)
	api.GET("/estimate", h.getEstimate)
	api.POST("/estimate", h.postEstimate)
}
