// Package httpapi wires the HTTP transport (Gin) to the product service,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting.
//
// Design goals:
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/openmart/go-product-backend/internal/config"
	"github.com/openmart/go-product-backend/internal/domain"
	"github.com/openmart/go-product-backend/internal/http/handlers"
	"github.com/openmart/go-product-backend/internal/http/middleware"
	"github.com/openmart/go-product-backend/internal/repo"
	"github.com/openmart/go-product-backend/internal/services"
)

// productRepoShim adapts the repository free functions to the
// services.ProductRepo interface expected by the ProductService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type productRepoShim struct{}

// CreateProduct proxies repo.CreateProduct.
func (productRepoShim) CreateProduct(ctx context.Context, db *gorm.DB, name string, price, quantity float64) (*domain.Product, error) {
	return repo.CreateProduct(ctx, db, name, price, quantity)
}

// ListProducts proxies repo.ListProducts.
func (productRepoShim) ListProducts(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	return repo.ListProducts(ctx, db)
}

// GetProduct proxies repo.GetProduct.
func (productRepoShim) GetProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error) {
	return repo.GetProduct(ctx, db, id)
}

// UpdateProduct proxies repo.UpdateProduct.
func (productRepoShim) UpdateProduct(ctx context.Context, db *gorm.DB, id, name string, price, quantity float64) (*domain.Product, error) {
	return repo.UpdateProduct(ctx, db, id, name, price, quantity)
}

// DeleteProduct proxies repo.DeleteProduct.
func (productRepoShim) DeleteProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error) {
	return repo.DeleteProduct(ctx, db, id)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting, CORS
// and security headers, health and metrics endpoints, static hosting for the
// frontend, and then mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per client IP)
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to the JSON 500 envelope
	r.Use(middleware.Recovery(cfg.IsDevelopment()))

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Compress responses
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 9) CORS posture (allow all if none configured, mirroring the classic
	// wide-open catalog frontend)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Unmatched routes: try the static frontend first, then the 404 envelope.
	r.NoRoute(staticOr404(cfg.StaticDir))

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: service ← repo/db
	svc := services.NewProductService(db, productRepoShim{})
	h := handlers.New(svc, cfg.IsDevelopment())

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.POST("/products", h.CreateProduct)
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)
	}
}

// staticOr404 returns the NoRoute handler. GET/HEAD requests are served from
// staticDir when the path resolves to an existing file ("/" maps to
// index.html); everything else gets the fixed 404 envelope.
func staticOr404(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if staticDir != "" && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			reqPath := strings.TrimPrefix(c.Request.URL.Path, "/")
			if reqPath == "" {
				reqPath = "index.html"
			}
			// Keep path traversal out of the static dir.
			clean := filepath.Clean(reqPath)
			if !strings.HasPrefix(clean, "..") {
				full := filepath.Join(staticDir, clean)
				if st, err := os.Stat(full); err == nil && !st.IsDir() {
					c.File(full)
					return
				}
			}
		}
		handlers.Fail(c, http.StatusNotFound, "Route not found", "")
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
