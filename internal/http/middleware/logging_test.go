package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/t", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated X-Request-ID")
	}
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var inCtx string
	r.GET("/t", func(c *gin.Context) {
		v, _ := c.Get(requestIDKey)
		inCtx, _ = v.(string)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("X-Request-ID", "abc-1")
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") != "abc-1" || inCtx != "abc-1" {
		t.Fatalf("request id not propagated: header=%q ctx=%q", w.Header().Get("X-Request-ID"), inCtx)
	}
}

func TestLogger_AttachesRequestScopedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger())
	var hadLogger bool
	r.GET("/t", func(c *gin.Context) {
		_, hadLogger = c.Get("logger")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	if !hadLogger {
		t.Fatalf("expected request-scoped logger in context")
	}
}

func TestLoggerFrom_FallbackWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if LoggerFrom(c) == nil {
		t.Fatalf("LoggerFrom must never return nil")
	}
}

func TestRecovery_EnvelopeWithoutDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery(false))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", w.Code)
	}
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("json: %v", err)
	}
	if m["success"] != false || m["message"] != "Internal Server Error" {
		t.Fatalf("unexpected envelope: %v", m)
	}
	if _, ok := m["error"]; ok {
		t.Fatalf("panic detail leaked outside development mode: %v", m)
	}
}

func TestRecovery_DetailInDevelopment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery(true))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("json: %v", err)
	}
	if m["error"] != "kaboom" {
		t.Fatalf("expected panic detail in development mode, got %v", m)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("abc", 10); got != "abc" {
		t.Fatalf("truncate should leave short strings alone: %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Fatalf("max<=0 disables truncation: %q", got)
	}
}
