package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestOkList_KeepsZeroCount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/t", func(c *gin.Context) { okList(c, []string{}, 0) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("json: %v", err)
	}
	// count=0 must survive serialization; only a nil pointer is omitted.
	if v, ok := m["count"]; !ok || v != float64(0) {
		t.Fatalf("count missing or wrong: %v", m)
	}
}

func TestOk_OmitsCountAndMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/t", func(c *gin.Context) { ok(c, http.StatusOK, gin.H{"x": 1}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("json: %v", err)
	}
	if _, ok := m["count"]; ok {
		t.Fatalf("count should be omitted: %v", m)
	}
	if _, ok := m["message"]; ok {
		t.Fatalf("message should be omitted: %v", m)
	}
}

func TestFail_AbortsWithEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	called := false
	r.GET("/t", func(c *gin.Context) {
		Fail(c, http.StatusNotFound, "Product not found", "")
		c.Next()
	}, func(c *gin.Context) { called = true })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
	if called {
		t.Fatalf("Fail must abort the chain")
	}

	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Success || er.Message != "Product not found" || er.Error != "" {
		t.Fatalf("unexpected envelope: %+v", er)
	}
}

func TestFail_DetailRoundTrips(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/t", func(c *gin.Context) {
		Fail(c, http.StatusInternalServerError, "Server Error", "dial tcp: refused")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Error != "dial tcp: refused" {
		t.Fatalf("detail lost: %+v", er)
	}
}
