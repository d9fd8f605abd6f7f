package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/gin-gonic/gin"

    "github.com/campuslink-org/campuslink-backend/internal/logger"
)

func TestRequestID_GeneratesHeader(t *testing.T) {
    gin.SetMode(gin.TestMode)
    router := gin.New()
    router.Use(RequestID(logger.NewNop()))
    router.GET("/ping", func(c *gin.Context) {
        c.Status(http.StatusOK)
    })

    rec := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodGet, "/ping", nil)
    router.ServeHTTP(rec, req)

    if rec.Header().Get(RequestIDHeader) == "" {
        t.Error("expected a generated request ID header")
    }
}

func TestRequestID_KeepsIncomingID(t *testing.T) {
    gin.SetMode(gin.TestMode)
    router := gin.New()
    router.Use(RequestID(logger.NewNop()))
    router.GET("/ping", func(c *gin.Context) {
        c.Status(http.StatusOK)
    })

    rec := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodGet, "/ping", nil)
    req.Header.Set(RequestIDHeader, "abc-123")
    router.ServeHTTP(rec, req)

    if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
        t.Errorf("expected incoming request ID preserved, got %q", got)
    }
}
