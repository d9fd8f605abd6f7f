package middleware

import (
    "time"

    "github.com/gin-gonic/gin"
    "github.com/google/uuid"

    "github.com/campuslink-org/campuslink-backend/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with a UUID and logs method/path/status/latency
// under it. Incoming IDs from trusted proxies are kept.
func RequestID(log *logger.Logger) gin.HandlerFunc {
    reqLog := log.With("middleware", "RequestID")
    return func(c *gin.Context) {
        requestID := c.GetHeader(RequestIDHeader)
        if requestID == "" {
            requestID = uuid.New().String()
        }
        c.Header(RequestIDHeader, requestID)
        c.Set("requestID", requestID)

        start := time.Now()
        c.Next()

        reqLog.Info("request complete",
            "requestID", requestID,
            "method", c.Request.Method,
            "path", c.Request.URL.Path,
            "status", c.Writer.Status(),
            "latency", time.Since(start),
        )
    }
}
