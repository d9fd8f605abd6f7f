package handlers

import (
    "net/http"
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/campuslink-org/campuslink-backend/internal/services"
)

type AnalyticsHandler struct {
    analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
    return &AnalyticsHandler{analyticsService: analyticsService}
}

func (ah *AnalyticsHandler) GetEventTypeDistribution(c *gin.Context) {
    campusID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campus id"})
        return
    }

    distribution, err := ah.analyticsService.GetEventTypeDistribution(c.Request.Context(), campusID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"distribution": distribution})
}

func (ah *AnalyticsHandler) GetMonthlyParticipation(c *gin.Context) {
    campusID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campus id"})
        return
    }

    year, err := strconv.Atoi(c.Query("year"))
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
        return
    }

    participation, err := ah.analyticsService.GetMonthlyParticipation(c.Request.Context(), campusID, year)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"participation": participation})
}

func (ah *AnalyticsHandler) GetTopRatedEvents(c *gin.Context) {
    campusID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campus id"})
        return
    }

    limit := 0
    if raw := c.Query("limit"); raw != "" {
        parsed, err := strconv.Atoi(raw)
        if err != nil {
            c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
            return
        }
        limit = parsed
    }

    events, err := ah.analyticsService.GetTopRatedEvents(c.Request.Context(), campusID, limit)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"events": events})
}
