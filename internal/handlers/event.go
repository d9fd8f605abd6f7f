package handlers

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/campuslink-org/campuslink-backend/internal/services"
    "github.com/campuslink-org/campuslink-backend/internal/types"
)

type EventHandler struct {
    eventService services.EventService
}

func NewEventHandler(eventService services.EventService) *EventHandler {
    return &EventHandler{eventService: eventService}
}

func (eh *EventHandler) CreateEvent(c *gin.Context) {
    var req types.EventCreate
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
        return
    }

    event, err := eh.eventService.CreateEvent(c.Request.Context(), req)
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "success": true,
        "event": event,
    })
}

func (eh *EventHandler) GetEvent(c *gin.Context) {
    eventID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
        return
    }

    event, err := eh.eventService.GetEvent(c.Request.Context(), eventID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    if event == nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
        return
    }
    c.JSON(http.StatusOK, gin.H{"event": event})
}

func (eh *EventHandler) GetEventsByCampus(c *gin.Context) {
    campusID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campus id"})
        return
    }

    events, err := eh.eventService.GetEventsByCampus(c.Request.Context(), campusID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"events": events})
}

func (eh *EventHandler) GetEventsInDateRange(c *gin.Context) {
    campusID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campus id"})
        return
    }

    start, err := time.Parse(time.RFC3339, c.Query("start"))
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start time"})
        return
    }
    end, err := time.Parse(time.RFC3339, c.Query("end"))
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end time"})
        return
    }

    events, err := eh.eventService.GetEventsInDateRange(c.Request.Context(), campusID, start, end)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"events": events})
}

func (eh *EventHandler) UpdateEvent(c *gin.Context) {
    eventID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
        return
    }

    var req types.EventUpdate
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
        return
    }

    event, err := eh.eventService.UpdateEvent(c.Request.Context(), eventID, req)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    if event == nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "success": true,
        "event": event,
    })
}

func (eh *EventHandler) DeleteEvent(c *gin.Context) {
    eventID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
        return
    }

    deleted, err := eh.eventService.DeleteEvent(c.Request.Context(), eventID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    if !deleted {
        c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
        return
    }
    c.JSON(http.StatusOK, gin.H{"success": true})
}
