package handlers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/campuslink-org/campuslink-backend/internal/services"
    "github.com/campuslink-org/campuslink-backend/internal/types"
)

type CampusHandler struct {
    campusService services.CampusService
}

func NewCampusHandler(campusService services.CampusService) *CampusHandler {
    return &CampusHandler{campusService: campusService}
}

func (ch *CampusHandler) CreateCampus(c *gin.Context) {
    var req struct {
        Name    string `json:"name"`
        Address string `json:"address,omitempty"`
    }
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
        return
    }

    campus, err := ch.campusService.CreateCampus(c.Request.Context(), req.Name, req.Address)
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "success": true,
        "campus": campus,
    })
}

func (ch *CampusHandler) GetCampus(c *gin.Context) {
    campusID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campus id"})
        return
    }

    campus, err := ch.campusService.GetCampus(c.Request.Context(), campusID)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    if campus == nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "campus not found"})
        return
    }
    c.JSON(http.StatusOK, gin.H{"campus": campus})
}

func (ch *CampusHandler) GetAllCampuses(c *gin.Context) {
    campuses, err := ch.campusService.GetAllCampuses(c.Request.Context())
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"campuses": campuses})
}

func (ch *CampusHandler) UpdateCampus(c *gin.Context) {
    campusID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campus id"})
        return
    }

    var req types.CampusUpdate
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
        return
    }

    campus, err := ch.campusService.UpdateCampus(c.Request.Context(), campusID, req)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    if campus == nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "campus not found"})
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "success": true,
        "campus": campus,
    })
}
