package handlers

import (
    "net/http"
    "strconv"

    "github.com/gin-gonic/gin"
    "gorm.io/datatypes"

    "github.com/campuslink-org/campuslink-backend/internal/services"
)

type ChatHandler struct {
    chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
    return &ChatHandler{chatService: chatService}
}

func (ch *ChatHandler) CreateChatSession(c *gin.Context) {
    var req struct {
        UserID   uint           `json:"userId"`
        Title    string         `json:"title,omitempty"`
        Metadata datatypes.JSON `json:"metadata,omitempty"`
    }
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
        return
    }

    session, err := ch.chatService.CreateChatSession(c.Request.Context(), req.UserID, req.Title, req.Metadata)
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "success": true,
        "session": session,
    })
}

func (ch *ChatHandler) GetChatHistory(c *gin.Context) {
    userID, ok := uintParam(c, "id")
    if !ok {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
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

    sessions, err := ch.chatService.GetChatHistory(c.Request.Context(), userID, limit)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
