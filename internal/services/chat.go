package services

import (
  "context"
  "fmt"

  "gorm.io/datatypes"
  "gorm.io/gorm"

  "github.com/campuslink-org/campuslink-backend/internal/logger"
  "github.com/campuslink-org/campuslink-backend/internal/repos"
  "github.com/campuslink-org/campuslink-backend/internal/types"
)

type ChatService interface {
  CreateChatSession(ctx context.Context, userID uint, title string, metadata datatypes.JSON) (*types.ChatSession, error)
  GetChatHistory(ctx context.Context, userID uint, limit int) ([]*types.ChatSession, error)
}

type chatService struct {
  db                *gorm.DB
  log               *logger.Logger
  chatSessionRepo   repos.ChatSessionRepo
}

func NewChatService(db *gorm.DB, log *logger.Logger, chatSessionRepo repos.ChatSessionRepo) ChatService {
  serviceLog := log.With("service", "ChatService")
  return &chatService{
    db:              db,
    log:             serviceLog,
    chatSessionRepo: chatSessionRepo,
  }
}

func (cs *chatService) CreateChatSession(ctx context.Context, userID uint, title string, metadata datatypes.JSON) (*types.ChatSession, error) {
  if userID == 0 {
    return nil, fmt.Errorf("userId is required")
  }
  session := &types.ChatSession{
    UserID:   userID,
    Title:    title,
    Metadata: metadata,
  }
  return cs.chatSessionRepo.CreateSession(ctx, nil, session)
}

func (cs *chatService) GetChatHistory(ctx context.Context, userID uint, limit int) ([]*types.ChatSession, error) {
  return cs.chatSessionRepo.GetHistory(ctx, nil, userID, limit)
}
