package repos

import (
    "context"

    "gorm.io/gorm"

    "github.com/campuslink-org/campuslink-backend/internal/logger"
    "github.com/campuslink-org/campuslink-backend/internal/types"
)

// DefaultChatHistoryLimit is used when the caller does not supply a limit.
const DefaultChatHistoryLimit = 10

type ChatSessionRepo interface {
    CreateSession(ctx context.Context, tx *gorm.DB, session *types.ChatSession) (*types.ChatSession, error)
    GetHistory(ctx context.Context, tx *gorm.DB, userID uint, limit int) ([]*types.ChatSession, error)
}

type chatSessionRepo struct {
    db      *gorm.DB
    log     *logger.Logger
}

func NewChatSessionRepo(db *gorm.DB, baseLog *logger.Logger) ChatSessionRepo {
    return &chatSessionRepo{
        db: db,
        log: baseLog.With("repo", "ChatSessionRepo"),
    }
}

func (csr *chatSessionRepo) CreateSession(ctx context.Context, tx *gorm.DB, session *types.ChatSession) (*types.ChatSession, error) {
    if tx == nil {
        tx = csr.db
    }
    if err := tx.WithContext(ctx).Create(session).Error; err != nil {
        csr.log.Error("failed to create chat session", "error", err)
        return nil, err
    }
    return session, nil
}

func (csr *chatSessionRepo) GetHistory(ctx context.Context, tx *gorm.DB, userID uint, limit int) ([]*types.ChatSession, error) {
    if tx == nil {
        tx = csr.db
    }
    if limit <= 0 {
        limit = DefaultChatHistoryLimit
    }
    var sessions []*types.ChatSession
    if err := tx.WithContext(ctx).
        Where("user_id = ?", userID).
        Order("created_at DESC").
        Limit(limit).
        Find(&sessions).Error; err != nil {
        csr.log.Error("failed to fetch chat history", "error", err, "userID", userID)
        return nil, err
    }
    return sessions, nil
}
