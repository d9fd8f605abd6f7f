package repos

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/campuslink-org/campuslink-backend/internal/logger"
    "github.com/campuslink-org/campuslink-backend/internal/types"
)

type UserRepo interface {
    // CREATE
    Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)

    // READ
    GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error)
    GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
}

type userRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
    // Add a repo field for consistent logs
    repoLog := baseLog.With("repo", "UserRepo")
    return &userRepo{db: db, log: repoLog}
}

// ----------------------------------------------------------------
// CREATE
// ----------------------------------------------------------------

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
    ur.log.Info("Starting Create User now...")

    transaction := tx
    if transaction == nil {
        transaction = ur.db
        ur.log.Debug("Transaction is nil, using ur.db instead")
    }

    // Constraint violations (duplicate email) propagate untranslated.
    ur.log.Info("Creating user now in DB...")
    if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
        ur.log.Error("Failed to create user", "error", err)
        return nil, err
    }
    ur.log.Info("Successfully created user", "userID", user.ID)
    ur.log.Debug("User created details", "user", user)
    return user, nil
}

// ----------------------------------------------------------------
// READ
// ----------------------------------------------------------------

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error) {
    ur.log.Info("Starting GetByID for User now...", "userID", userID)

    transaction := tx
    if transaction == nil {
        transaction = ur.db
        ur.log.Debug("Transaction is nil, using ur.db")
    }

    var user types.User
    ur.log.Info("Fetching user by ID now...")
    if err := transaction.WithContext(ctx).
        Where("id = ?", userID).
        First(&user).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            ur.log.Debug("No user with given ID", "userID", userID)
            return nil, nil
        }
        ur.log.Error("Failed to fetch user by ID", "error", err)
        return nil, err
    }
    ur.log.Info("Successfully fetched user by ID", "userID", userID)
    ur.log.Debug("User fetched", "user", user)
    return &user, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
    ur.log.Info("Starting GetByEmail for User now...", "email", email)

    transaction := tx
    if transaction == nil {
        transaction = ur.db
        ur.log.Debug("Transaction is nil, using ur.db")
    }

    var user types.User
    ur.log.Info("Fetching user by email now...")
    if err := transaction.WithContext(ctx).
        Where("email = ?", email).
        First(&user).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            ur.log.Debug("No user with given email", "email", email)
            return nil, nil
        }
        ur.log.Error("Failed to fetch user by email", "error", err)
        return nil, err
    }
    ur.log.Info("Successfully fetched user by email", "email", email)
    ur.log.Debug("User fetched", "user", user)
    return &user, nil
}
