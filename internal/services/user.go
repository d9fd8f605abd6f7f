package services

import (
  "context"
  "fmt"
  "strings"

  "gorm.io/gorm"

  "github.com/campuslink-org/campuslink-backend/internal/logger"
  "github.com/campuslink-org/campuslink-backend/internal/repos"
  "github.com/campuslink-org/campuslink-backend/internal/types"
)

type UserService interface {
  CreateUser(ctx context.Context, firstName, lastName, email string) (*types.User, error)
  GetUser(ctx context.Context, userID uint) (*types.User, error)
  GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}

type userService struct {
  db        *gorm.DB
  log       *logger.Logger
  userRepo  repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
  serviceLog := log.With("service", "UserService")
  return &userService{
    db:       db,
    log:      serviceLog,
    userRepo: userRepo,
  }
}

func (us *userService) CreateUser(ctx context.Context, firstName, lastName, email string) (*types.User, error) {
  email = strings.TrimSpace(email)
  if email == "" {
    return nil, fmt.Errorf("email cannot be empty")
  }
  user := &types.User{
    FirstName: firstName,
    LastName:  lastName,
    Email:     email,
  }
  return us.userRepo.Create(ctx, nil, user)
}

func (us *userService) GetUser(ctx context.Context, userID uint) (*types.User, error) {
  return us.userRepo.GetByID(ctx, nil, userID)
}

func (us *userService) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
  return us.userRepo.GetByEmail(ctx, nil, email)
}
