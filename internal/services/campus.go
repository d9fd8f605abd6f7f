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

type CampusService interface {
  CreateCampus(ctx context.Context, name, address string) (*types.Campus, error)
  GetCampus(ctx context.Context, campusID uint) (*types.Campus, error)
  GetAllCampuses(ctx context.Context) ([]*types.Campus, error)
  UpdateCampus(ctx context.Context, campusID uint, updates types.CampusUpdate) (*types.Campus, error)
}

type campusService struct {
  db          *gorm.DB
  log         *logger.Logger
  campusRepo  repos.CampusRepo
}

func NewCampusService(db *gorm.DB, log *logger.Logger, campusRepo repos.CampusRepo) CampusService {
  serviceLog := log.With("service", "CampusService")
  return &campusService{
    db:         db,
    log:        serviceLog,
    campusRepo: campusRepo,
  }
}

func (cs *campusService) CreateCampus(ctx context.Context, name, address string) (*types.Campus, error) {
  name = strings.TrimSpace(name)
  if name == "" {
    return nil, fmt.Errorf("campus name cannot be empty")
  }
  campus := &types.Campus{
    Name:    name,
    Address: address,
  }
  return cs.campusRepo.Create(ctx, nil, campus)
}

func (cs *campusService) GetCampus(ctx context.Context, campusID uint) (*types.Campus, error) {
  return cs.campusRepo.GetByID(ctx, nil, campusID)
}

func (cs *campusService) GetAllCampuses(ctx context.Context) ([]*types.Campus, error) {
  return cs.campusRepo.GetAll(ctx, nil)
}

func (cs *campusService) UpdateCampus(ctx context.Context, campusID uint, updates types.CampusUpdate) (*types.Campus, error) {
  return cs.campusRepo.Update(ctx, nil, campusID, updates)
}
