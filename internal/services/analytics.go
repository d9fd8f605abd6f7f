package services

import (
  "context"

  "gorm.io/gorm"

  "github.com/campuslink-org/campuslink-backend/internal/logger"
  "github.com/campuslink-org/campuslink-backend/internal/repos"
  "github.com/campuslink-org/campuslink-backend/internal/types"
)

type AnalyticsService interface {
  GetEventTypeDistribution(ctx context.Context, campusID uint) ([]*types.EventTypeCount, error)
  GetMonthlyParticipation(ctx context.Context, campusID uint, year int) ([]*types.MonthlyParticipation, error)
  GetTopRatedEvents(ctx context.Context, campusID uint, limit int) ([]*types.Event, error)
}

type analyticsService struct {
  db              *gorm.DB
  log             *logger.Logger
  analyticsRepo   repos.AnalyticsRepo
}

func NewAnalyticsService(db *gorm.DB, log *logger.Logger, analyticsRepo repos.AnalyticsRepo) AnalyticsService {
  serviceLog := log.With("service", "AnalyticsService")
  return &analyticsService{
    db:            db,
    log:           serviceLog,
    analyticsRepo: analyticsRepo,
  }
}

func (as *analyticsService) GetEventTypeDistribution(ctx context.Context, campusID uint) ([]*types.EventTypeCount, error) {
  return as.analyticsRepo.GetEventTypeDistribution(ctx, nil, campusID)
}

func (as *analyticsService) GetMonthlyParticipation(ctx context.Context, campusID uint, year int) ([]*types.MonthlyParticipation, error) {
  return as.analyticsRepo.GetMonthlyParticipation(ctx, nil, campusID, year)
}

func (as *analyticsService) GetTopRatedEvents(ctx context.Context, campusID uint, limit int) ([]*types.Event, error) {
  return as.analyticsRepo.GetTopRatedEvents(ctx, nil, campusID, limit)
}
