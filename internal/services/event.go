package services

import (
  "context"
  "fmt"
  "time"

  "gorm.io/gorm"

  "github.com/campuslink-org/campuslink-backend/internal/logger"
  "github.com/campuslink-org/campuslink-backend/internal/repos"
  "github.com/campuslink-org/campuslink-backend/internal/types"
)

type EventService interface {
  CreateEvent(ctx context.Context, input types.EventCreate) (*types.Event, error)
  GetEvent(ctx context.Context, eventID uint) (*types.Event, error)
  GetEventsByCampus(ctx context.Context, campusID uint) ([]*types.Event, error)
  GetEventsInDateRange(ctx context.Context, campusID uint, start, end time.Time) ([]*types.Event, error)
  UpdateEvent(ctx context.Context, eventID uint, updates types.EventUpdate) (*types.Event, error)
  DeleteEvent(ctx context.Context, eventID uint) (bool, error)
}

type eventService struct {
  db          *gorm.DB
  log         *logger.Logger
  eventRepo   repos.EventRepo
}

func NewEventService(db *gorm.DB, log *logger.Logger, eventRepo repos.EventRepo) EventService {
  serviceLog := log.With("service", "EventService")
  return &eventService{
    db:        db,
    log:       serviceLog,
    eventRepo: eventRepo,
  }
}

func (es *eventService) CreateEvent(ctx context.Context, input types.EventCreate) (*types.Event, error) {
  if input.CampusID == 0 {
    return nil, fmt.Errorf("campusId is required")
  }
  if input.DateTime == "" {
    return nil, fmt.Errorf("dateTime is required")
  }
  return es.eventRepo.Create(ctx, nil, input)
}

func (es *eventService) GetEvent(ctx context.Context, eventID uint) (*types.Event, error) {
  return es.eventRepo.GetByID(ctx, nil, eventID)
}

func (es *eventService) GetEventsByCampus(ctx context.Context, campusID uint) ([]*types.Event, error) {
  return es.eventRepo.GetByCampus(ctx, nil, campusID)
}

func (es *eventService) GetEventsInDateRange(ctx context.Context, campusID uint, start, end time.Time) ([]*types.Event, error) {
  return es.eventRepo.GetInDateRange(ctx, nil, campusID, start, end)
}

func (es *eventService) UpdateEvent(ctx context.Context, eventID uint, updates types.EventUpdate) (*types.Event, error) {
  return es.eventRepo.Update(ctx, nil, eventID, updates)
}

func (es *eventService) DeleteEvent(ctx context.Context, eventID uint) (bool, error) {
  return es.eventRepo.Delete(ctx, nil, eventID)
}
