package repos

import (
    "context"
    "errors"
    "fmt"
    "time"

    "gorm.io/gorm"

    "github.com/campuslink-org/campuslink-backend/internal/logger"
    "github.com/campuslink-org/campuslink-backend/internal/types"
)

type EventRepo interface {
    Create(ctx context.Context, tx *gorm.DB, input types.EventCreate) (*types.Event, error)
    GetByID(ctx context.Context, tx *gorm.DB, eventID uint) (*types.Event, error)
    GetByCampus(ctx context.Context, tx *gorm.DB, campusID uint) ([]*types.Event, error)
    GetInDateRange(ctx context.Context, tx *gorm.DB, campusID uint, start, end time.Time) ([]*types.Event, error)
    Update(ctx context.Context, tx *gorm.DB, eventID uint, updates types.EventUpdate) (*types.Event, error)
    Delete(ctx context.Context, tx *gorm.DB, eventID uint) (bool, error)
}

type eventRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
    return &eventRepo{
        db:  db,
        log: baseLog.With("repo", "EventRepo"),
    }
}

// eventTimeLayouts are the accepted input representations for event dates,
// tried in order. Anything else fails the call.
var eventTimeLayouts = []string{
    time.RFC3339,
    "2006-01-02 15:04:05",
    "2006-01-02",
}

func parseEventTime(value string) (time.Time, error) {
    for _, layout := range eventTimeLayouts {
        if t, err := time.Parse(layout, value); err == nil {
            return t, nil
        }
    }
    return time.Time{}, fmt.Errorf("unparsable event date %q", value)
}

func (er *eventRepo) Create(ctx context.Context, tx *gorm.DB, input types.EventCreate) (*types.Event, error) {
    if tx == nil {
        tx = er.db
    }

    dateTime, err := parseEventTime(input.DateTime)
    if err != nil {
        er.log.Error("failed to coerce event dateTime", "error", err)
        return nil, err
    }
    // Absent end time is stored as NULL, never omitted.
    var endDateTime *time.Time
    if input.EndDateTime != nil {
        t, err := parseEventTime(*input.EndDateTime)
        if err != nil {
            er.log.Error("failed to coerce event endDateTime", "error", err)
            return nil, err
        }
        endDateTime = &t
    }

    event := &types.Event{
        CampusID:         input.CampusID,
        Title:            input.Title,
        ProgramType:      input.ProgramType,
        DateTime:         dateTime,
        EndDateTime:      endDateTime,
        ParticipantCount: input.ParticipantCount,
        Rating:           input.Rating,
    }
    if err := tx.WithContext(ctx).Create(event).Error; err != nil {
        er.log.Error("failed to create event", "error", err)
        return nil, err
    }
    er.log.Info("created event", "eventID", event.ID, "campusID", event.CampusID)
    return event, nil
}

func (er *eventRepo) GetByID(ctx context.Context, tx *gorm.DB, eventID uint) (*types.Event, error) {
    if tx == nil {
        tx = er.db
    }
    var event types.Event
    if err := tx.WithContext(ctx).
        Where("id = ?", eventID).
        First(&event).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, nil
        }
        er.log.Error("failed to fetch event by ID", "error", err, "eventID", eventID)
        return nil, err
    }
    return &event, nil
}

func (er *eventRepo) GetByCampus(ctx context.Context, tx *gorm.DB, campusID uint) ([]*types.Event, error) {
    if tx == nil {
        tx = er.db
    }
    var events []*types.Event
    if err := tx.WithContext(ctx).
        Where("campus_id = ?", campusID).
        Order("date_time DESC").
        Find(&events).Error; err != nil {
        er.log.Error("failed to fetch events by campus", "error", err, "campusID", campusID)
        return nil, err
    }
    return events, nil
}

// GetInDateRange includes both bounds. The caller supplies start <= end.
func (er *eventRepo) GetInDateRange(ctx context.Context, tx *gorm.DB, campusID uint, start, end time.Time) ([]*types.Event, error) {
    if tx == nil {
        tx = er.db
    }
    var events []*types.Event
    if err := tx.WithContext(ctx).
        Where("campus_id = ? AND date_time >= ? AND date_time <= ?", campusID, start, end).
        Order("date_time ASC").
        Find(&events).Error; err != nil {
        er.log.Error("failed to fetch events in date range", "error", err, "campusID", campusID)
        return nil, err
    }
    return events, nil
}

func (er *eventRepo) Update(ctx context.Context, tx *gorm.DB, eventID uint, updates types.EventUpdate) (*types.Event, error) {
    if tx == nil {
        tx = er.db
    }

    event, err := er.GetByID(ctx, tx, eventID)
    if err != nil {
        return nil, err
    }
    if event == nil {
        return nil, nil
    }

    fields := map[string]interface{}{}
    if updates.Title != nil {
        fields["title"] = *updates.Title
    }
    if updates.ProgramType != nil {
        fields["program_type"] = *updates.ProgramType
    }
    if updates.DateTime != nil {
        t, err := parseEventTime(*updates.DateTime)
        if err != nil {
            er.log.Error("failed to coerce event dateTime", "error", err, "eventID", eventID)
            return nil, err
        }
        fields["date_time"] = t
    }
    if updates.EndDateTime != nil {
        // Empty string clears the end time; absent leaves it alone.
        if *updates.EndDateTime == "" {
            fields["end_date_time"] = nil
        } else {
            t, err := parseEventTime(*updates.EndDateTime)
            if err != nil {
                er.log.Error("failed to coerce event endDateTime", "error", err, "eventID", eventID)
                return nil, err
            }
            fields["end_date_time"] = t
        }
    }
    if updates.ParticipantCount != nil {
        fields["participant_count"] = *updates.ParticipantCount
    }
    if updates.Rating != nil {
        fields["rating"] = *updates.Rating
    }
    if len(fields) == 0 {
        return event, nil
    }

    if err := tx.WithContext(ctx).
        Model(&types.Event{}).
        Where("id = ?", eventID).
        Updates(fields).Error; err != nil {
        er.log.Error("failed to update event", "error", err, "eventID", eventID)
        return nil, err
    }
    er.log.Info("updated event", "eventID", eventID)
    return er.GetByID(ctx, tx, eventID)
}

// Delete reports whether a row was actually removed.
func (er *eventRepo) Delete(ctx context.Context, tx *gorm.DB, eventID uint) (bool, error) {
    if tx == nil {
        tx = er.db
    }
    res := tx.WithContext(ctx).
        Where("id = ?", eventID).
        Delete(&types.Event{})
    if res.Error != nil {
        er.log.Error("failed to delete event", "error", res.Error, "eventID", eventID)
        return false, res.Error
    }
    deleted := res.RowsAffected > 0
    er.log.Info("deleted event", "eventID", eventID, "deleted", deleted)
    return deleted, nil
}
