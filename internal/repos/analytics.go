package repos

import (
    "context"
    "time"

    "gorm.io/gorm"

    "github.com/campuslink-org/campuslink-backend/internal/logger"
    "github.com/campuslink-org/campuslink-backend/internal/types"
)

// DefaultTopRatedLimit is used when the caller does not supply a limit.
const DefaultTopRatedLimit = 5

type AnalyticsRepo interface {
    GetEventTypeDistribution(ctx context.Context, tx *gorm.DB, campusID uint) ([]*types.EventTypeCount, error)
    GetMonthlyParticipation(ctx context.Context, tx *gorm.DB, campusID uint, year int) ([]*types.MonthlyParticipation, error)
    GetTopRatedEvents(ctx context.Context, tx *gorm.DB, campusID uint, limit int) ([]*types.Event, error)
}

type analyticsRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewAnalyticsRepo(db *gorm.DB, baseLog *logger.Logger) AnalyticsRepo {
    return &analyticsRepo{
        db:  db,
        log: baseLog.With("repo", "AnalyticsRepo"),
    }
}

// GetEventTypeDistribution counts a campus's events per program type. Group
// order is whatever the store returns.
func (ar *analyticsRepo) GetEventTypeDistribution(ctx context.Context, tx *gorm.DB, campusID uint) ([]*types.EventTypeCount, error) {
    if tx == nil {
        tx = ar.db
    }
    var results []*types.EventTypeCount
    if err := tx.WithContext(ctx).
        Model(&types.Event{}).
        Select("program_type, COUNT(*) AS count").
        Where("campus_id = ?", campusID).
        Group("program_type").
        Find(&results).Error; err != nil {
        ar.log.Error("failed to fetch event type distribution", "error", err, "campusID", campusID)
        return nil, err
    }
    return results, nil
}

// GetMonthlyParticipation sums participant counts per calendar month of the
// given year, aggregated in process over the campus's events. Months without
// events are omitted, never returned as zero.
func (ar *analyticsRepo) GetMonthlyParticipation(ctx context.Context, tx *gorm.DB, campusID uint, year int) ([]*types.MonthlyParticipation, error) {
    if tx == nil {
        tx = ar.db
    }
    var events []*types.Event
    if err := tx.WithContext(ctx).
        Where("campus_id = ?", campusID).
        Find(&events).Error; err != nil {
        ar.log.Error("failed to fetch events for monthly participation", "error", err, "campusID", campusID)
        return nil, err
    }

    var (
        totals [13]int
        seen   [13]bool
    )
    for _, event := range events {
        if event.DateTime.Year() != year {
            continue
        }
        month := int(event.DateTime.Month())
        seen[month] = true
        if event.ParticipantCount != nil {
            totals[month] += *event.ParticipantCount
        }
    }

    // Calendar order, long month names.
    var results []*types.MonthlyParticipation
    for month := 1; month <= 12; month++ {
        if !seen[month] {
            continue
        }
        results = append(results, &types.MonthlyParticipation{
            Month:        time.Month(month).String(),
            Participants: totals[month],
        })
    }
    ar.log.Debug("monthly participation aggregated", "campusID", campusID, "year", year, "months", len(results))
    return results, nil
}

// GetTopRatedEvents orders a campus's events by rating descending. Unrated
// events sort last; the ordering is pinned with NULLS LAST rather than left
// to the store default.
func (ar *analyticsRepo) GetTopRatedEvents(ctx context.Context, tx *gorm.DB, campusID uint, limit int) ([]*types.Event, error) {
    if tx == nil {
        tx = ar.db
    }
    if limit <= 0 {
        limit = DefaultTopRatedLimit
    }
    var events []*types.Event
    if err := tx.WithContext(ctx).
        Where("campus_id = ?", campusID).
        Order("rating DESC NULLS LAST").
        Limit(limit).
        Find(&events).Error; err != nil {
        ar.log.Error("failed to fetch top rated events", "error", err, "campusID", campusID)
        return nil, err
    }
    return events, nil
}
