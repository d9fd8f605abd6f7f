package repos

import (
    "context"
    "testing"

    "github.com/campuslink-org/campuslink-backend/internal/types"
)

func TestAnalyticsRepo_GetEventTypeDistribution(t *testing.T) {
    db := newTestDB(t)
    campusRepo := NewCampusRepo(db, newTestLogger())
    eventRepo := NewEventRepo(db, newTestLogger())
    repo := NewAnalyticsRepo(db, newTestLogger())
    campus := mustCreateCampus(t, campusRepo, "Main")

    for i := 0; i < 3; i++ {
        mustCreateEvent(t, eventRepo, types.EventCreate{
            CampusID:    campus.ID,
            ProgramType: "workshop",
            DateTime:    "2024-02-01T10:00:00Z",
        })
    }
    for i := 0; i < 2; i++ {
        mustCreateEvent(t, eventRepo, types.EventCreate{
            CampusID:    campus.ID,
            ProgramType: "seminar",
            DateTime:    "2024-02-02T10:00:00Z",
        })
    }

    distribution, err := repo.GetEventTypeDistribution(context.Background(), nil, campus.ID)
    if err != nil {
        t.Fatalf("GetEventTypeDistribution failed: %v", err)
    }
    if len(distribution) != 2 {
        t.Fatalf("expected 2 groups, got %d", len(distribution))
    }
    // Group order is unspecified; check by type.
    counts := map[string]int64{}
    var total int64
    for _, group := range distribution {
        counts[group.ProgramType] = group.Count
        total += group.Count
    }
    if counts["workshop"] != 3 {
        t.Errorf("expected 3 workshops, got %d", counts["workshop"])
    }
    if counts["seminar"] != 2 {
        t.Errorf("expected 2 seminars, got %d", counts["seminar"])
    }
    if total != 5 {
        t.Errorf("expected totals summing to 5, got %d", total)
    }
}

func TestAnalyticsRepo_GetMonthlyParticipation(t *testing.T) {
    db := newTestDB(t)
    campusRepo := NewCampusRepo(db, newTestLogger())
    eventRepo := NewEventRepo(db, newTestLogger())
    repo := NewAnalyticsRepo(db, newTestLogger())
    campus := mustCreateCampus(t, campusRepo, "Main")
    ctx := context.Background()

    mustCreateEvent(t, eventRepo, types.EventCreate{
        CampusID:         campus.ID,
        DateTime:         "2024-03-10T10:00:00Z",
        ParticipantCount: intPtr(10),
    })
    mustCreateEvent(t, eventRepo, types.EventCreate{
        CampusID:         campus.ID,
        DateTime:         "2024-03-20T10:00:00Z",
        ParticipantCount: intPtr(5),
    })
    // Wrong year: must not contribute.
    mustCreateEvent(t, eventRepo, types.EventCreate{
        CampusID:         campus.ID,
        DateTime:         "2023-03-10T10:00:00Z",
        ParticipantCount: intPtr(100),
    })

    participation, err := repo.GetMonthlyParticipation(ctx, nil, campus.ID, 2024)
    if err != nil {
        t.Fatalf("GetMonthlyParticipation failed: %v", err)
    }
    if len(participation) != 1 {
        t.Fatalf("expected a single entry (no zero months), got %d", len(participation))
    }
    if participation[0].Month != "March" {
        t.Errorf("expected month March, got %s", participation[0].Month)
    }
    if participation[0].Participants != 15 {
        t.Errorf("expected 15 participants, got %d", participation[0].Participants)
    }
}

func TestAnalyticsRepo_GetMonthlyParticipation_NilCountsAsZero(t *testing.T) {
    db := newTestDB(t)
    campusRepo := NewCampusRepo(db, newTestLogger())
    eventRepo := NewEventRepo(db, newTestLogger())
    repo := NewAnalyticsRepo(db, newTestLogger())
    campus := mustCreateCampus(t, campusRepo, "Main")

    mustCreateEvent(t, eventRepo, types.EventCreate{
        CampusID: campus.ID,
        DateTime: "2024-08-05T10:00:00Z",
    })
    mustCreateEvent(t, eventRepo, types.EventCreate{
        CampusID:         campus.ID,
        DateTime:         "2024-08-06T10:00:00Z",
        ParticipantCount: intPtr(7),
    })

    participation, err := repo.GetMonthlyParticipation(context.Background(), nil, campus.ID, 2024)
    if err != nil {
        t.Fatalf("GetMonthlyParticipation failed: %v", err)
    }
    if len(participation) != 1 {
        t.Fatalf("expected 1 entry, got %d", len(participation))
    }
    if participation[0].Month != "August" || participation[0].Participants != 7 {
        t.Errorf("expected August with 7 participants, got %s with %d", participation[0].Month, participation[0].Participants)
    }
}

func TestAnalyticsRepo_GetMonthlyParticipation_CalendarOrder(t *testing.T) {
    db := newTestDB(t)
    campusRepo := NewCampusRepo(db, newTestLogger())
    eventRepo := NewEventRepo(db, newTestLogger())
    repo := NewAnalyticsRepo(db, newTestLogger())
    campus := mustCreateCampus(t, campusRepo, "Main")

    for _, date := range []string{"2024-11-01T10:00:00Z", "2024-02-01T10:00:00Z", "2024-07-01T10:00:00Z"} {
        mustCreateEvent(t, eventRepo, types.EventCreate{
            CampusID:         campus.ID,
            DateTime:         date,
            ParticipantCount: intPtr(1),
        })
    }

    participation, err := repo.GetMonthlyParticipation(context.Background(), nil, campus.ID, 2024)
    if err != nil {
        t.Fatalf("GetMonthlyParticipation failed: %v", err)
    }
    want := []string{"February", "July", "November"}
    if len(participation) != len(want) {
        t.Fatalf("expected %d entries, got %d", len(want), len(participation))
    }
    for i, entry := range participation {
        if entry.Month != want[i] {
            t.Errorf("position %d: expected %s, got %s", i, want[i], entry.Month)
        }
    }
}

func TestAnalyticsRepo_GetTopRatedEvents(t *testing.T) {
    db := newTestDB(t)
    campusRepo := NewCampusRepo(db, newTestLogger())
    eventRepo := NewEventRepo(db, newTestLogger())
    repo := NewAnalyticsRepo(db, newTestLogger())
    campus := mustCreateCampus(t, campusRepo, "Main")
    ctx := context.Background()

    ratings := []float64{3.5, 4.8, 4.1, 2.0}
    for _, rating := range ratings {
        mustCreateEvent(t, eventRepo, types.EventCreate{
            CampusID: campus.ID,
            DateTime: "2024-05-01T10:00:00Z",
            Rating:   floatPtr(rating),
        })
    }
    // Unrated event sorts last under the documented NULLS LAST convention.
    mustCreateEvent(t, eventRepo, types.EventCreate{
        CampusID: campus.ID,
        DateTime: "2024-05-01T10:00:00Z",
    })

    events, err := repo.GetTopRatedEvents(ctx, nil, campus.ID, 3)
    if err != nil {
        t.Fatalf("GetTopRatedEvents failed: %v", err)
    }
    if len(events) != 3 {
        t.Fatalf("expected 3 events, got %d", len(events))
    }
    want := []float64{4.8, 4.1, 3.5}
    for i, event := range events {
        if event.Rating == nil || *event.Rating != want[i] {
            t.Errorf("position %d: expected rating %.1f, got %v", i, want[i], event.Rating)
        }
    }

    // Default limit kicks in when none supplied.
    all, err := repo.GetTopRatedEvents(ctx, nil, campus.ID, 0)
    if err != nil {
        t.Fatalf("GetTopRatedEvents failed: %v", err)
    }
    if len(all) != 5 {
        t.Fatalf("expected all 5 events under default limit, got %d", len(all))
    }
    if all[len(all)-1].Rating != nil {
        t.Errorf("expected unrated event last, got rating %v", *all[len(all)-1].Rating)
    }
}
