package repos

import (
    "context"
    "path/filepath"
    "testing"
    "time"

    "github.com/glebarez/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/campuslink-org/campuslink-backend/internal/logger"
    "github.com/campuslink-org/campuslink-backend/internal/types"
)

// newTestDB opens a fresh database with the full schema migrated. A file in
// the test's temp dir is used rather than :memory: so every pooled connection
// sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
    t.Helper()
    dbPath := filepath.Join(t.TempDir(), "campuslink_test.db")
    db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
        Logger: gormlogger.Default.LogMode(gormlogger.Silent),
    })
    if err != nil {
        t.Fatalf("failed to open test database: %v", err)
    }
    if err := db.AutoMigrate(
        &types.User{},
        &types.Campus{},
        &types.Event{},
        &types.ChatSession{},
    ); err != nil {
        t.Fatalf("failed to migrate test database: %v", err)
    }
    return db
}

func newTestLogger() *logger.Logger {
    return logger.NewNop()
}

func mustCreateCampus(t *testing.T, repo CampusRepo, name string) *types.Campus {
    t.Helper()
    campus, err := repo.Create(context.Background(), nil, &types.Campus{Name: name})
    if err != nil {
        t.Fatalf("failed to create campus %q: %v", name, err)
    }
    return campus
}

func mustCreateEvent(t *testing.T, repo EventRepo, input types.EventCreate) *types.Event {
    t.Helper()
    event, err := repo.Create(context.Background(), nil, input)
    if err != nil {
        t.Fatalf("failed to create event: %v", err)
    }
    return event
}

func intPtr(i int) *int             { return &i }
func floatPtr(f float64) *float64   { return &f }
func strPtr(s string) *string       { return &s }

func rfc3339(t time.Time) string {
    return t.UTC().Format(time.RFC3339)
}
