package db

import (
  "fmt"
  "os"

  "gorm.io/driver/postgres"
  "gorm.io/gorm"

  "github.com/campuslink-org/campuslink-backend/internal/logger"
  "github.com/campuslink-org/campuslink-backend/internal/types"
)

type PostgresService struct {
  db *gorm.DB
  log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  //1) DATABASE_URL is required; without it there is nothing to connect to
  log.Info("Attempting to load DATABASE_URL for Postgres now...")
  dsn, ok := os.LookupEnv("DATABASE_URL")
  if !ok || dsn == "" {
    log.Error("DATABASE_URL is not set, cannot start")
    return nil, fmt.Errorf("DATABASE_URL environment variable is required")
  }
  log.Info("DATABASE_URL loaded for Postgres :)")

  //2) Attempt DB Connection
  log.Info("Attempting to connect to Postgres DB now...")
  gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    log.Error("Failed to connect to Postgres DB", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres DB: %w", err)
  }
  log.Info("Successfully Connected to Postgres DB :)")

  return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Starting AutoMigrateAll for all GORM models now...")

  err := s.db.AutoMigrate(
    &types.User{},
    &types.Campus{},
    &types.Event{},
    &types.ChatSession{},
  )
  if err != nil {
    s.log.Error("AutoMigrateAll failed for Base Tables :(", "error", err)
    return err
  }
  s.log.Info("AutoMigrateAll completed successfully for Base Tables :)")

  s.log.Info("Configuring Foreign Key Relationships for Base Tables now...")
  // -- Event.campus_id => campus.id (ON DELETE CASCADE)
  if err := s.db.Exec(`
      ALTER TABLE "event"
      ADD CONSTRAINT "fk_event_campus_id"
      FOREIGN KEY ("campus_id")
      REFERENCES "campus"("id")
      ON DELETE CASCADE
  `).Error; err != nil {
      return fmt.Errorf("failed to add fk_event_campus_id: %w", err)
  }
  // -- ChatSession.user_id => user.id (ON DELETE CASCADE)
  if err := s.db.Exec(`
      ALTER TABLE "chat_session"
      ADD CONSTRAINT "fk_chat_session_user_id"
      FOREIGN KEY ("user_id")
      REFERENCES "user"("id")
      ON DELETE CASCADE
  `).Error; err != nil {
      return fmt.Errorf("failed to add fk_chat_session_user_id: %w", err)
  }
  s.log.Info("Successfully Added Foreign Key Relationships to Base Tables :)")

  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
