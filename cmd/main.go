package main

import (
  "fmt"
  "os"

  "github.com/gin-gonic/gin"

  "github.com/campuslink-org/campuslink-backend/internal/db"
  "github.com/campuslink-org/campuslink-backend/internal/handlers"
  "github.com/campuslink-org/campuslink-backend/internal/logger"
  "github.com/campuslink-org/campuslink-backend/internal/middleware"
  "github.com/campuslink-org/campuslink-backend/internal/repos"
  "github.com/campuslink-org/campuslink-backend/internal/server"
  "github.com/campuslink-org/campuslink-backend/internal/services"
  "github.com/campuslink-org/campuslink-backend/internal/utils"
)

func main() {
  // Logger Setup
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Postgres Setup
  log.Info("Setting Up Postgres from Main now...")
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Fatal error: Cannot init Postgres", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()
  log.Info("Postgres Setup From Main Successful :)")

  // Repositories Setup
  log.Info("Setting Up Repositories from Main now...")
  userRepo := repos.NewUserRepo(thePG, log)
  campusRepo := repos.NewCampusRepo(thePG, log)
  eventRepo := repos.NewEventRepo(thePG, log)
  chatSessionRepo := repos.NewChatSessionRepo(thePG, log)
  analyticsRepo := repos.NewAnalyticsRepo(thePG, log)
  log.Info("Repositories Set Up From Main Successful :)")

  // Services Setup
  log.Info("Setting up Services from Main now...")
  userService := services.NewUserService(thePG, log, userRepo)
  campusService := services.NewCampusService(thePG, log, campusRepo)
  eventService := services.NewEventService(thePG, log, eventRepo)
  chatService := services.NewChatService(thePG, log, chatSessionRepo)
  analyticsService := services.NewAnalyticsService(thePG, log, analyticsRepo)
  log.Info("Services Set Up From Main Successful :)")

  // Handler Setup
  log.Info("Setting Up Handlers from Main now...")
  userHandler := handlers.NewUserHandler(userService)
  campusHandler := handlers.NewCampusHandler(campusService)
  eventHandler := handlers.NewEventHandler(eventService)
  chatHandler := handlers.NewChatHandler(chatService)
  analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
  log.Info("Handlers Set Up From Main Successful :)")

  // Router Setup
  log.Info("Setting Up Router from Main now...")
  router := server.NewRouter(server.RouterConfig{
    UserHandler:        userHandler,
    CampusHandler:      campusHandler,
    EventHandler:       eventHandler,
    ChatHandler:        chatHandler,
    AnalyticsHandler:   analyticsHandler,
    Middlewares:        []gin.HandlerFunc{middleware.RequestID(log)},
  })
  log.Info("Router Set Up From Main Successful :)")

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
    os.Exit(1)
  }
}
