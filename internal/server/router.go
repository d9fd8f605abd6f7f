package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"

  "github.com/campuslink-org/campuslink-backend/internal/handlers"
)

type RouterConfig struct {
  UserHandler           *handlers.UserHandler
  CampusHandler         *handlers.CampusHandler
  EventHandler          *handlers.EventHandler
  ChatHandler           *handlers.ChatHandler
  AnalyticsHandler      *handlers.AnalyticsHandler
  Middlewares           []gin.HandlerFunc
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  //-----------------------------------------
  // Cors Setup
  //-----------------------------------------
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
        "http://localhost:3000",
        "https://campuslink.app",
        "https://www.campuslink.app",
    },
    AllowMethods:     []string{"GET","POST","PUT","DELETE","PATCH","OPTIONS"},
    AllowHeaders:     []string{"Authorization","Content-Type","X-Requested-With"},
    AllowCredentials: true,
  }))
  for _, mw := range cfg.Middlewares {
    router.Use(mw)
  }

  //-----------------------------------------
  // Users
  //-----------------------------------------
  users := router.Group("/users")
  {
    users.POST("", cfg.UserHandler.CreateUser)
    users.GET("/by-email", cfg.UserHandler.GetUserByEmail)
    users.GET("/:id", cfg.UserHandler.GetUser)
    users.GET("/:id/chat-history", cfg.ChatHandler.GetChatHistory)
  }

  //-----------------------------------------
  // Campuses
  //-----------------------------------------
  campuses := router.Group("/campuses")
  {
    campuses.POST("", cfg.CampusHandler.CreateCampus)
    campuses.GET("", cfg.CampusHandler.GetAllCampuses)
    campuses.GET("/:id", cfg.CampusHandler.GetCampus)
    campuses.PATCH("/:id", cfg.CampusHandler.UpdateCampus)
    campuses.GET("/:id/events", cfg.EventHandler.GetEventsByCampus)
    campuses.GET("/:id/events/range", cfg.EventHandler.GetEventsInDateRange)
    campuses.GET("/:id/analytics/event-types", cfg.AnalyticsHandler.GetEventTypeDistribution)
    campuses.GET("/:id/analytics/monthly-participation", cfg.AnalyticsHandler.GetMonthlyParticipation)
    campuses.GET("/:id/analytics/top-rated", cfg.AnalyticsHandler.GetTopRatedEvents)
  }

  //-----------------------------------------
  // Events
  //-----------------------------------------
  events := router.Group("/events")
  {
    events.POST("", cfg.EventHandler.CreateEvent)
    events.GET("/:id", cfg.EventHandler.GetEvent)
    events.PATCH("/:id", cfg.EventHandler.UpdateEvent)
    events.DELETE("/:id", cfg.EventHandler.DeleteEvent)
  }

  //-----------------------------------------
  // Chat
  //-----------------------------------------
  chat := router.Group("/chat")
  {
    chat.POST("/sessions", cfg.ChatHandler.CreateChatSession)
  }

  return router
}
