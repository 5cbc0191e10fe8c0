package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/x00/Application-Yaga/internal/config"
	"github.com/x00/Application-Yaga/internal/middleware"
	"github.com/x00/Application-Yaga/internal/modules/events"
	ledgerHttp "github.com/x00/Application-Yaga/internal/modules/ledger/delivery/http"
	ledgerRepo "github.com/x00/Application-Yaga/internal/modules/ledger/repository"
	ledgerService "github.com/x00/Application-Yaga/internal/modules/ledger/service"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	actionRepo := ledgerRepo.NewActionRepository(db)
	reactionRepo := ledgerRepo.NewReactionRepository(db)

	dispatcher := events.NewDispatcher()
	if redisClient != nil {
		dispatcher.Subscribe(events.NewRedisPublisher(redisClient))
	}

	ledgerSvc := ledgerService.NewLedgerService(actionRepo, reactionRepo, dispatcher)
	ledgerHandler := ledgerHttp.NewLedgerHandler(ledgerSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes (no auth required)
	api.GET("/actions", ledgerHandler.ListActions)
	api.GET("/actions/:id", ledgerHandler.GetAction)
	api.GET("/reactions/:parentType/:parentID", ledgerHandler.GetReactionSummary)
	api.GET("/users/:userID/received", ledgerHandler.GetReceivedCount)

	// A typed nil *redis.Client inside the interface would defeat the
	// limiter's nil check
	var limiter middleware.SetNXClient
	if redisClient != nil {
		limiter = redisClient
	}

	// Protected routes (apply auth middleware explicitly)
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.POST("/reactions",
			middleware.RateLimit(limiter, "reaction", cfg.RateLimitReaction),
			ledgerHandler.SetReaction)
		protected.GET("/reactions/:parentType/:parentID/me", ledgerHandler.GetMyReaction)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
