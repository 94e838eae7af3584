package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	diaryHTTP "travel-diary/internal/controller/http"
	"travel-diary/internal/repo/persistent"
	"travel-diary/internal/usecase"
	"travel-diary/pkg/config"
	"travel-diary/pkg/jwt"
	"travel-diary/pkg/logger"
	"travel-diary/pkg/middleware"
	"travel-diary/pkg/queue"
	"travel-diary/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "travel-diary/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	diaryRepo := persistent.NewDiaryRepository(db)
	auditRepo := persistent.NewAuditRepository(db)
	userRepo := persistent.NewUserRepository(db)
	moderatorRepo := persistent.NewModeratorRepository(db)

	// Initialize use cases
	diaryUseCase := usecase.NewDiaryUseCase(diaryRepo, s3Client, redisClient, log)
	moderationUseCase := usecase.NewModerationUseCase(diaryRepo, auditRepo, queueClient, redisClient, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, moderatorRepo, jwtService, log)

	// Initialize HTTP handlers
	diaryHandler := diaryHTTP.NewDiaryHandler(diaryUseCase, log)
	moderationHandler := diaryHTTP.NewModerationHandler(moderationUseCase, log)
	authHandler := diaryHTTP.NewAuthHandler(authUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Public routes: browsing approved diaries requires no token, so the
	// rate limiter buckets by client IP
	public := api.Group("")
	public.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)
		public.POST("/admin/login", authHandler.ModeratorLogin)
		public.GET("/diaries", diaryHandler.ListDiaries)
		public.GET("/diaries/:id", diaryHandler.GetDiary)
	}

	// Author routes: the limiter runs after auth and buckets by user id
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	authed.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	{
		authed.GET("/auth/profile", authHandler.Profile)
		authed.POST("/diaries", diaryHandler.CreateDiary)
		authed.PUT("/diaries/:id", diaryHandler.UpdateDiary)
		authed.DELETE("/diaries/:id", diaryHandler.DeleteDiary)
		authed.GET("/diaries/mine", diaryHandler.ListMyDiaries)
	}

	// Moderation routes: bucketed by moderator id
	admin := api.Group("/admin")
	admin.Use(middleware.ModeratorMiddleware(jwtService))
	admin.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	{
		admin.GET("/diaries", moderationHandler.ListDiaries)
		admin.GET("/diaries/:id", moderationHandler.GetDiary)
		admin.POST("/diaries/:id/audit", moderationHandler.ReviewDiary)
		admin.GET("/stats", moderationHandler.Stats)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Diary service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down diary service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Diary service exited")
}
