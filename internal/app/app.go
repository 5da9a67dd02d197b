package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	marketHTTP "photobazaar/internal/controller/http"
	"photobazaar/internal/repo/persistent"
	"photobazaar/internal/usecase"
	"photobazaar/pkg/config"
	"photobazaar/pkg/jwt"
	"photobazaar/pkg/logger"
	"photobazaar/pkg/middleware"
	"photobazaar/pkg/queue"
	"photobazaar/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "photobazaar/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	photoRepo := persistent.NewPhotoRepository(db)
	categoryRepo := persistent.NewCategoryRepository(db)
	purchaseRepo := persistent.NewPurchaseRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)

	// A nil *queue.Client must stay a nil interface so the use cases can
	// skip publishing instead of panicking.
	var publisher usecase.TaskPublisher
	if queueClient != nil {
		publisher = queueClient
	}

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, s3Client, publisher, log)
	photoUseCase := usecase.NewPhotoUseCase(photoRepo, categoryRepo, s3Client, publisher, log)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, log)
	interactionUseCase := usecase.NewInteractionUseCase(interactionRepo, photoRepo, redisClient, log)
	purchaseUseCase := usecase.NewPurchaseUseCase(purchaseRepo, photoRepo, s3Client, publisher, cfg, log)
	userUseCase := usecase.NewUserUseCase(userRepo, photoRepo, purchaseRepo, log)

	// Initialize HTTP handlers
	authHandler := marketHTTP.NewAuthHandler(authUseCase, log)
	photoHandler := marketHTTP.NewPhotoHandler(photoUseCase, interactionUseCase, cfg.MaxUploadSize, log)
	categoryHandler := marketHTTP.NewCategoryHandler(categoryUseCase, log)
	purchaseHandler := marketHTTP.NewPurchaseHandler(purchaseUseCase, log)
	userHandler := marketHTTP.NewUserHandler(userUseCase, photoUseCase, log)
	paymentHandler := marketHTTP.NewPaymentHandler(purchaseUseCase, log)

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
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}

	// Public routes: anonymous browsing allowed, identity attached when present
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		public.GET("/photos", photoHandler.ListPhotos)
		public.GET("/photos/:id", photoHandler.GetPhoto)
		public.GET("/categories", categoryHandler.ListCategories)
		public.GET("/categories/:identifier", categoryHandler.GetCategory)
		public.GET("/users/:id", userHandler.GetUser)
		public.GET("/users/:id/photos", userHandler.GetUserPhotos)
	}

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/verify-email", authHandler.VerifyEmail)
	api.POST("/payments/webhook", paymentHandler.Webhook)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	{
		authed.POST("/auth/logout", authHandler.Logout)
		authed.GET("/auth/verify", authHandler.Verify)
		authed.GET("/auth/profile", authHandler.GetProfile)
		authed.PUT("/auth/profile", authHandler.UpdateProfile)
		authed.POST("/auth/profile/image", authHandler.UploadProfileImage)

		authed.POST("/photos", photoHandler.UploadPhoto)
		authed.PUT("/photos/:id", photoHandler.UpdatePhoto)
		authed.DELETE("/photos/:id", photoHandler.DeletePhoto)
		authed.POST("/photos/:id/like", photoHandler.ToggleLike)

		authed.POST("/purchases", purchaseHandler.CreatePurchase)
		authed.GET("/purchases", purchaseHandler.ListPurchases)
		authed.GET("/purchases/sales/my-sales", purchaseHandler.ListSales)
		authed.GET("/purchases/:id", purchaseHandler.GetPurchase)
		authed.POST("/purchases/:id/download", purchaseHandler.Download)

		authed.GET("/users/:id/dashboard", userHandler.GetDashboard)
	}

	// Admin routes
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(jwtService))
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("PhotoBazaar API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down PhotoBazaar API...")

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

	log.Info("PhotoBazaar API exited")
}
