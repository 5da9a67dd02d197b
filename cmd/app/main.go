package main

import (
	"fmt"

	"photobazaar/internal/app"
	"photobazaar/pkg/cache"
	"photobazaar/pkg/config"
	"photobazaar/pkg/database"
	"photobazaar/pkg/logger"
	"photobazaar/pkg/queue"
	"photobazaar/pkg/s3"
)

// @title           PhotoBazaar API
// @version         1.0
// @description     Photo marketplace: photographers sell photos, buyers browse, like, purchase and download them.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, marketplace events disabled: %v", err)
		queueClient = nil
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, rate limiting and view dedup cache disabled: %v", err)
		redisClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
