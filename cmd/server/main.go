package main

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/x00/Application-Yaga/internal/bootstrap"
	"github.com/x00/Application-Yaga/internal/config"
	"github.com/x00/Application-Yaga/internal/server"
	"github.com/x00/Application-Yaga/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedActions(db); err != nil {
		log.Fatalf("failed to seed actions: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("invalid REDIS_URL, running without redis: %v", err)
		} else {
			redisClient = redis.NewClient(opts)
		}
	} else {
		log.Println("REDIS_URL not set, running without redis")
	}

	srv := server.NewServer(cfg, db, redisClient)

	log.Printf("reaction ledger listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
