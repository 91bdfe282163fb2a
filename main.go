package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"

	"academy/config"
	"academy/middleware"
	"academy/remote"
	"academy/routes"
	"academy/services"
	"academy/store"
	"academy/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Local cache tier: Redis when configured, quota-bounded memory otherwise
	var cache store.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		cache = store.NewRedisStore(rdb)
	} else {
		cache = store.NewMemoryStore(cfg.CacheQuota)
	}

	// Remote tier: the app stays up in cache-only mode when the database is
	// absent or unreachable
	var backend remote.Backend = remote.NewNull()
	if cfg.DBHost != "" {
		db, err := utils.InitDB(cfg)
		if err != nil {
			logger.Printf("database unreachable, running cache-only: %v", err)
		} else {
			database := remote.NewDatabase(db)
			if err := database.Migrate(); err != nil {
				log.Fatalf("Error migrating database: %v", err)
			}
			backend = database
		}
	} else {
		logger.Printf("no database configured, running cache-only")
	}

	svcs := services.NewContainer(cache, backend, cfg, logger)
	svcs.Auth.EnsureDefaultAdmin(context.Background())

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, svcs, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
