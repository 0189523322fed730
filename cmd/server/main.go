package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"evote-backend/internal/adapters/http/middleware"
	"evote-backend/internal/adapters/http/routes"
	"evote-backend/internal/adapters/persistence/models"
	"evote-backend/internal/adapters/persistence/repositories"
	"evote-backend/internal/config"
	"evote-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "evote-backend/docs" // Swagger docs
)

// @title E-Vote API
// @version 1.0
// @description Voting application backend: registration, candidate management and one-vote-per-user vote casting.

// @contact.name API Support

// @host localhost:3000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the admin account when enabled
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed admin user: %v", err)
	}

	// Connect to Redis (optional, used for list/tally caching)
	rdb, err := config.ConnectRedis(cfg)
	if err != nil {
		log.Printf("⚠️ Warning: Redis unavailable, caching disabled: %v", err)
		rdb = nil
	}

	// Daily purge of expired refresh tokens
	cleanupService := services.NewCleanupService(repositories.NewRefreshTokenRepository(db))
	cleanupService.Start()
	defer cleanupService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "E-Vote API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, redis and cfg for dependency injection)
	routes.Setup(app, db, rdb, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
