package routes

import (
	"time"

	"evote-backend/internal/adapters/http/handlers"
	"evote-backend/internal/adapters/http/middleware"
	"evote-backend/internal/adapters/persistence/repositories"
	"evote-backend/internal/config"
	"evote-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers, then registers all routes
func Setup(app *fiber.App, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	voteRepo := repositories.NewVoteRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)

	// Services
	authzService := services.NewAuthorizationService(userRepo)
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	candidateService := services.NewCandidateService(candidateRepo, authzService)
	votingService := services.NewVotingService(userRepo, candidateRepo, voteRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	candidateHandler := handlers.NewCandidateHandler(candidateService, rdb)
	voteHandler := handlers.NewVoteHandler(votingService, rdb)

	auth := middleware.AuthMiddleware(cfg)
	authLimiter := middleware.AuthRateLimiter()

	// Health
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// User routes
	users := app.Group("/users")
	users.Post("/signup", authLimiter, middleware.NoCacheHeaders(), authHandler.Signup)
	users.Post("/login", authLimiter, middleware.NoCacheHeaders(), authHandler.Login)
	users.Post("/refresh", middleware.NoCacheHeaders(), authHandler.RefreshToken)
	users.Post("/logout", middleware.NoCacheHeaders(), authHandler.Logout)
	users.Post("/logout-all", auth, middleware.NoCacheHeaders(), authHandler.LogoutAll)
	users.Get("/profile", auth, middleware.NoCacheHeaders(), userHandler.Profile)
	users.Put("/profile/password", auth, userHandler.ChangePassword)

	// Candidate routes
	candidates := app.Group("/candidates")
	candidates.Get("/", middleware.PublicCache(30*time.Second), candidateHandler.List)
	candidates.Get("/vote/count", middleware.PublicCache(10*time.Second), candidateHandler.Tally)
	candidates.Post("/vote/:id", auth, voteHandler.CastVote)
	candidates.Post("/", auth, candidateHandler.Create)
	candidates.Put("/:id", auth, candidateHandler.Update)
	candidates.Delete("/:id", auth, candidateHandler.Delete)
}
