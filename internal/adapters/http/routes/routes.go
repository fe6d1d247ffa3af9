package routes

import (
	"memtrack/internal/adapters/http/handlers"
	"memtrack/internal/adapters/http/middleware"
	"memtrack/internal/adapters/persistence/repositories"
	"memtrack/internal/config"
	"memtrack/internal/core/domain"
	"memtrack/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	memberRepo := repositories.NewMemberRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	memberService := services.NewMemberService(memberRepo)
	officerService := services.NewOfficerService(userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	memberHandler := handlers.NewMemberHandler(memberService)
	officerHandler := handlers.NewOfficerHandler(officerService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")

	// Auth routes
	authRoutes := api.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Member routes (authenticated, per-action permission checks)
	memberRoutes := api.Group("/members")
	memberRoutes.Use(middleware.AuthMiddleware(cfg))
	setupMemberRoutes(memberRoutes, memberHandler)

	// Officer administration routes (Admin only, gated before any other logic)
	officerRoutes := api.Group("/officers")
	officerRoutes.Use(middleware.AuthMiddleware(cfg))
	officerRoutes.Use(middleware.AdminOnly())
	setupOfficerRoutes(officerRoutes, officerHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupMemberRoutes configures member registry routes. Each mutating route
// consults the policy table before reaching the handler.
func setupMemberRoutes(router fiber.Router, handler *handlers.MemberHandler) {
	router.Get("/", middleware.RequirePermission(domain.ActionViewMembers), handler.List)
	router.Get("/stats/summary", middleware.RequirePermission(domain.ActionViewMembers), handler.Stats)
	router.Get("/:id", middleware.RequirePermission(domain.ActionViewMembers), handler.Get)
	router.Post("/", middleware.RequirePermission(domain.ActionCreateMember), handler.Create)
	router.Put("/:id", middleware.RequirePermission(domain.ActionEditMember), handler.Update)
	router.Put("/:id/payment", middleware.RequirePermission(domain.ActionUpdatePayment), handler.UpdatePayment)
	router.Put("/:id/status", middleware.RequirePermission(domain.ActionUpdateStatus), handler.UpdateStatus)
	router.Delete("/:id", middleware.RequirePermission(domain.ActionDeleteMember), handler.Delete)
}

// setupOfficerRoutes configures officer administration routes
func setupOfficerRoutes(router fiber.Router, handler *handlers.OfficerHandler) {
	router.Get("/", handler.List)
	router.Get("/stats", handler.Stats)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Put("/:id/password", handler.ResetPassword)
	router.Delete("/:id", handler.Delete)
}
