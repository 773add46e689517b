package router

import (
	"context"
	"log"
	"time"

	"github.com/careernest/backend/internal/handlers"
	"github.com/careernest/backend/internal/judge0"
	"github.com/careernest/backend/internal/middleware"
	"github.com/careernest/backend/internal/models"
	"github.com/careernest/backend/internal/repositories"
	"github.com/careernest/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, mgClient *mongo.Client) {
	db := mgClient.Database(cfg.MongoDB)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db)
	postRepo := repositories.NewMongoPostRepository(db)
	connectionRepo := repositories.NewMongoConnectionRepository(db)
	followRepo := repositories.NewMongoFollowRepository(db)
	opportunityRepo := repositories.NewMongoOpportunityRepository(db)
	applicationRepo := repositories.NewMongoApplicationRepository(db)
	notificationRepo := repositories.NewMongoNotificationRepository(db)

	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ensureIndexes(startupCtx, db)

	seedOpportunities(opportunityRepo)

	// --- Unprotected routes ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	opportunityGroup := e.Group("/api/opportunities")
	opportunityHandler := handlers.NewOpportunityHandler(opportunityRepo)
	opportunityHandler.RegisterOpportunityRoutes(opportunityGroup)
	log.Println("Opportunity routes configured.")

	judge0Client := judge0.NewClient(cfg.Judge0APIKey, cfg.Judge0Hosts)
	compilerHandler := handlers.NewCompilerHandler(judge0Client)
	e.GET("/api/compiler/languages", compilerHandler.Languages)

	// --- Protected routes (require JWT authentication) ---
	authMW := middleware.AuthMiddleware(cfg.JWTSecret)

	profileHandler := handlers.NewProfileHandler(userRepo)
	profileHandler.RegisterProfileRoutes(e.Group("/api/profile", authMW))

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(e.Group("/api/users", authMW))

	postHandler := handlers.NewPostHandler(postRepo, userRepo, notificationRepo)
	postHandler.RegisterPostRoutes(e.Group("/api/posts", authMW))

	connectionHandler := handlers.NewConnectionHandler(connectionRepo, followRepo, userRepo, notificationRepo)
	connectionHandler.RegisterConnectionRoutes(e.Group("/api/connections", authMW))

	applicationHandler := handlers.NewApplicationHandler(applicationRepo, opportunityRepo)
	applicationHandler.RegisterApplicationRoutes(e.Group("/api/applications", authMW))

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(e.Group("/api/notifications", authMW))

	compilerHandler.RegisterCompilerRoutes(e.Group("/api/compiler", authMW))

	adminHandler := handlers.NewAdminHandler(userRepo, postRepo, applicationRepo, connectionRepo, opportunityRepo)
	adminHandler.RegisterAdminRoutes(e.Group("/api/admin", authMW))

	log.Println("All routes configured.")
}

// seedOpportunities inserts starter listings into an empty collection
func seedOpportunities(repo repositories.OpportunityRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := repo.Count(ctx)
	if err != nil {
		log.Printf("Opportunity seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	now := time.Now()
	seed := []models.Opportunity{
		{
			Title:       "Code for Future 2024",
			Company:     "Tech Giants Inc.",
			Type:        models.OpportunityHackathon,
			Description: "Initial seed data for hackathon...",
			Deadline:    now.Add(5 * 24 * time.Hour),
			Reward:      "$10,000",
		},
		{
			Title:       "Frontend Developer",
			Company:     "StartUp Hub",
			Type:        models.OpportunityJob,
			Description: "Initial seed data for job...",
			Deadline:    now.Add(30 * 24 * time.Hour),
			Reward:      "Competitive Salary",
		},
		{
			Title:       "Data Science Intern",
			Company:     "DataFlow",
			Type:        models.OpportunityInternship,
			Description: "Initial seed data for internship...",
			Deadline:    now.Add(2 * 24 * time.Hour),
			Reward:      "$1,000/mo",
		},
		{
			Title:       "Design Challenge",
			Company:     "Creative Studio",
			Type:        models.OpportunityCompetition,
			Description: "Initial seed data for design challenge...",
			Deadline:    now.Add(10 * 24 * time.Hour),
			Reward:      "Swag & Cash",
		},
	}

	if err := repo.CreateMany(ctx, seed); err != nil {
		log.Printf("Opportunity seeding failed: %v", err)
		return
	}
	log.Println("Database seeded with starter opportunities.")
}
