package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/synergyspace/idea-api/internal/auth"
	"github.com/synergyspace/idea-api/internal/config"
	"github.com/synergyspace/idea-api/internal/database"
	"github.com/synergyspace/idea-api/internal/handlers"
	"github.com/synergyspace/idea-api/internal/middleware"
	"github.com/synergyspace/idea-api/internal/repository"
	"github.com/synergyspace/idea-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Token manager for issuing and validating bearer tokens
	tokens := auth.NewTokenManager(
		[]byte(cfg.JWTSecret),
		cfg.JWTIssuer,
		cfg.JWTAudience,
		time.Duration(cfg.JWTTTLMinutes)*time.Minute,
	)

	// Wire repositories, services and handlers
	userRepo := repository.NewUserRepository(database.GetDB())
	ideaRepo := repository.NewIdeaRepository(database.GetDB())

	authService := services.NewAuthService(userRepo)
	ideaService := services.NewIdeaService(ideaRepo)

	authHandler := handlers.NewAuthHandler(authService, tokens)
	ideaHandler := handlers.NewIdeaHandler(ideaService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORS())

	// Welcome endpoint
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to SynergySpace")
	})

	// Auth routes
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/test_auth", middleware.RequireAuth(tokens), authHandler.TestAuth)
	}

	// Idea routes (protected)
	ideas := r.Group("/idea")
	ideas.Use(middleware.RequireAuth(tokens))
	{
		ideas.POST("", ideaHandler.CreateIdea)
		ideas.GET("", ideaHandler.ListIdeas)
		ideas.GET("/:id", ideaHandler.GetIdea)
		ideas.PUT("/:id", middleware.RequireIdeaOwner(ideaService), ideaHandler.UpdateIdea)
		ideas.DELETE("/:id", middleware.RequireIdeaOwner(ideaService), ideaHandler.DeleteIdea)
	}

	// Start server with explicit boundary timeouts
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
