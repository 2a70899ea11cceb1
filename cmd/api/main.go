package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/config"
	"github.com/openhire/job-board-api/internal/database"
	"github.com/openhire/job-board-api/internal/handlers"
	"github.com/openhire/job-board-api/internal/services"
)

func main() {
	// 1. Load Configuration (env + optional .env)
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Initialize Core Services
	llmService, err := services.NewLLMService(cfg)
	if err != nil {
		log.Fatal("Failed to initialize LLM client:", err)
	}
	companyService := services.NewCompanyService(db)
	postingService := services.NewJobPostingService(db)
	descriptionService := services.NewDescriptionService(llmService, postingService, companyService)
	applicationStore := services.NewApplicationStore()

	// 4. Initialize Handlers
	companyHandler := handlers.NewCompanyHandler(companyService)
	postingHandler := handlers.NewJobPostingHandler(postingService, descriptionService)
	applicationHandler := handlers.NewApplicationHandler(applicationStore)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	r.GET("/health", handlers.HealthCheck)

	// Company Routes
	r.POST("/add_company", companyHandler.Create)
	r.GET("/get_companies", companyHandler.List)
	r.GET("/companies/:id", companyHandler.Get)
	r.PUT("/companies/:id", companyHandler.Update)
	r.DELETE("/companies/:id", companyHandler.Delete)

	// Job Posting Routes
	r.POST("/job-postings", postingHandler.Create)
	r.GET("/get_job_postings", postingHandler.ListRaw)
	r.GET("/job-postings/:id", postingHandler.Get)
	r.PUT("/job-postings/:id", postingHandler.Update)
	r.DELETE("/job-postings/:id", postingHandler.Delete)
	r.POST("/job-postings/:id/description", postingHandler.GenerateDescription)

	// Application Routes (in-memory store, not persisted)
	r.POST("/applications", applicationHandler.Submit)
	r.GET("/applications/", applicationHandler.List)
	r.GET("/applications/:candidate_id", applicationHandler.Get)
	r.PUT("/applications/:candidate_id", applicationHandler.Replace)
	r.PATCH("/applications/:candidate_id", applicationHandler.Patch)
	r.DELETE("/applications/:candidate_id", applicationHandler.Delete)

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
