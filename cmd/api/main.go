package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobportal/internal/database"
	"jobportal/internal/handlers"
	"jobportal/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// 2. Database Connection (unconfigured storage is a valid state: the
	// API keeps serving and /test reports what is wrong)
	db := database.Connect()
	defer db.Close(context.Background())

	// 3. Initialize Services
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	companyService := services.NewCompanyService(db)

	// 4. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	diagnostics := handlers.NewDiagnosticsHandler(db)

	// 5. Setup Router & CORS
	r := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	// 6. Define Routes
	r.GET("/", handlers.HealthCheck)
	r.GET("/test", diagnostics.Diagnostics)

	r.GET("/jobs", jobHandler.ListJobs)
	r.POST("/jobs", jobHandler.CreateJob)
	r.GET("/jobs/:id", jobHandler.GetJob)

	r.POST("/applications", applicationHandler.SubmitApplication)
	r.GET("/applications", applicationHandler.ListApplications)

	r.POST("/companies", companyHandler.CreateCompany)
	r.GET("/companies", companyHandler.ListCompanies)

	// 7. Run
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("🚀 Server starting on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
