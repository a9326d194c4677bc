package main

import (
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"fitmate/database"
	"fitmate/internal/cache"
	"fitmate/internal/controllers"
	"fitmate/internal/repository"
	"fitmate/internal/scoring"
	"fitmate/internal/services"
	"fitmate/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	err := godotenv.Load("../.env")
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Redis standards cache is optional: without it every lookup goes to
	// the database (and the built-in defaults)
	var standardsCache repository.StandardsCache
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, standards caching disabled: %v", err)
	} else {
		standardsCache = redisClient
		defer redisClient.Close()
		log.Println("Connected to Redis successfully")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	clientRepo := repository.NewClientRepository(database.DB)
	assessmentRepo := repository.NewAssessmentRepository(database.DB)
	standardRepo := repository.NewStandardRepository(database.DB)
	normativeRepo := repository.NewNormativeRepository(database.DB)
	recalcJobRepo := repository.NewRecalcJobRepository(database.DB)

	// Scoring engine over the layered standards source (cache -> DB -> defaults)
	standardsSource := repository.NewStandardsSource(standardRepo, standardsCache)
	normsSource := repository.NewNormsSource(normativeRepo)
	engine := scoring.NewEngine(standardsSource)

	// Batch recalculation worker
	workerCount := runtime.NumCPU()
	if workerCount > 4 {
		workerCount = 4
	}
	recalcWorker := services.NewRecalcWorker(recalcJobRepo, assessmentRepo, standardsSource, workerCount)

	log.Printf("Starting recalculation worker with %d workers...", workerCount)
	recalcWorker.Start()
	defer recalcWorker.Stop()

	// Initialize controllers
	userController := controllers.NewUserController(userRepo)
	clientController := controllers.NewClientController(clientRepo)
	assessmentController := controllers.NewAssessmentController(
		assessmentRepo,
		clientRepo,
		engine,
		standardsSource,
		normsSource,
	)
	standardController := controllers.NewStandardController(
		standardRepo,
		normativeRepo,
		standardsSource,
		recalcJobRepo,
		recalcWorker,
	)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "Fitmate API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
			"cache":    standardsCache != nil,
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterClientRoutes(router, clientController)
	routes.RegisterAssessmentRoutes(router, assessmentController)
	routes.RegisterStandardRoutes(router, standardController)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
			"workers":    workerCount,
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Fitmate API Server started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
