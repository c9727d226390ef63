// main.go
package main

import (
	"log"
	"os"
	"time"

	"quizforge/database"
	"quizforge/handlers"
	"quizforge/handlers/admin"
	"quizforge/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database
	database.InitDB()
	defer database.CloseDB()

	// Wire the daily challenge service
	handlers.InitDailyHandlers()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/users")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)

	// Quiz bank routes (reads are public, writes admin-gated)
	api.Get("/quizzes", handlers.GetQuizzes)
	api.Get("/quizzes/random", handlers.GetRandomQuizzes)
	api.Get("/quizzes/category/:category", handlers.GetQuizzesByCategory)
	api.Post("/quizzes", middleware.AdminAuthMiddleware, handlers.CreateQuiz)
	api.Put("/quizzes/:id", middleware.AdminAuthMiddleware, handlers.UpdateQuiz)
	api.Delete("/quizzes/:id", middleware.AdminAuthMiddleware, handlers.DeleteQuiz)

	// Daily challenge routes
	dailyGroup := api.Group("/daily")
	dailyGroup.Use(middleware.AuthMiddleware)
	dailyGroup.Get("/", handlers.GetTodayChallenge)
	dailyGroup.Post("/submit", handlers.SubmitDailyChallenge)

	// Result routes
	resultGroup := api.Group("/results")
	resultGroup.Use(middleware.AuthMiddleware)
	resultGroup.Post("/", handlers.SaveResult)
	resultGroup.Get("/:userId", handlers.GetUserResults)

	// Leaderboard
	api.Get("/leaderboard", handlers.GetLeaderboard)

	// Profile routes
	profileGroup := api.Group("/profile")
	profileGroup.Use(middleware.AuthMiddleware)
	profileGroup.Get("/", handlers.GetProfile)
	profileGroup.Put("/", handlers.UpdateProfile)

	// Admin routes
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware)
	adminGroup.Get("/stats", admin.GetStats)
	adminGroup.Get("/users", admin.GetUsers)
	adminGroup.Get("/users/:id", admin.GetUser)
	adminGroup.Put("/users/:id", admin.UpdateUser)
	adminGroup.Delete("/users/:id", admin.DeleteUser)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🗓️ Daily challenge endpoint available at /api/daily")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
