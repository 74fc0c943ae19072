package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/routes"
	"coursehub/backend/store"
	"coursehub/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize store
	st := store.New()
	if cfg.SeedDemo {
		if err := st.Seed(); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
