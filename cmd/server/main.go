// main.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/config"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/database"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/handlers"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	_ "github.com/farhanbasheerfarhan399-cyber/pms/docs/api" // Swagger docs
)

// @title PMS API
// @version 1.0.0
// @description Property management pages as a Go Fiber data service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/farhanbasheerfarhan399-cyber/pms

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /
// @schemes http https

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the sqlite backend when configured; the memory backend
	// needs no connection.
	var db *gorm.DB
	if cfg.StoreBackend == config.StoreSQLite {
		db, err = database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Build and seed the stores
	stores, err := services.NewStores(cfg, db)
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("pms")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Page routes, shell routes, and the 404 catch-all
	handlers.NewSet(cfg, stores).Register(app)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s (store backend: %s)", port, cfg.StoreBackend)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
