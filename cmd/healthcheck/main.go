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
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/config"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/database"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/services"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

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

	stores, err := services.NewStores(cfg, db)
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}

	// Perform health check
	result := services.HealthCheck(cfg, stores)

	// Output result as JSON
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
