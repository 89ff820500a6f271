// connection.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
// pms is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Affero General Public License for
// more details.

package database

import (
	"fmt"
	"log"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/config"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQLite database used by the sqlite store backend.
// The default DSN is an in-memory database, so entity state lives for
// the process lifetime only.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLiteDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// An in-memory SQLite database exists per connection, so the pool is
	// held to the configured limit (1 by default).
	sqlDB.SetMaxOpenConns(cfg.SQLiteConns)
	sqlDB.SetMaxIdleConns(cfg.SQLiteConns)

	log.Printf("Connected to sqlite database: %s", cfg.SQLiteDSN)

	return db, nil
}

// Migrate creates the entity tables. In-memory databases start empty on
// every boot, so this runs unconditionally.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Property{},
		&models.Tenant{},
		&models.Lease{},
		&models.MaintenanceRequest{},
		&models.RentPayment{},
		&models.Stat{},
		&models.AccountPayment{},
		&models.MaintenanceTransfer{},
		&models.MaintenanceReceipt{},
		&models.MovePhoto{},
	)
}

// Close closes the underlying SQL connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
