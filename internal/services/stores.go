// stores.go
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

package services

import (
	"fmt"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/config"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/store"
	"gorm.io/gorm"
)

// Stores bundles every entity collection. All of them are seeded from the
// embedded fixtures at construction and live for the process lifetime.
type Stores struct {
	Properties       store.Store[models.Property]
	Tenants          store.Store[models.Tenant]
	Leases           store.Store[models.Lease]
	OwnerRequests    store.Store[models.MaintenanceRequest]
	TenantRequests   store.Store[models.MaintenanceRequest]
	RentPayments     store.Store[models.RentPayment]
	Stats            store.Store[models.Stat]
	AccountPayments  store.Store[models.AccountPayment]
	Transfers        store.Store[models.MaintenanceTransfer]
	Receipts         store.Store[models.MaintenanceReceipt]
	Photos           store.Store[models.MovePhoto]
}

// NewStores builds the configured store backend and seeds it. db may be
// nil for the memory backend.
func NewStores(cfg *config.Config, db *gorm.DB) (*Stores, error) {
	var s *Stores
	switch cfg.StoreBackend {
	case config.StoreMemory:
		s = memoryStores()
	case config.StoreSQLite:
		if db == nil {
			return nil, fmt.Errorf("sqlite store backend requires a database connection")
		}
		s = gormStores(db)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
	if err := seed(s); err != nil {
		return nil, fmt.Errorf("seeding stores: %w", err)
	}
	return s, nil
}

func memoryStores() *Stores {
	return &Stores{
		Properties:      store.NewMemory[models.Property](),
		Tenants:         store.NewMemory[models.Tenant](),
		Leases:          store.NewMemory[models.Lease](),
		OwnerRequests:   store.NewMemory[models.MaintenanceRequest](),
		TenantRequests:  store.NewMemory[models.MaintenanceRequest](),
		RentPayments:    store.NewMemory[models.RentPayment](),
		Stats:           store.NewMemory[models.Stat](),
		AccountPayments: store.NewMemory[models.AccountPayment](),
		Transfers:       store.NewMemory[models.MaintenanceTransfer](),
		Receipts:        store.NewMemory[models.MaintenanceReceipt](),
		Photos:          store.NewMemory[models.MovePhoto](),
	}
}

func gormStores(db *gorm.DB) *Stores {
	return &Stores{
		Properties: store.NewGorm[models.Property](db),
		Tenants:    store.NewGorm[models.Tenant](db),
		Leases:     store.NewGorm[models.Lease](db),
		OwnerRequests: store.NewGorm[models.MaintenanceRequest](db,
			store.WithScope[models.MaintenanceRequest]("board", models.BoardOwner)),
		TenantRequests: store.NewGorm[models.MaintenanceRequest](db,
			store.WithScope[models.MaintenanceRequest]("board", models.BoardTenant)),
		RentPayments: store.NewGorm[models.RentPayment](db),
		Stats: store.NewGorm[models.Stat](db,
			store.WithKeyColumn[models.Stat]("label")),
		AccountPayments: store.NewGorm[models.AccountPayment](db),
		Transfers:       store.NewGorm[models.MaintenanceTransfer](db),
		Receipts:        store.NewGorm[models.MaintenanceReceipt](db),
		Photos:          store.NewGorm[models.MovePhoto](db),
	}
}

func seed(s *Stores) error {
	if err := s.Properties.Seed(models.SeedProperties()); err != nil {
		return err
	}
	if err := s.Tenants.Seed(models.SeedTenants()); err != nil {
		return err
	}
	if err := s.Leases.Seed(models.SeedLeases()); err != nil {
		return err
	}
	if err := s.OwnerRequests.Seed(models.SeedOwnerRequests()); err != nil {
		return err
	}
	if err := s.TenantRequests.Seed(models.SeedTenantRequests()); err != nil {
		return err
	}
	if err := s.RentPayments.Seed(models.SeedRentPayments()); err != nil {
		return err
	}
	book := models.SeedAccountBook()
	if err := s.Stats.Seed(book.Stats); err != nil {
		return err
	}
	if err := s.AccountPayments.Seed(book.RentPayments); err != nil {
		return err
	}
	if err := s.Transfers.Seed(book.MaintenanceTransfers); err != nil {
		return err
	}
	if err := s.Receipts.Seed(book.MaintenanceReceipts); err != nil {
		return err
	}
	return s.Photos.Seed(models.SeedMovePhotos())
}
