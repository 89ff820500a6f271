// routes.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

package handlers

import (
	"time"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/config"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/middleware"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Set bundles the handlers over one shared store set.
type Set struct {
	Owner    *OwnerHandler
	Accounts *AccountHandler
	Tenant   *TenantHandler
	Shell    *ShellHandler
}

// NewSet builds the page services over the stores and wires the handlers.
func NewSet(cfg *config.Config, stores *services.Stores) *Set {
	maintenance := services.NewMaintenanceService(stores)
	dashboard := services.NewDashboardService(maintenance)

	return &Set{
		Owner: &OwnerHandler{
			Properties:  services.NewPropertyService(stores),
			Tenants:     services.NewTenantService(stores),
			Leases:      services.NewLeaseService(stores),
			Rent:        services.NewRentService(stores),
			Maintenance: maintenance,
			Dashboard:   dashboard,
		},
		Accounts: &AccountHandler{
			Accounts: services.NewAccountService(stores),
		},
		Tenant: &TenantHandler{
			Dashboard:   dashboard,
			Maintenance: maintenance,
			Photos:      services.NewPhotoService(stores),
			Pages:       services.NewTenantPageService(),
		},
		Shell: &ShellHandler{Cfg: cfg, Stores: stores},
	}
}

// Register mounts every page route plus the shell routes and the JSON
// 404 catch-all. Callers mount metrics and swagger before this.
func (s *Set) Register(app *fiber.App) {
	app.Use(middleware.VersionMiddleware(s.Shell.Cfg.APIVersion))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.RoleMiddleware())

	// Owner pages
	app.Get("/propertyowner-dashboard", s.Owner.GetDashboard)
	app.Get("/propertyowner-properties", s.Owner.GetProperties)
	app.Post("/propertyowner-properties", s.Owner.CreateProperty)
	app.Get("/propertyowner-properties/:id", s.Owner.GetPropertyDetail)
	app.Put("/propertyowner-properties/:id", s.Owner.EditProperty)
	app.Get("/propertyowner-tenant", s.Owner.GetTenants)
	app.Post("/propertyowner-tenant", s.Owner.CreateTenant)
	app.Get("/propertyowner-lease", s.Owner.GetLeases)
	app.Post("/propertyowner-lease", s.Owner.CreateLease)
	app.Get("/propertyowner-rent", s.Owner.GetRentTracker)
	app.Get("/propertyowner-maintenance", s.Owner.GetMaintenanceBoard)
	app.Post("/propertyowner-maintenance", s.Owner.CreateMaintenanceRequest)

	// Accounts
	app.Get("/propertyowner-accounts", s.Accounts.GetOverview)
	app.Get("/propertyowner-accounts/export", s.Accounts.Export)
	app.Post("/propertyowner-accounts/payments", s.Accounts.RecordPayment)
	app.Post("/propertyowner-accounts/transfers", s.Accounts.RecordTransfer)
	app.Post("/propertyowner-accounts/receipts", s.Accounts.RecordReceipt)

	// Tenant pages
	app.Get("/tenant-dashboard", s.Tenant.GetDashboard)
	app.Get("/tenant-property", s.Tenant.GetProperty)
	app.Get("/tenant-lease", s.Tenant.GetLease)
	app.Get("/tenant-rent", s.Tenant.GetRent)
	app.Post("/tenant-rent", s.Tenant.SubmitPaymentProof)
	app.Get("/tenant-maintenance", s.Tenant.GetMaintenance)
	app.Post("/tenant-maintenance", s.Tenant.CreateMaintenanceRequest)
	app.Get("/tenant-moveinout", s.Tenant.GetMovePhotos)
	app.Post("/tenant-moveinout", s.Tenant.UploadMovePhotos)
	app.Get("/tenant-profile", s.Tenant.GetProfile)
	app.Put("/tenant-profile", s.Tenant.UpdateProfile)

	// Shell
	app.Get("/nav", s.Shell.GetNav)
	app.Post("/logout", s.Shell.Logout)
	app.Get("/healthz", s.Shell.Healthz)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})
}
