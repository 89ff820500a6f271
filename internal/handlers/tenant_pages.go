// tenant_pages.go
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
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/forms"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/services"
	"github.com/gofiber/fiber/v2"
)

// TenantHandler handles the tenant's page routes.
type TenantHandler struct {
	Dashboard   *services.DashboardService
	Maintenance *services.MaintenanceService
	Photos      *services.PhotoService
	Pages       *services.TenantPageService
}

// GetDashboard handles GET /tenant-dashboard
// @Summary Tenant dashboard
// @Description Get the tenant dashboard summary with the latest maintenance request
// @Tags Tenant
// @Produce json
// @Success 200 {object} models.TenantDashboard
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tenant-dashboard [get]
func (h *TenantHandler) GetDashboard(c *fiber.Ctx) error {
	d, err := h.Dashboard.Tenant()
	if err != nil {
		return fail(c, err, "getTenantDashboard")
	}
	return c.Status(fiber.StatusOK).JSON(d)
}

// GetProperty handles GET /tenant-property
// @Summary Tenant property detail
// @Description Get the tenant's unit and building details with amenities
// @Tags Tenant
// @Produce json
// @Success 200 {object} models.TenantPropertyPage
// @Router /tenant-property [get]
func (h *TenantHandler) GetProperty(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Pages.PropertyPage())
}

// GetLease handles GET /tenant-lease
// @Summary Tenant lease detail
// @Description Get the tenant's lease terms, payment schedule, and key terms
// @Tags Tenant
// @Produce json
// @Success 200 {object} models.TenantLeasePage
// @Router /tenant-lease [get]
func (h *TenantHandler) GetLease(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Pages.LeasePage())
}

// GetRent handles GET /tenant-rent
// @Summary Tenant rent page
// @Description Get the current due, the payment summary, and the payment history
// @Tags Tenant
// @Produce json
// @Success 200 {object} models.TenantRentPage
// @Router /tenant-rent [get]
func (h *TenantHandler) GetRent(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Pages.RentPage())
}

// SubmitPaymentProof handles POST /tenant-rent
// @Summary Submit payment proof
// @Description Record a payment proof for the current due and prepend it to the history
// @Tags Tenant
// @Accept json
// @Produce json
// @Param body body forms.PaymentProofInput true "Payment proof form"
// @Success 201 {object} models.PaymentHistoryEntry
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /tenant-rent [post]
func (h *TenantHandler) SubmitPaymentProof(c *fiber.Ctx) error {
	var in forms.PaymentProofInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	entry, err := h.Pages.SubmitProof(in)
	if err != nil {
		return fail(c, err, "submitPaymentProof")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetMaintenance handles GET /tenant-maintenance
// @Summary Tenant maintenance requests
// @Description Get the tenant's requests under the active tab with per-status counts
// @Tags Tenant
// @Produce json
// @Param tab query string false "Tab: open, inProgress, completed, pending"
// @Success 200 {object} services.BoardView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tenant-maintenance [get]
func (h *TenantHandler) GetMaintenance(c *fiber.Ctx) error {
	view, err := h.Maintenance.TenantBoard(c.Query("tab"))
	if err != nil {
		return fail(c, err, "getTenantMaintenance")
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// CreateMaintenanceRequest handles POST /tenant-maintenance
// @Summary Submit a maintenance request
// @Description Create a pending request awaiting assignment
// @Tags Tenant
// @Accept json
// @Produce json
// @Param body body forms.RequestInput true "Request form"
// @Success 201 {object} models.MaintenanceRequest
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /tenant-maintenance [post]
func (h *TenantHandler) CreateMaintenanceRequest(c *fiber.Ctx) error {
	var in forms.RequestInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	r, err := h.Maintenance.CreateTenant(in)
	if err != nil {
		return fail(c, err, "createTenantMaintenanceRequest")
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// GetMovePhotos handles GET /tenant-moveinout
// @Summary Move documentation photos
// @Description Get one phase of move documentation with grouping and progress
// @Tags Tenant
// @Produce json
// @Param phase query string false "Phase: move-in or move-out"
// @Success 200 {object} services.PhotoSetView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tenant-moveinout [get]
func (h *TenantHandler) GetMovePhotos(c *fiber.Ctx) error {
	view, err := h.Photos.Set(c.Query("phase"))
	if err != nil {
		return fail(c, err, "getMovePhotos")
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// UploadMovePhotos handles POST /tenant-moveinout
// @Summary Upload move photos
// @Description Store a batch of photos under a documentation area
// @Tags Tenant
// @Accept json
// @Produce json
// @Param phase query string false "Phase: move-in or move-out"
// @Param body body forms.PhotoUploadInput true "Photo batch"
// @Success 201 {array} models.MovePhoto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /tenant-moveinout [post]
func (h *TenantHandler) UploadMovePhotos(c *fiber.Ctx) error {
	var in forms.PhotoUploadInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	photos, err := h.Photos.Upload(c.Query("phase"), in)
	if err != nil {
		return fail(c, err, "uploadMovePhotos")
	}
	return c.Status(fiber.StatusCreated).JSON(photos)
}

// GetProfile handles GET /tenant-profile
// @Summary Tenant profile
// @Description Get the tenant's profile with lease summary and documents
// @Tags Tenant
// @Produce json
// @Success 200 {object} models.TenantProfile
// @Router /tenant-profile [get]
func (h *TenantHandler) GetProfile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Pages.Profile())
}

// UpdateProfile handles PUT /tenant-profile
// @Summary Edit tenant profile
// @Description Update the profile's personal fields in place
// @Tags Tenant
// @Accept json
// @Produce json
// @Param body body forms.ProfileInput true "Profile form"
// @Success 200 {object} models.TenantProfile
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /tenant-profile [put]
func (h *TenantHandler) UpdateProfile(c *fiber.Ctx) error {
	var in forms.ProfileInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	p, err := h.Pages.UpdateProfile(in)
	if err != nil {
		return fail(c, err, "updateProfile")
	}
	return c.Status(fiber.StatusOK).JSON(p)
}
