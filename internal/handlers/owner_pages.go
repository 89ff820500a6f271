// owner_pages.go
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
	"errors"
	"fmt"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/forms"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/services"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/store"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// OwnerHandler handles the property owner's page routes.
type OwnerHandler struct {
	Properties  *services.PropertyService
	Tenants     *services.TenantService
	Leases      *services.LeaseService
	Rent        *services.RentService
	Maintenance *services.MaintenanceService
	Dashboard   *services.DashboardService
}

// GetDashboard handles GET /propertyowner-dashboard
// @Summary Owner dashboard
// @Description Get the owner dashboard stats, charts, and recent activity
// @Tags Owner
// @Produce json
// @Success 200 {object} models.OwnerDashboard
// @Router /propertyowner-dashboard [get]
func (h *OwnerHandler) GetDashboard(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.Dashboard.Owner())
}

// GetProperties handles GET /propertyowner-properties
// @Summary List properties
// @Description Get the property cards, filtered by a search query over name and address
// @Tags Owner
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} models.Property
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /propertyowner-properties [get]
func (h *OwnerHandler) GetProperties(c *fiber.Ctx) error {
	rows, err := h.Properties.List(c.Query("q"))
	if err != nil {
		return fail(c, err, "getProperties")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// CreateProperty handles POST /propertyowner-properties
// @Summary Add a property
// @Description Create a property from the add-property dialog
// @Tags Owner
// @Accept json
// @Produce json
// @Param body body forms.PropertyInput true "Property form"
// @Success 201 {object} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /propertyowner-properties [post]
func (h *OwnerHandler) CreateProperty(c *fiber.Ctx) error {
	var in forms.PropertyInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	p, err := h.Properties.Create(in)
	if err != nil {
		return fail(c, err, "createProperty")
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GetPropertyDetail handles GET /propertyowner-properties/:id
// @Summary Property unit detail
// @Description Get one property with its floors and units, optionally restricted to one floor
// @Tags Owner
// @Produce json
// @Param id path string true "Property ID"
// @Param floor query string false "Floor number, or 'all'"
// @Success 200 {object} services.PropertyDetail
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /propertyowner-properties/{id} [get]
func (h *OwnerHandler) GetPropertyDetail(c *fiber.Ctx) error {
	id := c.Params("id")
	detail, err := h.Properties.Detail(id, c.Query("floor"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Property '%s' not found", id))
		}
		return fail(c, err, "getPropertyDetail")
	}
	return c.Status(fiber.StatusOK).JSON(detail)
}

// EditProperty handles PUT /propertyowner-properties/:id
// @Summary Edit a property
// @Description Update a property in place from the edit dialog
// @Tags Owner
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body forms.PropertyInput true "Property form"
// @Success 200 {object} models.Property
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /propertyowner-properties/{id} [put]
func (h *OwnerHandler) EditProperty(c *fiber.Ctx) error {
	id := c.Params("id")
	var in forms.PropertyInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	p, err := h.Properties.Edit(id, in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Property '%s' not found", id))
		}
		return fail(c, err, "editProperty")
	}
	return c.Status(fiber.StatusOK).JSON(p)
}

// GetTenants handles GET /propertyowner-tenant
// @Summary List tenants
// @Description Get the tenant list, filtered by a search query over name, email, and property
// @Tags Owner
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} models.Tenant
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /propertyowner-tenant [get]
func (h *OwnerHandler) GetTenants(c *fiber.Ctx) error {
	rows, err := h.Tenants.List(c.Query("q"))
	if err != nil {
		return fail(c, err, "getTenants")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

// CreateTenant handles POST /propertyowner-tenant
// @Summary Add a tenant
// @Description Create a tenant from the add-tenant dialog
// @Tags Owner
// @Accept json
// @Produce json
// @Param body body forms.TenantInput true "Tenant form"
// @Success 201 {object} models.Tenant
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /propertyowner-tenant [post]
func (h *OwnerHandler) CreateTenant(c *fiber.Ctx) error {
	var in forms.TenantInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	t, err := h.Tenants.Create(in)
	if err != nil {
		return fail(c, err, "createTenant")
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

// GetLeases handles GET /propertyowner-lease
// @Summary List leases
// @Description Get the lease table with active/expiring counts, filtered by search and tab
// @Tags Owner
// @Produce json
// @Param q query string false "Search query"
// @Param tab query string false "Tab: active or expiring"
// @Success 200 {object} services.LeaseList
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /propertyowner-lease [get]
func (h *OwnerHandler) GetLeases(c *fiber.Ctx) error {
	view, err := h.Leases.List(c.Query("q"), c.Query("tab"))
	if err != nil {
		return fail(c, err, "getLeases")
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// CreateLease handles POST /propertyowner-lease
// @Summary Add a lease
// @Description Create a lease from the new-lease dialog
// @Tags Owner
// @Accept json
// @Produce json
// @Param body body forms.LeaseInput true "Lease form"
// @Success 201 {object} models.Lease
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /propertyowner-lease [post]
func (h *OwnerHandler) CreateLease(c *fiber.Ctx) error {
	var in forms.LeaseInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	l, err := h.Leases.Create(in)
	if err != nil {
		return fail(c, err, "createLease")
	}
	return c.Status(fiber.StatusCreated).JSON(l)
}

// GetRentTracker handles GET /propertyowner-rent
// @Summary Rent payment tracker
// @Description Get the rent payment rows under the active tab with per-status counts
// @Tags Owner
// @Produce json
// @Param tab query string false "Tab: Paid, Pending, or Overdue"
// @Success 200 {object} services.RentTrackerView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /propertyowner-rent [get]
func (h *OwnerHandler) GetRentTracker(c *fiber.Ctx) error {
	view, err := h.Rent.Tracker(c.Query("tab"))
	if err != nil {
		return fail(c, err, "getRentTracker")
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// GetMaintenanceBoard handles GET /propertyowner-maintenance
// @Summary Owner maintenance board
// @Description Get the maintenance requests under the active tab with per-status counts
// @Tags Owner
// @Produce json
// @Param tab query string false "Tab: open, inProgress, completed"
// @Success 200 {object} services.BoardView
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /propertyowner-maintenance [get]
func (h *OwnerHandler) GetMaintenanceBoard(c *fiber.Ctx) error {
	view, err := h.Maintenance.OwnerBoard(c.Query("tab"))
	if err != nil {
		return fail(c, err, "getMaintenanceBoard")
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

// CreateMaintenanceRequest handles POST /propertyowner-maintenance
// @Summary Add a maintenance request
// @Description Create an open, unassigned request on the owner board
// @Tags Owner
// @Accept json
// @Produce json
// @Param body body forms.RequestInput true "Request form"
// @Success 201 {object} models.MaintenanceRequest
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /propertyowner-maintenance [post]
func (h *OwnerHandler) CreateMaintenanceRequest(c *fiber.Ctx) error {
	var in forms.RequestInput
	if err := c.BodyParser(&in); err != nil {
		return invalidInput(c)
	}
	r, err := h.Maintenance.CreateOwner(in)
	if err != nil {
		return fail(c, err, "createMaintenanceRequest")
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}
