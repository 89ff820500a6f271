// shell.go
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
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/nav"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ShellHandler handles the app shell routes shared by both roles: the
// sidebar menu, logout, and the health probe.
type ShellHandler struct {
	Cfg    *config.Config
	Stores *services.Stores
}

// GetNav handles GET /nav
// @Summary Sidebar menu
// @Description Get the role's menu with active flags for the given path
// @Tags Shell
// @Produce json
// @Param path query string false "Current page path"
// @Success 200 {object} nav.Shell
// @Router /nav [get]
func (h *ShellHandler) GetNav(c *fiber.Ctx) error {
	shell := nav.NewShell(middleware.RoleOf(c), c.Query("path"))
	return c.Status(fiber.StatusOK).JSON(shell)
}

// Logout handles POST /logout
// @Summary Log out
// @Description Return the login redirect; there is no session to clear
// @Tags Shell
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /logout [post]
func (h *ShellHandler) Logout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":        true,
		"redirect":  "/login",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Healthz handles GET /healthz
// @Summary Health probe
// @Description Report store backend reachability with per-collection counts
// @Tags Shell
// @Produce json
// @Success 200 {object} services.HealthCheckResult
// @Failure 503 {object} services.HealthCheckResult
// @Router /healthz [get]
func (h *ShellHandler) Healthz(c *fiber.Ctx) error {
	result := services.HealthCheck(h.Cfg, h.Stores)
	status := fiber.StatusOK
	if result.Status != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(result)
}
