// role.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

package middleware

import (
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/nav"
	"github.com/gofiber/fiber/v2"
)

// RoleKey is the context local holding the request's role.
const RoleKey = "userRole"

// RoleMiddleware reads the viewer's role from the X-User-Role header or
// the role query param and stores it in context. The role only selects a
// menu and page set; it carries no authorization.
func RoleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := c.Get("X-User-Role")
		if role == "" {
			role = c.Query("role")
		}
		switch role {
		case nav.RoleOwner, nav.RoleTenant:
		default:
			role = nav.RoleOwner
		}
		c.Locals(RoleKey, role)
		return c.Next()
	}
}

// RoleOf returns the role stored by RoleMiddleware.
func RoleOf(c *fiber.Ctx) string {
	if role, ok := c.Locals(RoleKey).(string); ok && role != "" {
		return role
	}
	return nav.RoleOwner
}
