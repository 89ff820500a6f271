// nav.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// Package nav builds the role-aware navigation shell: a static menu per
// role, active-entry matching against the current path, and the logout
// hook.
package nav

import "strings"

// Roles. The role is carried per request and only selects a menu; it
// grants nothing.
const (
	RoleOwner  = "property-owner"
	RoleTenant = "tenant"
)

// Entry is one sidebar link.
type Entry struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

var ownerMenu = []Entry{
	{Label: "Dashboard", Href: "/propertyowner-dashboard", Icon: "home"},
	{Label: "Properties", Href: "/propertyowner-properties", Icon: "building"},
	{Label: "Tenants", Href: "/propertyowner-tenant", Icon: "users"},
	{Label: "Leases", Href: "/propertyowner-lease", Icon: "file-text"},
	{Label: "Rent Management", Href: "/propertyowner-rent", Icon: "dollar-sign"},
	{Label: "Maintenance", Href: "/propertyowner-maintenance", Icon: "wrench"},
	{Label: "Accounts", Href: "/propertyowner-accounts", Icon: "credit-card"},
}

var tenantMenu = []Entry{
	{Label: "Dashboard", Href: "/tenant-dashboard", Icon: "home"},
	{Label: "My Property", Href: "/tenant-property", Icon: "building"},
	{Label: "My Lease", Href: "/tenant-lease", Icon: "file-text"},
	{Label: "Rent Status", Href: "/tenant-rent", Icon: "dollar-sign"},
	{Label: "Maintenance", Href: "/tenant-maintenance", Icon: "wrench"},
	{Label: "Move In/Out", Href: "/tenant-moveinout", Icon: "camera"},
	{Label: "Profile", Href: "/tenant-profile", Icon: "user"},
}

// MenuFor returns the menu for the role with active flags computed
// against the current path. Unknown roles get the owner menu.
func MenuFor(role, currentPath string) []Entry {
	src := ownerMenu
	if role == RoleTenant {
		src = tenantMenu
	}
	menu := make([]Entry, len(src))
	copy(menu, src)
	for i := range menu {
		menu[i].Active = IsActive(menu[i], currentPath)
	}
	return menu
}

// IsActive reports whether the entry matches the current path: exact
// match, or a path-prefix match for everything except Dashboard, which
// matches only exactly.
func IsActive(e Entry, currentPath string) bool {
	cur := normalize(currentPath)
	href := normalize(e.Href)
	if cur == href {
		return true
	}
	if e.Label == "Dashboard" {
		return false
	}
	return strings.HasPrefix(cur, href+"/")
}

func normalize(path string) string {
	for strings.HasSuffix(path, "/") && len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// Shell is the navigation chrome around every page: the menu, the mobile
// drawer state, and what logout should do. Logout only names a redirect
// target; there is no session to clear.
type Shell struct {
	Role           string  `json:"role"`
	Menu           []Entry `json:"menu"`
	MobileMenuOpen bool    `json:"mobileMenuOpen"`
	LogoutRedirect string  `json:"logoutRedirect"`
}

// NewShell builds the shell for a role and current path.
func NewShell(role, currentPath string) Shell {
	return Shell{
		Role:           role,
		Menu:           MenuFor(role, currentPath),
		LogoutRedirect: "/login",
	}
}
