// seed.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

package models

import (
	"encoding/json"
	"fmt"

	"github.com/farhanbasheerfarhan399-cyber/pms/data"
)

// AccountBook bundles the four seed collections of the accounts page.
type AccountBook struct {
	Stats                []Stat                `json:"stats"`
	RentPayments         []AccountPayment      `json:"rentPayments"`
	MaintenanceTransfers []MaintenanceTransfer `json:"maintenanceTransfers"`
	MaintenanceReceipts  []MaintenanceReceipt  `json:"maintenanceReceipts"`
}

// SeedTenants returns the embedded tenant fixtures in display order.
func SeedTenants() []Tenant {
	return mustDecode[[]Tenant]("tenants", data.Tenants)
}

// SeedLeases returns the embedded lease fixtures in display order.
func SeedLeases() []Lease {
	return mustDecode[[]Lease]("leases", data.Leases)
}

// SeedProperties returns the embedded property fixtures in display order.
func SeedProperties() []Property {
	return mustDecode[[]Property]("properties", data.Properties)
}

// SeedOwnerRequests returns the owner maintenance board fixtures.
func SeedOwnerRequests() []MaintenanceRequest {
	return stampBoard(mustDecode[[]MaintenanceRequest]("maintenance_owner", data.MaintenanceOwner), BoardOwner)
}

// SeedTenantRequests returns the tenant maintenance request fixtures.
func SeedTenantRequests() []MaintenanceRequest {
	return stampBoard(mustDecode[[]MaintenanceRequest]("maintenance_tenant", data.MaintenanceTenant), BoardTenant)
}

func stampBoard(reqs []MaintenanceRequest, board string) []MaintenanceRequest {
	for i := range reqs {
		reqs[i].Board = board
	}
	return reqs
}

// SeedRentPayments returns the rent tracker fixtures in display order.
func SeedRentPayments() []RentPayment {
	return mustDecode[[]RentPayment]("rent_payments", data.RentPayments)
}

// SeedAccountBook returns the accounts page fixtures.
func SeedAccountBook() AccountBook {
	return mustDecode[AccountBook]("account", data.Account)
}

// SeedMovePhotos returns the move-in photo fixtures. The move-out set
// starts empty.
func SeedMovePhotos() []MovePhoto {
	return mustDecode[[]MovePhoto]("move_photos", data.MovePhotos)
}

// SeedOwnerDashboard returns the owner dashboard fixture.
func SeedOwnerDashboard() OwnerDashboard {
	return mustDecode[OwnerDashboard]("owner_dashboard", data.OwnerDashboard)
}

// SeedTenantDashboard returns the tenant dashboard fixture, without the
// latest maintenance request, which is read from the live store.
func SeedTenantDashboard() TenantDashboard {
	return mustDecode[TenantDashboard]("tenant_dashboard", data.TenantDashboard)
}

// SeedTenantProfile returns the tenant profile fixture.
func SeedTenantProfile() TenantProfile {
	return mustDecode[TenantProfile]("tenant_profile", data.TenantProfile)
}

// SeedTenantLeasePage returns the tenant lease page fixture.
func SeedTenantLeasePage() TenantLeasePage {
	return mustDecode[TenantLeasePage]("tenant_lease", data.TenantLease)
}

// SeedTenantPropertyPage returns the tenant property page fixture.
func SeedTenantPropertyPage() TenantPropertyPage {
	return mustDecode[TenantPropertyPage]("tenant_property", data.TenantProperty)
}

// SeedTenantRentPage returns the tenant rent page fixture.
func SeedTenantRentPage() TenantRentPage {
	return mustDecode[TenantRentPage]("tenant_rent", data.TenantRent)
}

// mustDecode panics on malformed embedded fixtures. The fixtures ship with
// the binary, so a decode failure is a build defect, not a runtime
// condition.
func mustDecode[T any](name string, raw []byte) T {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		panic(fmt.Sprintf("fixture %s: %v", name, err))
	}
	return v
}
