// tenant.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// Package forms holds the typed inputs behind every create/edit dialog.
// Each input validates all of its required fields at once and builds the
// entity the way the corresponding dialog did: derived fields (ids,
// initials, display dates) are computed at submit time, never accepted
// from the client.
package forms

import (
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
)

// TenantInput is the add-tenant dialog.
type TenantInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Property    string `json:"property"`
	Unit        string `json:"unit"`
	MoveInDate  string `json:"moveInDate"`
	LeaseStatus string `json:"leaseStatus"`
	RentStatus  string `json:"rentStatus"`
}

// Validate reports every missing required field.
func (in TenantInput) Validate() error {
	e := &types.ValidationError{}
	if in.Name == "" {
		e.Add("name")
	}
	if in.Email == "" {
		e.Add("email")
	}
	if in.Phone == "" {
		e.Add("phone")
	}
	if in.Property == "" {
		e.Add("property")
	}
	if in.Unit == "" {
		e.Add("unit")
	}
	if in.MoveInDate == "" {
		e.Add("moveInDate")
	}
	return e.OrNil()
}

// Build creates the tenant record. The id is one past the current count,
// initials come from the name, and the move-in date is normalized to
// display form. Status fields default to Active/Paid when the dialog
// leaves them unset.
func (in TenantInput) Build(count int) models.Tenant {
	leaseStatus := in.LeaseStatus
	if leaseStatus == "" {
		leaseStatus = models.LeaseActive
	}
	rentStatus := in.RentStatus
	if rentStatus == "" {
		rentStatus = models.RentPaid
	}
	return models.Tenant{
		ID:          nextID(count),
		Name:        in.Name,
		Initials:    models.InitialsOf(in.Name),
		Email:       in.Email,
		Phone:       in.Phone,
		Property:    in.Property,
		Unit:        in.Unit,
		MoveInDate:  NormalizeDate(in.MoveInDate),
		LeaseStatus: leaseStatus,
		RentStatus:  rentStatus,
	}
}
