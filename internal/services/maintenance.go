// maintenance.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

package services

import (
	"time"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/filter"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/forms"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/store"
)

// BoardView is a maintenance board: the requests under the active tab
// plus the per-status counts.
type BoardView struct {
	Requests   []models.MaintenanceRequest `json:"requests"`
	Open       int                         `json:"open"`
	InProgress int                         `json:"inProgress"`
	Completed  int                         `json:"completed"`
	Pending    int                         `json:"pending"`
}

// MaintenanceService backs both maintenance boards. The owner board and
// the tenant request list are separate collections.
type MaintenanceService struct {
	stores *Stores
	now    func() time.Time
}

// NewMaintenanceService creates a MaintenanceService over the shared
// stores.
func NewMaintenanceService(s *Stores) *MaintenanceService {
	return &MaintenanceService{stores: s, now: time.Now}
}

// OwnerBoard returns the owner's requests under the given tab ("open",
// "inProgress", "completed"; anything else shows all) with status counts.
func (s *MaintenanceService) OwnerBoard(tab string) (BoardView, error) {
	return boardView(s.stores.OwnerRequests, tab)
}

// TenantBoard returns the tenant's requests under the given tab.
func (s *MaintenanceService) TenantBoard(tab string) (BoardView, error) {
	return boardView(s.stores.TenantRequests, tab)
}

func boardView(st store.Store[models.MaintenanceRequest], tab string) (BoardView, error) {
	rows, err := st.List()
	if err != nil {
		return BoardView{}, err
	}

	counts := filter.CountBy(rows, func(r models.MaintenanceRequest) string { return r.Status })

	matched := rows
	if status := tabStatus(tab); status != "" {
		matched = filter.Apply(rows, func(r models.MaintenanceRequest) bool {
			return r.Status == status
		})
	}

	return BoardView{
		Requests:   matched,
		Open:       counts[models.RequestOpen],
		InProgress: counts[models.RequestInProgress],
		Completed:  counts[models.RequestCompleted],
		Pending:    counts[models.RequestPending],
	}, nil
}

func tabStatus(tab string) string {
	switch tab {
	case "open":
		return models.RequestOpen
	case "inProgress":
		return models.RequestInProgress
	case "completed":
		return models.RequestCompleted
	case "pending":
		return models.RequestPending
	}
	return ""
}

// CreateOwner opens a new request on the owner board.
func (s *MaintenanceService) CreateOwner(in forms.RequestInput) (models.MaintenanceRequest, error) {
	if err := in.Validate(); err != nil {
		return models.MaintenanceRequest{}, err
	}
	count, err := s.stores.OwnerRequests.Count()
	if err != nil {
		return models.MaintenanceRequest{}, err
	}
	r := in.BuildOwner(count, s.now())
	if err := s.stores.OwnerRequests.Add(r); err != nil {
		return models.MaintenanceRequest{}, err
	}
	return r, nil
}

// CreateTenant submits a new tenant request, which starts Pending.
func (s *MaintenanceService) CreateTenant(in forms.RequestInput) (models.MaintenanceRequest, error) {
	if err := in.Validate(); err != nil {
		return models.MaintenanceRequest{}, err
	}
	count, err := s.stores.TenantRequests.Count()
	if err != nil {
		return models.MaintenanceRequest{}, err
	}
	r := in.BuildTenant(count, s.now())
	if err := s.stores.TenantRequests.Add(r); err != nil {
		return models.MaintenanceRequest{}, err
	}
	return r, nil
}

// Latest returns the tenant's most recent request, or nil when the list
// is empty. The tenant dashboard shows it.
func (s *MaintenanceService) Latest() (*models.MaintenanceRequest, error) {
	rows, err := s.stores.TenantRequests.List()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
