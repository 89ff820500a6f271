// tenantpages.go
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
	"sync"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/forms"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
)

// TenantPageService backs the tenant's lease, property, rent, and profile
// pages. These are singleton views per session; the profile and the rent
// payment history are the only mutable parts.
type TenantPageService struct {
	mu sync.RWMutex

	lease    models.TenantLeasePage
	property models.TenantPropertyPage
	rent     models.TenantRentPage
	profile  models.TenantProfile
}

// NewTenantPageService creates a TenantPageService from the seed
// fixtures.
func NewTenantPageService() *TenantPageService {
	return &TenantPageService{
		lease:    models.SeedTenantLeasePage(),
		property: models.SeedTenantPropertyPage(),
		rent:     models.SeedTenantRentPage(),
		profile:  models.SeedTenantProfile(),
	}
}

// LeasePage returns the lease agreement page.
func (s *TenantPageService) LeasePage() models.TenantLeasePage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lease
}

// PropertyPage returns the assigned property page.
func (s *TenantPageService) PropertyPage() models.TenantPropertyPage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.property
}

// RentPage returns the rent status page.
func (s *TenantPageService) RentPage() models.TenantRentPage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rent
}

// SubmitProof validates a payment proof and prepends the resulting row
// to the payment history. Nothing is charged; the proof is display state
// only.
func (s *TenantPageService) SubmitProof(in forms.PaymentProofInput) (models.PaymentHistoryEntry, error) {
	if err := in.Validate(); err != nil {
		return models.PaymentHistoryEntry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := in.Build(s.rent.Due.Amount)
	s.rent.PaymentHistory = append([]models.PaymentHistoryEntry{entry}, s.rent.PaymentHistory...)
	s.rent.Summary.TotalPayments++
	return entry, nil
}

// Profile returns the tenant profile.
func (s *TenantPageService) Profile() models.TenantProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// UpdateProfile validates the edit form and applies it to the profile's
// personal fields in place. Owner-managed fields are untouched.
func (s *TenantPageService) UpdateProfile(in forms.ProfileInput) (models.TenantProfile, error) {
	if err := in.Validate(); err != nil {
		return models.TenantProfile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	in.ApplyTo(&s.profile)
	return s.profile, nil
}
