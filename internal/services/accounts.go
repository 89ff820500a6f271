// accounts.go
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
)

// AccountOverview is the accounts page: headline stats and the three
// ledgers, with payments narrowed by the tenant search box.
type AccountOverview struct {
	Stats                []models.Stat                `json:"stats"`
	RentPayments         []models.AccountPayment      `json:"rentPayments"`
	MaintenanceTransfers []models.MaintenanceTransfer `json:"maintenanceTransfers"`
	MaintenanceReceipts  []models.MaintenanceReceipt  `json:"maintenanceReceipts"`
}

// AccountService backs the owner's accounts page and its export.
type AccountService struct {
	stores *Stores
	now    func() time.Time
}

// NewAccountService creates an AccountService over the shared stores.
func NewAccountService(s *Stores) *AccountService {
	return &AccountService{stores: s, now: time.Now}
}

// Overview returns the stats and ledgers. q narrows the rent payment
// ledger by tenant or unit.
func (s *AccountService) Overview(q string) (AccountOverview, error) {
	stats, err := s.stores.Stats.List()
	if err != nil {
		return AccountOverview{}, err
	}
	payments, err := s.stores.AccountPayments.List()
	if err != nil {
		return AccountOverview{}, err
	}
	transfers, err := s.stores.Transfers.List()
	if err != nil {
		return AccountOverview{}, err
	}
	receipts, err := s.stores.Receipts.List()
	if err != nil {
		return AccountOverview{}, err
	}

	return AccountOverview{
		Stats: stats,
		RentPayments: filter.Apply(payments, func(p models.AccountPayment) bool {
			return filter.MatchText(q, p.Tenant, p.Unit)
		}),
		MaintenanceTransfers: transfers,
		MaintenanceReceipts:  receipts,
	}, nil
}

// RecordPayment adds a rent payment ledger row, treated as paid in full.
func (s *AccountService) RecordPayment(in forms.PaymentInput) (models.AccountPayment, error) {
	if err := in.Validate(); err != nil {
		return models.AccountPayment{}, err
	}
	p := in.Build(s.now())
	if err := s.stores.AccountPayments.Add(p); err != nil {
		return models.AccountPayment{}, err
	}
	return p, nil
}

// RecordTransfer adds a payment out to a maintenance worker.
func (s *AccountService) RecordTransfer(in forms.TransferInput) (models.MaintenanceTransfer, error) {
	if err := in.Validate(); err != nil {
		return models.MaintenanceTransfer{}, err
	}
	tr := in.Build(s.now())
	if err := s.stores.Transfers.Add(tr); err != nil {
		return models.MaintenanceTransfer{}, err
	}
	return tr, nil
}

// RecordReceipt adds a reimbursement collected from a tenant.
func (s *AccountService) RecordReceipt(in forms.ReceiptInput) (models.MaintenanceReceipt, error) {
	if err := in.Validate(); err != nil {
		return models.MaintenanceReceipt{}, err
	}
	r := in.Build(s.now())
	if err := s.stores.Receipts.Add(r); err != nil {
		return models.MaintenanceReceipt{}, err
	}
	return r, nil
}
