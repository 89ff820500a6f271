// account.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

package forms

import (
	"time"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
)

// PaymentInput is the record-payment dialog on the accounts page. The
// amount is treated as paid in full.
type PaymentInput struct {
	Tenant string           `json:"tenant"`
	Unit   string           `json:"unit"`
	Amount types.FlexUint64 `json:"amount"`
	Date   string           `json:"date"`
}

// Validate reports every missing required field.
func (in PaymentInput) Validate() error {
	e := &types.ValidationError{}
	if in.Tenant == "" {
		e.Add("tenant")
	}
	if in.Unit == "" {
		e.Add("unit")
	}
	if in.Amount == 0 {
		e.Add("amount")
	}
	return e.OrNil()
}

// Build creates a ledger row keyed by the submission's millisecond
// timestamp. An omitted date defaults to today.
func (in PaymentInput) Build(now time.Time) models.AccountPayment {
	date := in.Date
	if date == "" {
		date = now.Format(isoDate)
	}
	return models.AccountPayment{
		ID:            now.UnixMilli(),
		Tenant:        in.Tenant,
		Unit:          in.Unit,
		LeaseAmount:   in.Amount.Int(),
		PaidAmount:    in.Amount.Int(),
		PendingAmount: 0,
		Status:        models.AccountPaid,
		Date:          date,
	}
}

// TransferInput is the new-transfer dialog: a payment out to a worker.
type TransferInput struct {
	Worker string           `json:"worker"`
	Issue  string           `json:"issue"`
	Amount types.FlexUint64 `json:"amount"`
	Status string           `json:"status"`
}

// Validate reports every missing required field.
func (in TransferInput) Validate() error {
	e := &types.ValidationError{}
	if in.Worker == "" {
		e.Add("worker")
	}
	if in.Issue == "" {
		e.Add("issue")
	}
	if in.Amount == 0 {
		e.Add("amount")
	}
	return e.OrNil()
}

// Build creates a transfer row dated today. Status defaults to Pending.
func (in TransferInput) Build(now time.Time) models.MaintenanceTransfer {
	status := in.Status
	if status == "" {
		status = models.AccountPending
	}
	return models.MaintenanceTransfer{
		ID:     now.UnixMilli(),
		Worker: in.Worker,
		Issue:  in.Issue,
		Amount: in.Amount.Int(),
		Status: status,
		Date:   now.Format(isoDate),
	}
}

// ReceiptInput is the record-receipt dialog: a reimbursement from a
// tenant.
type ReceiptInput struct {
	Tenant string           `json:"tenant"`
	Unit   string           `json:"unit"`
	Issue  string           `json:"issue"`
	Amount types.FlexUint64 `json:"amount"`
	Date   string           `json:"date"`
}

// Validate reports every missing required field.
func (in ReceiptInput) Validate() error {
	e := &types.ValidationError{}
	if in.Tenant == "" {
		e.Add("tenant")
	}
	if in.Unit == "" {
		e.Add("unit")
	}
	if in.Issue == "" {
		e.Add("issue")
	}
	if in.Amount == 0 {
		e.Add("amount")
	}
	return e.OrNil()
}

// Build creates a receipt row, always Received. An omitted date defaults
// to today.
func (in ReceiptInput) Build(now time.Time) models.MaintenanceReceipt {
	date := in.Date
	if date == "" {
		date = now.Format(isoDate)
	}
	return models.MaintenanceReceipt{
		ID:     now.UnixMilli(),
		Tenant: in.Tenant,
		Unit:   in.Unit,
		Issue:  in.Issue,
		Amount: in.Amount.Int(),
		Status: models.AccountReceived,
		Date:   date,
	}
}
