// account.go
//
// Property management service for property owners and tenants.
// Copyright (c) 2026 Farhan Basheer
//
// This file is part of pms. pms is free software: you can redistribute it
// and/or modify it under the terms of the GNU Affero General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

package models

import "strconv"

// Accounts-view statuses.
const (
	AccountPaid     = "Paid"
	AccountPartial  = "Partial"
	AccountPending  = "Pending"
	AccountReceived = "Received"
)

// Stat is one headline card on the accounts overview.
type Stat struct {
	Tracked

	Label  string `gorm:"size:255;primaryKey" json:"label"`
	Value  string `gorm:"size:64" json:"value"`
	Change string `gorm:"size:32" json:"change"`
	Trend  string `gorm:"size:8" json:"trend"`
}

// RecordID implements store.Entity.
func (s Stat) RecordID() string {
	return s.Label
}

// TableName overrides the table name for Stat
func (Stat) TableName() string {
	return "account_stats"
}

// AccountPayment is a rent payment ledger row on the accounts page.
// Identifiers are millisecond timestamps assigned at creation.
type AccountPayment struct {
	Tracked

	ID            int64  `gorm:"primaryKey" json:"id"`
	Tenant        string `gorm:"size:255;not null" json:"tenant"`
	Unit          string `gorm:"size:64;not null" json:"unit"`
	LeaseAmount   int    `json:"leaseAmount"`
	PaidAmount    int    `json:"paidAmount"`
	PendingAmount int    `json:"pendingAmount"`
	Status        string `gorm:"size:32" json:"status"`
	Date          string `gorm:"size:32" json:"date"`
}

// RecordID implements store.Entity.
func (p AccountPayment) RecordID() string {
	return strconv.FormatInt(p.ID, 10)
}

// TableName overrides the table name for AccountPayment
func (AccountPayment) TableName() string {
	return "account_payments"
}

// MaintenanceTransfer is a payment out to a maintenance worker.
type MaintenanceTransfer struct {
	Tracked

	ID     int64  `gorm:"primaryKey" json:"id"`
	Worker string `gorm:"size:255;not null" json:"worker"`
	Issue  string `gorm:"size:255;not null" json:"issue"`
	Amount int    `json:"amount"`
	Status string `gorm:"size:32" json:"status"`
	Date   string `gorm:"size:32" json:"date"`
}

// RecordID implements store.Entity.
func (t MaintenanceTransfer) RecordID() string {
	return strconv.FormatInt(t.ID, 10)
}

// TableName overrides the table name for MaintenanceTransfer
func (MaintenanceTransfer) TableName() string {
	return "maintenance_transfers"
}

// MaintenanceReceipt is a reimbursement collected from a tenant.
type MaintenanceReceipt struct {
	Tracked

	ID     int64  `gorm:"primaryKey" json:"id"`
	Tenant string `gorm:"size:255;not null" json:"tenant"`
	Unit   string `gorm:"size:64;not null" json:"unit"`
	Issue  string `gorm:"size:255;not null" json:"issue"`
	Amount int    `json:"amount"`
	Status string `gorm:"size:32" json:"status"`
	Date   string `gorm:"size:32" json:"date"`
}

// RecordID implements store.Entity.
func (r MaintenanceReceipt) RecordID() string {
	return strconv.FormatInt(r.ID, 10)
}

// TableName overrides the table name for MaintenanceReceipt
func (MaintenanceReceipt) TableName() string {
	return "maintenance_receipts"
}
