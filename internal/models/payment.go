package models

import "strconv"

// Rent tracker statuses.
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
	PaymentOverdue = "Overdue"
)

// RentPayment is a row on the owner's rent payment tracker. The tracker is
// read-only: payments are seeded, tab-filtered, and never mutated.
type RentPayment struct {
	Tracked

	ID            int    `gorm:"primaryKey" json:"id"`
	Tenant        string `gorm:"size:255;not null" json:"tenant"`
	Property      string `gorm:"size:255" json:"property"`
	Unit          string `gorm:"size:64" json:"unit"`
	Amount        int    `json:"amount"`
	DueDate       string `gorm:"size:32" json:"dueDate"`
	PaidDate      string `gorm:"size:32" json:"paidDate,omitempty"`
	PaymentMethod string `gorm:"size:64" json:"paymentMethod,omitempty"`
	Status        string `gorm:"size:32" json:"status"`
}

// RecordID implements store.Entity.
func (p RentPayment) RecordID() string {
	return strconv.Itoa(p.ID)
}

// TableName overrides the table name for RentPayment
func (RentPayment) TableName() string {
	return "rent_payments"
}
