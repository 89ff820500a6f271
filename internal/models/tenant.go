package models

import "strings"

// Lease and rent statuses shown on the tenant list.
const (
	LeaseActive   = "Active"
	LeaseExpiring = "Expiring Soon"

	RentPaid    = "Paid"
	RentOverdue = "Overdue"
)

// Tenant is a renter record on the owner's tenant management page.
// Tenants are appended only; nothing in the app mutates one after creation.
type Tenant struct {
	Tracked

	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Initials    string `gorm:"size:8" json:"initials"`
	Email       string `gorm:"size:255;not null" json:"email"`
	Phone       string `gorm:"size:64;not null" json:"phone"`
	Property    string `gorm:"size:255;not null" json:"property"`
	Unit        string `gorm:"size:64;not null" json:"unit"`
	MoveInDate  string `gorm:"size:32" json:"moveInDate"`
	LeaseStatus string `gorm:"size:32" json:"leaseStatus"`
	RentStatus  string `gorm:"size:32" json:"rentStatus"`
}

// RecordID implements store.Entity.
func (t Tenant) RecordID() string {
	return t.ID
}

// TableName overrides the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// InitialsOf derives display initials from a full name: first letter of
// each word, uppercased. "Ana Lee" -> "AL".
func InitialsOf(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
