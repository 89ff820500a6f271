package models

// Lease is a lease agreement row on the owner's lease management page.
// Appended only.
type Lease struct {
	Tracked

	ID          string `gorm:"primaryKey" json:"id"`
	Tenant      string `gorm:"size:255;not null" json:"tenant"`
	Property    string `gorm:"size:255;not null" json:"property"`
	Unit        string `gorm:"size:64;not null" json:"unit"`
	StartDate   string `gorm:"size:32" json:"startDate"`
	EndDate     string `gorm:"size:32" json:"endDate"`
	MonthlyRent int    `json:"monthlyRent"`
	Deposit     int    `json:"deposit"`
	Status      string `gorm:"size:32" json:"status"`
	DaysLeft    int    `json:"daysLeft,omitempty"`
}

// RecordID implements store.Entity.
func (l Lease) RecordID() string {
	return l.ID
}

// TableName overrides the table name for Lease
func (Lease) TableName() string {
	return "leases"
}
