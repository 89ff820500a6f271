package models

// Maintenance request statuses. The owner board opens requests as Open;
// tenant submissions start as Pending. Requests never transition after
// creation anywhere in the app.
const (
	RequestOpen       = "Open"
	RequestPending    = "Pending"
	RequestInProgress = "In Progress"
	RequestCompleted  = "Completed"
)

// Maintenance request priorities. The owner board and the tenant form used
// slightly different label sets; both are accepted.
const (
	PriorityLow    = "Low Priority"
	PriorityMedium = "Medium Priority"
	PriorityHigh   = "High Priority"
)

// RequestCategories are the categories offered by the tenant request form.
var RequestCategories = []string{
	"HVAC", "Plumbing", "Electrical", "Appliances", "Carpentry", "Painting", "Other",
}

// Request boards. The owner board and the tenant request list are
// separate collections backed by the same model; ids repeat across
// boards, so the board is part of the key.
const (
	BoardOwner  = "owner"
	BoardTenant = "tenant"
)

// MaintenanceRequest is a repair ticket. One model backs both the owner
// maintenance board and the tenant request list.
type MaintenanceRequest struct {
	Tracked

	ID           string `gorm:"primaryKey" json:"id"`
	Board        string `gorm:"primaryKey;size:16" json:"-"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Description  string `gorm:"not null" json:"description"`
	Tenant       string `gorm:"size:255" json:"tenant,omitempty"`
	Unit         string `gorm:"size:255" json:"unit,omitempty"`
	Priority     string `gorm:"size:32" json:"priority"`
	Status       string `gorm:"size:32" json:"status"`
	Category     string `gorm:"size:64" json:"category,omitempty"`
	ReportedDate string `gorm:"size:32" json:"reportedDate"`
	LastUpdated  string `gorm:"size:32" json:"lastUpdated,omitempty"`
	AssignedTo   string `gorm:"size:255" json:"assignedTo"`
	Notes        string `json:"notes,omitempty"`
}

// RecordID implements store.Entity.
func (m MaintenanceRequest) RecordID() string {
	return m.ID
}

// TableName overrides the table name for MaintenanceRequest
func (MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}
