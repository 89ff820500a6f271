package forms

import (
	"fmt"
	"time"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
)

// RequestInput is the tenant's new maintenance request form. The owner
// board uses the same shape plus tenant/unit attribution.
type RequestInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	Category      string `json:"category"`
	PreferredDate string `json:"preferredDate"`
	ContactPhone  string `json:"contactPhone"`

	// Owner-board attribution, ignored on tenant submissions.
	Tenant string `json:"tenant"`
	Unit   string `json:"unit"`
}

// Validate reports every missing or malformed required field.
func (in RequestInput) Validate() error {
	e := &types.ValidationError{}
	if in.Title == "" {
		e.Add("title")
	}
	if in.Description == "" {
		e.Add("description")
	}
	if in.Category != "" && !validCategory(in.Category) {
		e.Add("category")
	}
	return e.OrNil()
}

func validCategory(c string) bool {
	for _, known := range models.RequestCategories {
		if known == c {
			return true
		}
	}
	return false
}

// BuildTenant creates a tenant request: Pending, awaiting assignment,
// dated now. A preferred inspection date lands in the notes.
func (in RequestInput) BuildTenant(count int, now time.Time) models.MaintenanceRequest {
	today := now.Format(displayDate)
	notes := ""
	if in.PreferredDate != "" {
		notes = fmt.Sprintf("Preferred inspection date: %s", in.PreferredDate)
	}
	return models.MaintenanceRequest{
		ID:           nextID(count),
		Board:        models.BoardTenant,
		Title:        in.Title,
		Description:  in.Description,
		Status:       models.RequestPending,
		Priority:     in.priorityOr(models.PriorityMedium),
		Category:     in.categoryOr("HVAC"),
		ReportedDate: today,
		LastUpdated:  today,
		AssignedTo:   "Pending Assignment",
		Notes:        notes,
	}
}

// BuildOwner creates an owner-board request: Open and unassigned.
func (in RequestInput) BuildOwner(count int, now time.Time) models.MaintenanceRequest {
	return models.MaintenanceRequest{
		ID:           nextID(count),
		Board:        models.BoardOwner,
		Title:        in.Title,
		Description:  in.Description,
		Tenant:       in.Tenant,
		Unit:         in.Unit,
		Status:       models.RequestOpen,
		Priority:     in.priorityOr(models.PriorityMedium),
		Category:     in.Category,
		ReportedDate: now.Format(displayDate),
		AssignedTo:   "Unassigned",
	}
}

func (in RequestInput) priorityOr(fallback string) string {
	if in.Priority == "" {
		return fallback
	}
	return in.Priority
}

func (in RequestInput) categoryOr(fallback string) string {
	if in.Category == "" {
		return fallback
	}
	return in.Category
}
