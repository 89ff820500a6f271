package forms

import (
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
)

// ProfileInput is the tenant's edit-profile form. Only personal fields
// are editable; unit, status, tenant id, lease terms, and documents are
// owner-managed and never accepted here.
type ProfileInput struct {
	Name             string                  `json:"name"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone"`
	AlternatePhone   string                  `json:"alternatePhone"`
	Occupation       string                  `json:"occupation"`
	Company          string                  `json:"company"`
	EmergencyContact models.EmergencyContact `json:"emergencyContact"`
}

// Validate reports every missing required field.
func (in ProfileInput) Validate() error {
	e := &types.ValidationError{}
	if in.Name == "" {
		e.Add("name")
	}
	if in.Email == "" {
		e.Add("email")
	}
	if in.Phone == "" {
		e.Add("phone")
	}
	return e.OrNil()
}

// ApplyTo updates the profile's personal fields in place.
func (in ProfileInput) ApplyTo(p *models.TenantProfile) {
	p.Name = in.Name
	p.Email = in.Email
	p.Phone = in.Phone
	p.AlternatePhone = in.AlternatePhone
	p.Occupation = in.Occupation
	p.Company = in.Company
	p.EmergencyContact = in.EmergencyContact
}
