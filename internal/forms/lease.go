package forms

import (
	"strconv"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
)

// nextID is the sequential string id every append-only list assigns.
func nextID(count int) string {
	return strconv.Itoa(count + 1)
}

// LeaseInput is the create-lease dialog. Money fields arrive as strings
// from the form, so they decode through FlexUint64.
type LeaseInput struct {
	Tenant      string           `json:"tenant"`
	Property    string           `json:"property"`
	Unit        string           `json:"unit"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	MonthlyRent types.FlexUint64 `json:"monthlyRent"`
	Deposit     types.FlexUint64 `json:"deposit"`
}

// Validate reports every missing required field.
func (in LeaseInput) Validate() error {
	e := &types.ValidationError{}
	if in.Tenant == "" {
		e.Add("tenant")
	}
	if in.Property == "" {
		e.Add("property")
	}
	if in.Unit == "" {
		e.Add("unit")
	}
	if in.StartDate == "" {
		e.Add("startDate")
	}
	if in.EndDate == "" {
		e.Add("endDate")
	}
	if in.MonthlyRent == 0 {
		e.Add("monthlyRent")
	}
	if in.Deposit == 0 {
		e.Add("deposit")
	}
	return e.OrNil()
}

// Build creates the lease record. New leases always start Active.
func (in LeaseInput) Build(count int) models.Lease {
	return models.Lease{
		ID:          nextID(count),
		Tenant:      in.Tenant,
		Property:    in.Property,
		Unit:        in.Unit,
		StartDate:   NormalizeDate(in.StartDate),
		EndDate:     NormalizeDate(in.EndDate),
		MonthlyRent: in.MonthlyRent.Int(),
		Deposit:     in.Deposit.Int(),
		Status:      models.LeaseActive,
	}
}
