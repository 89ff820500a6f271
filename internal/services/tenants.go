package services

import (
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/filter"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/forms"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
)

// TenantService backs the owner's tenant management page.
type TenantService struct {
	stores *Stores
}

// NewTenantService creates a TenantService over the shared stores.
func NewTenantService(s *Stores) *TenantService {
	return &TenantService{stores: s}
}

// List returns tenants matching the search query by name, email, or
// property.
func (s *TenantService) List(q string) ([]models.Tenant, error) {
	rows, err := s.stores.Tenants.List()
	if err != nil {
		return nil, err
	}
	return filter.Apply(rows, func(t models.Tenant) bool {
		return filter.MatchText(q, t.Name, t.Email, t.Property)
	}), nil
}

// Create validates the dialog input and adds a new tenant with derived
// id and initials.
func (s *TenantService) Create(in forms.TenantInput) (models.Tenant, error) {
	if err := in.Validate(); err != nil {
		return models.Tenant{}, err
	}
	count, err := s.stores.Tenants.Count()
	if err != nil {
		return models.Tenant{}, err
	}
	t := in.Build(count)
	if err := s.stores.Tenants.Add(t); err != nil {
		return models.Tenant{}, err
	}
	return t, nil
}
