package services

import (
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/filter"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/forms"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
)

// LeaseList is the lease management page: the rows under the current
// search/tab refinement plus the header counts.
type LeaseList struct {
	Leases   []models.Lease `json:"leases"`
	Active   int            `json:"active"`
	Expiring int            `json:"expiring"`
}

// LeaseService backs the owner's lease management page.
type LeaseService struct {
	stores *Stores
}

// NewLeaseService creates a LeaseService over the shared stores.
func NewLeaseService(s *Stores) *LeaseService {
	return &LeaseService{stores: s}
}

// List returns leases matching the search query by tenant or property,
// narrowed by tab ("active" or "expiring"; anything else shows all).
// Header counts cover the whole collection, not the refined view.
func (s *LeaseService) List(q, tab string) (LeaseList, error) {
	rows, err := s.stores.Leases.List()
	if err != nil {
		return LeaseList{}, err
	}

	counts := filter.CountBy(rows, func(l models.Lease) string { return l.Status })

	matched := filter.Apply(rows, func(l models.Lease) bool {
		if !filter.MatchText(q, l.Tenant, l.Property) {
			return false
		}
		switch tab {
		case "active":
			return l.Status == models.LeaseActive
		case "expiring":
			return l.Status == models.LeaseExpiring
		default:
			return true
		}
	})

	return LeaseList{
		Leases:   matched,
		Active:   counts[models.LeaseActive],
		Expiring: counts[models.LeaseExpiring],
	}, nil
}

// Create validates the dialog input and adds a new lease.
func (s *LeaseService) Create(in forms.LeaseInput) (models.Lease, error) {
	if err := in.Validate(); err != nil {
		return models.Lease{}, err
	}
	count, err := s.stores.Leases.Count()
	if err != nil {
		return models.Lease{}, err
	}
	l := in.Build(count)
	if err := s.stores.Leases.Add(l); err != nil {
		return models.Lease{}, err
	}
	return l, nil
}
