package services

import (
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
)

// DashboardService backs both landing pages. The owner dashboard is the
// seeded snapshot; the tenant dashboard folds in the latest live
// maintenance request.
type DashboardService struct {
	maintenance *MaintenanceService

	owner  models.OwnerDashboard
	tenant models.TenantDashboard
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(m *MaintenanceService) *DashboardService {
	return &DashboardService{
		maintenance: m,
		owner:       models.SeedOwnerDashboard(),
		tenant:      models.SeedTenantDashboard(),
	}
}

// Owner returns the owner dashboard snapshot.
func (s *DashboardService) Owner() models.OwnerDashboard {
	return s.owner
}

// Tenant returns the tenant dashboard with the most recent maintenance
// request from the live request list.
func (s *DashboardService) Tenant() (models.TenantDashboard, error) {
	d := s.tenant
	latest, err := s.maintenance.Latest()
	if err != nil {
		return models.TenantDashboard{}, err
	}
	d.LatestRequest = latest
	return d, nil
}
