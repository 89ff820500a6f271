package services

import (
	"fmt"
	"log"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/config"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string         `json:"status"`
	Store        string         `json:"store"`
	Counts       map[string]int `json:"counts,omitempty"`
	ErrorMessage string         `json:"error,omitempty"`
}

// HealthCheck verifies the store backend is reachable by counting every
// collection, and reports the counts.
func HealthCheck(cfg *config.Config, stores *Stores) HealthCheckResult {
	result := HealthCheckResult{
		Status: "healthy",
		Store:  cfg.StoreBackend,
		Counts: make(map[string]int),
	}

	checks := []struct {
		name  string
		count func() (int, error)
	}{
		{"properties", stores.Properties.Count},
		{"tenants", stores.Tenants.Count},
		{"leases", stores.Leases.Count},
		{"ownerRequests", stores.OwnerRequests.Count},
		{"tenantRequests", stores.TenantRequests.Count},
		{"rentPayments", stores.RentPayments.Count},
		{"accountPayments", stores.AccountPayments.Count},
		{"photos", stores.Photos.Count},
	}

	for _, check := range checks {
		n, err := check.count()
		if err != nil {
			result.Status = "unhealthy"
			result.ErrorMessage = fmt.Sprintf("%s count failed: %v", check.name, err)
			log.Printf("Health check failed - %s: %v", check.name, err)
			return result
		}
		result.Counts[check.name] = n
	}

	return result
}
