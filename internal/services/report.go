package services

import (
	"time"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
)

// ReportFilename is the download name of the account export.
const ReportFilename = "account-report.json"

// AccountReport is the exported snapshot of the accounts page.
type AccountReport struct {
	Stats                []models.Stat                `json:"stats"`
	RentPayments         []models.AccountPayment      `json:"rentPayments"`
	MaintenanceTransfers []models.MaintenanceTransfer `json:"maintenanceTransfers"`
	MaintenanceReceipts  []models.MaintenanceReceipt  `json:"maintenanceReceipts"`
	Date                 string                       `json:"date"`
}

// Export snapshots the current account state, stamped with the export
// time in RFC 3339.
func (s *AccountService) Export() (AccountReport, error) {
	overview, err := s.Overview("")
	if err != nil {
		return AccountReport{}, err
	}
	return AccountReport{
		Stats:                overview.Stats,
		RentPayments:         overview.RentPayments,
		MaintenanceTransfers: overview.MaintenanceTransfers,
		MaintenanceReceipts:  overview.MaintenanceReceipts,
		Date:                 s.now().UTC().Format(time.RFC3339),
	}, nil
}
