package services

import (
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/filter"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
)

// RentTrackerView is the owner's rent payment tracker: the rows under
// the active tab plus the per-status tab counts.
type RentTrackerView struct {
	Payments []models.RentPayment `json:"payments"`
	Paid     int                  `json:"paid"`
	Pending  int                  `json:"pending"`
	Overdue  int                  `json:"overdue"`
}

// RentService backs the owner's read-only rent payment tracker.
type RentService struct {
	stores *Stores
}

// NewRentService creates a RentService over the shared stores.
func NewRentService(s *Stores) *RentService {
	return &RentService{stores: s}
}

// Tracker returns the payments under the given tab ("Paid", "Pending",
// "Overdue"; anything else shows all) with the tab counts.
func (s *RentService) Tracker(tab string) (RentTrackerView, error) {
	rows, err := s.stores.RentPayments.List()
	if err != nil {
		return RentTrackerView{}, err
	}

	counts := filter.CountBy(rows, func(p models.RentPayment) string { return p.Status })

	matched := rows
	switch tab {
	case models.PaymentPaid, models.PaymentPending, models.PaymentOverdue:
		matched = filter.Apply(rows, func(p models.RentPayment) bool {
			return p.Status == tab
		})
	}

	return RentTrackerView{
		Payments: matched,
		Paid:     counts[models.PaymentPaid],
		Pending:  counts[models.PaymentPending],
		Overdue:  counts[models.PaymentOverdue],
	}, nil
}
