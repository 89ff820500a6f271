package forms

import (
	"time"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
)

// PaymentProofInput is the tenant's submit-payment-proof dialog: how they
// paid, when, and the uploaded receipt image.
type PaymentProofInput struct {
	PaymentMethod string `json:"paymentMethod"`
	PaymentDate   string `json:"paymentDate"`
	Receipt       string `json:"receipt"`
}

// Validate reports every missing required field.
func (in PaymentProofInput) Validate() error {
	e := &types.ValidationError{}
	if in.PaymentMethod == "" {
		e.Add("paymentMethod")
	}
	if in.PaymentDate == "" {
		e.Add("paymentDate")
	}
	if in.Receipt == "" {
		e.Add("receipt")
	}
	return e.OrNil()
}

// Build creates the payment history row for the proof: the period is the
// payment month, and the status starts Paid at the submitted amount.
func (in PaymentProofInput) Build(amount string) models.PaymentHistoryEntry {
	period := in.PaymentDate
	paid := NormalizeDate(in.PaymentDate)
	if t, err := time.Parse(isoDate, in.PaymentDate); err == nil {
		period = t.Format("January 2006")
	}
	return models.PaymentHistoryEntry{
		Period:   period,
		Amount:   amount,
		PaidDate: paid,
		Method:   in.PaymentMethod,
		Status:   models.PaymentPaid,
	}
}
