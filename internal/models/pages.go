package models

// TenantLeasePage is the tenant's lease agreement page: lease terms, the
// payment schedule, and the key terms list.
type TenantLeasePage struct {
	Status           string                `json:"status"`
	StartDate        string                `json:"startDate"`
	EndDate          string                `json:"endDate"`
	MonthlyRent      string                `json:"monthlyRent"`
	SecurityDeposit  string                `json:"securityDeposit"`
	LeaseDuration    string                `json:"leaseDuration"`
	RentPaymentCycle string                `json:"rentPaymentCycle"`
	PaymentDueDate   string                `json:"paymentDueDate"`
	PaymentSchedule  []PaymentHistoryEntry `json:"paymentSchedule"`
	KeyTerms         []string              `json:"keyTerms"`
}

// TenantPropertyPage describes the tenant's assigned unit and building.
type TenantPropertyPage struct {
	UnitNumber        string   `json:"unitNumber"`
	BuildingName      string   `json:"buildingName"`
	Floor             string   `json:"floor"`
	Size              string   `json:"size"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	PropertyType      string   `json:"propertyType"`
	Furnishing        string   `json:"furnishing"`
	UnitAmenities     []string `json:"unitAmenities"`
	BuildingAmenities []string `json:"buildingAmenities"`
}

// RentDue is the current rent due banner on the tenant rent page.
type RentDue struct {
	Amount  string `json:"amount"`
	DueIn   string `json:"dueIn"`
	DueDate string `json:"dueDate"`
}

// RentPageSummary holds the four summary cards on the tenant rent page.
type RentPageSummary struct {
	TotalPaid          string `json:"totalPaid"`
	TotalPayments      int    `json:"totalPayments"`
	SecurityDeposit    string `json:"securityDeposit"`
	OutstandingBalance string `json:"outstandingBalance"`
}

// TenantRentPage is the tenant's rent status page. PaymentHistory grows
// when a payment proof is submitted.
type TenantRentPage struct {
	Due            RentDue               `json:"due"`
	Summary        RentPageSummary       `json:"summary"`
	PaymentHistory []PaymentHistoryEntry `json:"paymentHistory"`
}
