package models

// DashboardStat is a headline metric card with its month-over-month delta.
type DashboardStat struct {
	Value      float64 `json:"value"`
	Change     string  `json:"change"`
	Trend      string  `json:"trend"`
	Percentage float64 `json:"percentage"`
}

// RentCollectionPoint is one month on the rent collection chart.
type RentCollectionPoint struct {
	Month     string `json:"month"`
	Collected int    `json:"collected"`
	Pending   int    `json:"pending"`
}

// MaintenanceCostPoint is one month on the maintenance costs chart.
type MaintenanceCostPoint struct {
	Month string `json:"month"`
	Cost  int    `json:"cost"`
}

// Activity is one entry on the owner dashboard's recent activity feed.
type Activity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Icon        string `json:"icon"`
}

// OwnerDashboard is everything the owner landing page renders.
type OwnerDashboard struct {
	TotalProperties    DashboardStat          `json:"totalProperties"`
	TotalTenants       DashboardStat          `json:"totalTenants"`
	MonthlyRevenue     DashboardStat          `json:"monthlyRevenue"`
	PendingMaintenance DashboardStat          `json:"pendingMaintenance"`
	RentCollection     []RentCollectionPoint  `json:"rentCollection"`
	MaintenanceCosts   []MaintenanceCostPoint `json:"maintenanceCosts"`
	RecentActivities   []Activity             `json:"recentActivities"`
}

// TenantLeaseInfo is the lease summary card on the tenant dashboard.
type TenantLeaseInfo struct {
	Property        string `json:"property"`
	Address         string `json:"address"`
	MonthlyRent     int    `json:"monthlyRent"`
	LeaseEnds       string `json:"leaseEnds"`
	SecurityDeposit int    `json:"securityDeposit"`
	Status          string `json:"status"`
}

// TenantRentSummary is the rent card on the tenant dashboard.
type TenantRentSummary struct {
	CurrentMonth       int    `json:"currentMonth"`
	PaidDate           string `json:"paidDate"`
	NextPaymentDue     string `json:"nextPaymentDue"`
	PaymentHistory     string `json:"paymentHistory"`
	ProgressPercentage int    `json:"progressPercentage"`
}

// ContactCard is a named contact with a phone and an optional note.
type ContactCard struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone"`
	Note  string `json:"note,omitempty"`
}

// LeaseRenewal is the renewal countdown card.
type LeaseRenewal struct {
	DaysRemaining int    `json:"daysRemaining"`
	ExpiryDate    string `json:"expiryDate"`
}

// TenantDashboard is everything the tenant landing page renders. The
// latest maintenance request comes from the live request store.
type TenantDashboard struct {
	Lease            TenantLeaseInfo     `json:"lease"`
	Rent             TenantRentSummary   `json:"rent"`
	LatestRequest    *MaintenanceRequest `json:"latestRequest,omitempty"`
	PropertyManager  ContactCard         `json:"propertyManager"`
	EmergencyContact ContactCard         `json:"emergencyContact"`
	Renewal          LeaseRenewal        `json:"renewal"`
}

// PaymentHistoryEntry is one row of the tenant's payment history table
// (tenant lease and rent pages).
type PaymentHistoryEntry struct {
	Period   string `json:"period"`
	DueDate  string `json:"dueDate,omitempty"`
	PaidDate string `json:"paidDate,omitempty"`
	Amount   string `json:"amount"`
	Method   string `json:"method,omitempty"`
	Status   string `json:"status"`
}
