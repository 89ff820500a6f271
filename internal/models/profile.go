package models

// EmergencyContact is a person to reach on the tenant's behalf.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ProfileLease summarizes the lease terms shown on the profile page.
type ProfileLease struct {
	Property        string `json:"property"`
	MoveInDate      string `json:"moveInDate"`
	LeaseEndDate    string `json:"leaseEndDate"`
	MonthlyRent     string `json:"monthlyRent"`
	SecurityDeposit string `json:"securityDeposit"`
}

// ProfileDocument is a verified document on file for the tenant.
type ProfileDocument struct {
	Name       string `json:"name"`
	UploadDate string `json:"uploadDate"`
	Verified   bool   `json:"verified"`
}

// TenantProfile is the tenant's own profile page. It is a singleton per
// session, edited in place through the profile form.
type TenantProfile struct {
	Name             string            `json:"name"`
	Unit             string            `json:"unit"`
	Status           string            `json:"status"`
	TenantID         string            `json:"tenantId"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	AlternatePhone   string            `json:"alternatePhone,omitempty"`
	Occupation       string            `json:"occupation,omitempty"`
	Company          string            `json:"company,omitempty"`
	EmergencyContact EmergencyContact  `json:"emergencyContact"`
	Lease            ProfileLease      `json:"lease"`
	Documents        []ProfileDocument `json:"documents"`
}
