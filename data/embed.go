package data

import (
	_ "embed"
)

//go:embed fixtures/tenants.json
var Tenants []byte

//go:embed fixtures/leases.json
var Leases []byte

//go:embed fixtures/properties.json
var Properties []byte

//go:embed fixtures/maintenance_owner.json
var MaintenanceOwner []byte

//go:embed fixtures/maintenance_tenant.json
var MaintenanceTenant []byte

//go:embed fixtures/rent_payments.json
var RentPayments []byte

//go:embed fixtures/account.json
var Account []byte

//go:embed fixtures/move_photos.json
var MovePhotos []byte

//go:embed fixtures/owner_dashboard.json
var OwnerDashboard []byte

//go:embed fixtures/tenant_dashboard.json
var TenantDashboard []byte

//go:embed fixtures/tenant_profile.json
var TenantProfile []byte

//go:embed fixtures/tenant_lease.json
var TenantLease []byte

//go:embed fixtures/tenant_property.json
var TenantProperty []byte

//go:embed fixtures/tenant_rent.json
var TenantRent []byte
