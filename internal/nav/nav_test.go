package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuForOwner(t *testing.T) {
	menu := MenuFor(RoleOwner, "/propertyowner-dashboard")
	require.Len(t, menu, 7)
	assert.Equal(t, "Dashboard", menu[0].Label)
	assert.True(t, menu[0].Active)
	for _, e := range menu[1:] {
		assert.False(t, e.Active, e.Label)
	}
}

func TestMenuForTenant(t *testing.T) {
	menu := MenuFor(RoleTenant, "/tenant-maintenance")
	require.Len(t, menu, 7)
	labels := make([]string, len(menu))
	for i, e := range menu {
		labels[i] = e.Label
	}
	assert.Equal(t, []string{
		"Dashboard", "My Property", "My Lease", "Rent Status",
		"Maintenance", "Move In/Out", "Profile",
	}, labels)
	assert.True(t, menu[4].Active)
}

func TestMenuForUnknownRoleFallsBackToOwner(t *testing.T) {
	menu := MenuFor("janitor", "/")
	require.Len(t, menu, 7)
	assert.Equal(t, "/propertyowner-dashboard", menu[0].Href)
}

func TestIsActivePrefixMatch(t *testing.T) {
	properties := Entry{Label: "Properties", Href: "/propertyowner-properties"}
	assert.True(t, IsActive(properties, "/propertyowner-properties"))
	assert.True(t, IsActive(properties, "/propertyowner-properties/3"))
	assert.False(t, IsActive(properties, "/propertyowner-propertiesx"))
}

func TestIsActiveDashboardExactOnly(t *testing.T) {
	dash := Entry{Label: "Dashboard", Href: "/tenant-dashboard"}
	assert.True(t, IsActive(dash, "/tenant-dashboard"))
	assert.True(t, IsActive(dash, "/tenant-dashboard/"))
	assert.False(t, IsActive(dash, "/tenant-dashboard/summary"))
}

func TestNewShell(t *testing.T) {
	s := NewShell(RoleTenant, "/tenant-lease")
	assert.Equal(t, RoleTenant, s.Role)
	assert.False(t, s.MobileMenuOpen)
	assert.Equal(t, "/login", s.LogoutRedirect)
	assert.True(t, s.Menu[2].Active)
}
