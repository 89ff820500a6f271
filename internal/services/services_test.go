package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/config"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/forms"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) *Stores {
	t.Helper()
	s, err := NewStores(&config.Config{StoreBackend: config.StoreMemory}, nil)
	require.NoError(t, err)
	return s
}

func TestTenantCreateDerivesIDAndInitials(t *testing.T) {
	svc := NewTenantService(testStores(t))

	got, err := svc.Create(forms.TenantInput{
		Name:       "Ana Lee",
		Email:      "ana@email.com",
		Phone:      "+1 234-567-8906",
		Property:   "Sunset Apartments",
		Unit:       "Unit 105",
		MoveInDate: "2024-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "6", got.ID)
	assert.Equal(t, "AL", got.Initials)

	rows, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Ana Lee", rows[0].Name)

	// new tenant is findable by search
	hits, err := svc.List("ana lee")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "6", hits[0].ID)
}

func TestTenantCreateInvalidMutatesNothing(t *testing.T) {
	svc := NewTenantService(testStores(t))

	_, err := svc.Create(forms.TenantInput{Name: "Ana Lee"})
	require.Error(t, err)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 5)

	rows, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestTenantSearchIsCaseInsensitive(t *testing.T) {
	svc := NewTenantService(testStores(t))

	upper, err := svc.List("SUNSET")
	require.NoError(t, err)
	lower, err := svc.List("sunset")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	assert.Len(t, upper, 3)
}

func TestOwnerBoardOpenTab(t *testing.T) {
	svc := NewMaintenanceService(testStores(t))

	view, err := svc.OwnerBoard("open")
	require.NoError(t, err)
	require.Len(t, view.Requests, 2)
	assert.Equal(t, "Broken AC Unit", view.Requests[0].Title)
	assert.Equal(t, "Window Crack", view.Requests[1].Title)
	assert.Equal(t, 2, view.Open)
	assert.Equal(t, 2, view.InProgress)
	assert.Equal(t, 1, view.Completed)
}

func TestOwnerBoardTabsPartitionRequests(t *testing.T) {
	svc := NewMaintenanceService(testStores(t))

	all, err := svc.OwnerBoard("")
	require.NoError(t, err)

	total := 0
	for _, tab := range []string{"open", "inProgress", "completed"} {
		view, err := svc.OwnerBoard(tab)
		require.NoError(t, err)
		total += len(view.Requests)
	}
	assert.Equal(t, len(all.Requests), total)
}

func TestTenantRequestStartsPending(t *testing.T) {
	svc := NewMaintenanceService(testStores(t))

	got, err := svc.CreateTenant(forms.RequestInput{
		Title:       "Dripping Shower",
		Description: "Shower head drips after closing",
		Category:    "Plumbing",
	})
	require.NoError(t, err)
	assert.Equal(t, "4", got.ID)
	assert.Equal(t, models.RequestPending, got.Status)

	view, err := svc.TenantBoard("")
	require.NoError(t, err)
	require.Len(t, view.Requests, 4)
	assert.Equal(t, "Dripping Shower", view.Requests[0].Title)

	latest, err := svc.Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "Dripping Shower", latest.Title)
}

func TestPropertyEditChangesExactlyOneRecord(t *testing.T) {
	svc := NewPropertyService(testStores(t))

	_, err := svc.Edit("2", forms.PropertyInput{
		Name:    "Green Valley Renewed",
		Address: "456 Oak Avenue, Westside",
		Floors:  9,
	})
	require.NoError(t, err)

	rows, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	renamed := 0
	for _, p := range rows {
		if p.Name == "Green Valley Renewed" {
			renamed++
			assert.Equal(t, 2, p.ID)
			assert.Equal(t, 9, p.Floors)
			// occupancy preserved through the edit
			assert.Equal(t, 30, p.Occupied)
			assert.NotEmpty(t, p.Image)
		}
	}
	assert.Equal(t, 1, renamed)
}

func TestPropertyCreateRequiresImage(t *testing.T) {
	svc := NewPropertyService(testStores(t))

	_, err := svc.Create(forms.PropertyInput{
		Name:    "Harbor Point",
		Address: "9 Pier Lane",
		Floors:  2,
	})
	require.Error(t, err)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"image"}, verr.Fields)

	rows, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestPropertyCreateKeepsUploadedImage(t *testing.T) {
	svc := NewPropertyService(testStores(t))

	got, err := svc.Create(forms.PropertyInput{
		Name:    "Harbor Point",
		Address: "9 Pier Lane",
		Floors:  2,
		Image:   "data:image/png;base64,iVBORw0KGgo=",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, got.ID)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", got.Image)
}

func TestPropertyEditUnknownID(t *testing.T) {
	svc := NewPropertyService(testStores(t))
	_, err := svc.Edit("42", forms.PropertyInput{Name: "x", Address: "y", Floors: 1})
	assert.Error(t, err)
}

func TestPropertyDetailFloorFilter(t *testing.T) {
	svc := NewPropertyService(testStores(t))

	detail, err := svc.Detail("1", "")
	require.NoError(t, err)
	assert.Len(t, detail.Units, 8)
	assert.Equal(t, []int{1, 2}, detail.Floors)
	assert.Equal(t, 90, detail.OccupancyRate)

	floor2, err := svc.Detail("1", "2")
	require.NoError(t, err)
	require.Len(t, floor2.Units, 4)
	for _, u := range floor2.Units {
		assert.Equal(t, 2, u.Floor)
	}
}

func TestRentTrackerTabs(t *testing.T) {
	svc := NewRentService(testStores(t))

	all, err := svc.Tracker("")
	require.NoError(t, err)
	assert.Len(t, all.Payments, 5)
	assert.Equal(t, 3, all.Paid)
	assert.Equal(t, 1, all.Pending)
	assert.Equal(t, 1, all.Overdue)

	paid, err := svc.Tracker(models.PaymentPaid)
	require.NoError(t, err)
	assert.Len(t, paid.Payments, 3)
}

func TestLeaseListCountsAndTabs(t *testing.T) {
	svc := NewLeaseService(testStores(t))

	view, err := svc.List("", "")
	require.NoError(t, err)
	assert.Len(t, view.Leases, 4)
	assert.Equal(t, 2, view.Active)
	assert.Equal(t, 2, view.Expiring)

	expiring, err := svc.List("", "expiring")
	require.NoError(t, err)
	require.Len(t, expiring.Leases, 2)
	assert.Equal(t, "Emma Davis", expiring.Leases[0].Tenant)
	assert.Equal(t, 28, expiring.Leases[0].DaysLeft)
}

func TestAccountExportSnapshot(t *testing.T) {
	svc := NewAccountService(testStores(t))
	svc.now = func() time.Time {
		return time.Date(2024, time.November, 21, 15, 4, 5, 0, time.UTC)
	}

	report, err := svc.Export()
	require.NoError(t, err)

	raw, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"stats", "rentPayments", "maintenanceTransfers", "maintenanceReceipts", "date"} {
		assert.Contains(t, decoded, key)
	}

	var payments []models.AccountPayment
	require.NoError(t, json.Unmarshal(decoded["rentPayments"], &payments))
	assert.Len(t, payments, 2)

	var date string
	require.NoError(t, json.Unmarshal(decoded["date"], &date))
	_, err = time.Parse(time.RFC3339, date)
	assert.NoError(t, err)
}

func TestAccountRecordPayment(t *testing.T) {
	svc := NewAccountService(testStores(t))
	now := time.Date(2024, time.November, 21, 15, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return now }

	got, err := svc.RecordPayment(forms.PaymentInput{Tenant: "Mike Brown", Unit: "C-104", Amount: 1250})
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), got.ID)

	overview, err := svc.Overview("")
	require.NoError(t, err)
	require.Len(t, overview.RentPayments, 3)
	assert.Equal(t, "Mike Brown", overview.RentPayments[0].Tenant)

	// search narrows the payment ledger only
	narrowed, err := svc.Overview("mike")
	require.NoError(t, err)
	assert.Len(t, narrowed.RentPayments, 1)
	assert.Len(t, narrowed.MaintenanceTransfers, 2)
}

func TestPhotoSetProgress(t *testing.T) {
	svc := NewPhotoService(testStores(t))

	moveIn, err := svc.Set(models.PhaseMoveIn)
	require.NoError(t, err)
	assert.Len(t, moveIn.Photos, 4)
	assert.Equal(t, 8, moveIn.TotalAreas)
	assert.Equal(t, 4, moveIn.DocumentedAreas)
	assert.Equal(t, 50, moveIn.Progress)

	moveOut, err := svc.Set(models.PhaseMoveOut)
	require.NoError(t, err)
	assert.Empty(t, moveOut.Photos)
	assert.Zero(t, moveOut.Progress)
}

func TestPhotoUploadGroupsByCategory(t *testing.T) {
	svc := NewPhotoService(testStores(t))

	_, err := svc.Upload(models.PhaseMoveOut, forms.PhotoUploadInput{
		Category: "Balcony",
		Photos:   types.FlexList[string]{"data:image/jpeg;base64,AAA="},
	})
	require.NoError(t, err)

	moveOut, err := svc.Set(models.PhaseMoveOut)
	require.NoError(t, err)
	require.Len(t, moveOut.Photos, 1)
	assert.Len(t, moveOut.Grouped["Balcony"], 1)
	assert.Equal(t, 13, moveOut.Progress)
}

func TestTenantDashboardShowsLatestRequest(t *testing.T) {
	stores := testStores(t)
	maint := NewMaintenanceService(stores)
	dash := NewDashboardService(maint)

	d, err := dash.Tenant()
	require.NoError(t, err)
	require.NotNil(t, d.LatestRequest)
	assert.Equal(t, "Air Conditioner Not Cooling", d.LatestRequest.Title)
	assert.Equal(t, "Sunset Apartments - Unit 101", d.Lease.Property)

	_, err = maint.CreateTenant(forms.RequestInput{Title: "New Issue", Description: "broke"})
	require.NoError(t, err)

	d, err = dash.Tenant()
	require.NoError(t, err)
	assert.Equal(t, "New Issue", d.LatestRequest.Title)
}

func TestOwnerDashboardSnapshot(t *testing.T) {
	dash := NewDashboardService(NewMaintenanceService(testStores(t)))
	d := dash.Owner()
	assert.Equal(t, float64(24), d.TotalProperties.Value)
	assert.Len(t, d.RentCollection, 6)
	assert.Len(t, d.RecentActivities, 4)
}

func TestTenantPagesProfileEdit(t *testing.T) {
	svc := NewTenantPageService()

	p := svc.Profile()
	assert.Equal(t, "Sarah Johnson", p.Name)

	updated, err := svc.UpdateProfile(forms.ProfileInput{
		Name:  "Sarah Johnson-Lee",
		Email: "sarah.jl@email.com",
		Phone: "+1 (555) 123-4567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson-Lee", updated.Name)
	assert.Equal(t, "TEN-2024-0304", updated.TenantID)

	_, err = svc.UpdateProfile(forms.ProfileInput{})
	require.Error(t, err)
	assert.Equal(t, "Sarah Johnson-Lee", svc.Profile().Name)
}

func TestTenantPagesSubmitProof(t *testing.T) {
	svc := NewTenantPageService()

	before := svc.RentPage()
	require.Len(t, before.PaymentHistory, 5)

	entry, err := svc.SubmitProof(forms.PaymentProofInput{
		PaymentMethod: "Bank Transfer",
		PaymentDate:   "2024-12-01",
		Receipt:       "data:image/png;base64,AAA=",
	})
	require.NoError(t, err)
	assert.Equal(t, "December 2024", entry.Period)
	assert.Equal(t, "$1,850", entry.Amount)

	after := svc.RentPage()
	require.Len(t, after.PaymentHistory, 6)
	assert.Equal(t, "December 2024", after.PaymentHistory[0].Period)
	assert.Equal(t, 6, after.Summary.TotalPayments)
}

func TestHealthCheckReportsCounts(t *testing.T) {
	cfg := &config.Config{StoreBackend: config.StoreMemory}
	result := HealthCheck(cfg, testStores(t))

	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, config.StoreMemory, result.Store)
	assert.Equal(t, 4, result.Counts["properties"])
	assert.Equal(t, 5, result.Counts["tenants"])
	assert.Equal(t, 5, result.Counts["ownerRequests"])
}
