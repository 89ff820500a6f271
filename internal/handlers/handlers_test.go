package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/config"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/services"
	"github.com/farhanbasheerfarhan399-cyber/pms/internal/types"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.Config{StoreBackend: config.StoreMemory, APIVersion: "1.0.0"}
	stores, err := services.NewStores(cfg, nil)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	NewSet(cfg, stores).Register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestAddTenantAppearsInList(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "POST", "/propertyowner-tenant", `{
		"name": "Ana Lee",
		"email": "ana@email.com",
		"phone": "+1 234-567-8906",
		"property": "Sunset Apartments",
		"unit": "Unit 105",
		"moveInDate": "2024-02-01"
	}`)
	require.Equal(t, fiber.StatusCreated, status)

	var created models.Tenant
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "6", created.ID)
	assert.Equal(t, "AL", created.Initials)
	assert.Equal(t, "Feb 1, 2024", created.MoveInDate)

	status, raw = doJSON(t, app, "GET", "/propertyowner-tenant", "")
	require.Equal(t, fiber.StatusOK, status)

	var rows []models.Tenant
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 6)
	assert.Equal(t, "Ana Lee", rows[0].Name)
	assert.Equal(t, "John Smith", rows[1].Name)
}

func TestAddTenantMissingFields(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "POST", "/propertyowner-tenant", `{"name": "Ana Lee"}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	var body struct {
		Message string   `json:"message"`
		Fields  []string `json:"fields"`
		Type    string   `json:"type"`
		OK      bool     `json:"ok"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Missing or invalid required fields", body.Message)
	assert.Equal(t, "validation", body.Type)
	assert.False(t, body.OK)
	assert.ElementsMatch(t, []string{"email", "phone", "property", "unit", "moveInDate"}, body.Fields)

	// nothing was added
	status, raw = doJSON(t, app, "GET", "/propertyowner-tenant", "")
	require.Equal(t, fiber.StatusOK, status)
	var rows []models.Tenant
	require.NoError(t, json.Unmarshal(raw, &rows))
	assert.Len(t, rows, 5)
}

func TestMaintenanceOpenTab(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "GET", "/propertyowner-maintenance?tab=open", "")
	require.Equal(t, fiber.StatusOK, status)

	var view services.BoardView
	require.NoError(t, json.Unmarshal(raw, &view))
	require.Len(t, view.Requests, 2)
	assert.Equal(t, "Broken AC Unit", view.Requests[0].Title)
	assert.Equal(t, "Window Crack", view.Requests[1].Title)
	assert.Equal(t, 2, view.Open)
	assert.Equal(t, 2, view.InProgress)
	assert.Equal(t, 1, view.Completed)
}

func TestAccountExportDownload(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "GET", "/propertyowner-accounts/export", "")
	require.Equal(t, fiber.StatusOK, status)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"stats", "rentPayments", "maintenanceTransfers", "maintenanceReceipts", "date"} {
		assert.Contains(t, decoded, key)
	}

	var payments []models.AccountPayment
	require.NoError(t, json.Unmarshal(decoded["rentPayments"], &payments))
	assert.Len(t, payments, 2)
}

func TestAccountExportContentDisposition(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/propertyowner-accounts/export", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="account-report.json"`, resp.Header.Get(fiber.HeaderContentDisposition))
}

func TestAddPropertyRequiresImage(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "POST", "/propertyowner-properties", `{
		"name": "Harbor Point",
		"address": "9 Pier Lane",
		"floors": "2"
	}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	var body struct {
		Fields []string `json:"fields"`
		Type   string   `json:"type"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "validation", body.Type)
	assert.Equal(t, []string{"image"}, body.Fields)

	// nothing was added
	status, raw = doJSON(t, app, "GET", "/propertyowner-properties", "")
	require.Equal(t, fiber.StatusOK, status)
	var rows []models.Property
	require.NoError(t, json.Unmarshal(raw, &rows))
	assert.Len(t, rows, 4)
}

func TestEditPropertyChangesOneRecord(t *testing.T) {
	app := testApp(t)

	status, _ := doJSON(t, app, "PUT", "/propertyowner-properties/2", `{
		"name": "Green Valley Renewed",
		"address": "456 Oak Avenue, Westside",
		"floors": "9"
	}`)
	require.Equal(t, fiber.StatusOK, status)

	status, raw := doJSON(t, app, "GET", "/propertyowner-properties", "")
	require.Equal(t, fiber.StatusOK, status)

	var rows []models.Property
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 4)
	renamed := 0
	for _, p := range rows {
		if p.Name == "Green Valley Renewed" {
			renamed++
			assert.Equal(t, 2, p.ID)
		}
	}
	assert.Equal(t, 1, renamed)
}

func TestEditPropertyUnknownID(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "PUT", "/propertyowner-properties/42", `{
		"name": "x", "address": "y", "floors": 1
	}`)
	require.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, string(raw), "Property '42' not found")
}

func TestPropertyDetailFloorQuery(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "GET", "/propertyowner-properties/1?floor=2", "")
	require.Equal(t, fiber.StatusOK, status)

	var detail services.PropertyDetail
	require.NoError(t, json.Unmarshal(raw, &detail))
	require.Len(t, detail.Units, 4)
	assert.Equal(t, 90, detail.OccupancyRate)
}

func TestRentTrackerTabQuery(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "GET", "/propertyowner-rent?tab=Overdue", "")
	require.Equal(t, fiber.StatusOK, status)

	var view services.RentTrackerView
	require.NoError(t, json.Unmarshal(raw, &view))
	require.Len(t, view.Payments, 1)
	assert.Equal(t, "Mike Brown", view.Payments[0].Tenant)
	assert.Equal(t, 3, view.Paid)
}

func TestLeaseSearchQuery(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "GET", "/propertyowner-lease?q=emma", "")
	require.Equal(t, fiber.StatusOK, status)

	var view services.LeaseList
	require.NoError(t, json.Unmarshal(raw, &view))
	require.Len(t, view.Leases, 1)
	assert.Equal(t, "Emma Davis", view.Leases[0].Tenant)
	// counts reflect the whole collection, not the match
	assert.Equal(t, 2, view.Active)
	assert.Equal(t, 2, view.Expiring)
}

func TestTenantMaintenanceSubmit(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "POST", "/tenant-maintenance", `{
		"title": "Dripping Shower",
		"description": "Shower head drips after closing",
		"category": "Plumbing",
		"preferredDate": "2024-12-05"
	}`)
	require.Equal(t, fiber.StatusCreated, status)

	var created models.MaintenanceRequest
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "4", created.ID)
	assert.Equal(t, models.RequestPending, created.Status)
	assert.Equal(t, "Pending Assignment", created.AssignedTo)
	assert.Contains(t, created.Notes, "2024-12-05")

	// the new request leads the tenant dashboard
	status, raw = doJSON(t, app, "GET", "/tenant-dashboard", "")
	require.Equal(t, fiber.StatusOK, status)
	var dash models.TenantDashboard
	require.NoError(t, json.Unmarshal(raw, &dash))
	require.NotNil(t, dash.LatestRequest)
	assert.Equal(t, "Dripping Shower", dash.LatestRequest.Title)
}

func TestMovePhotoUpload(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "POST", "/tenant-moveinout?phase=move-out", `{
		"category": "Balcony",
		"photos": "data:image/jpeg;base64,AAA="
	}`)
	require.Equal(t, fiber.StatusCreated, status)

	var photos []models.MovePhoto
	require.NoError(t, json.Unmarshal(raw, &photos))
	require.Len(t, photos, 1)
	assert.Equal(t, models.PhaseMoveOut, photos[0].Phase)

	status, raw = doJSON(t, app, "GET", "/tenant-moveinout?phase=move-out", "")
	require.Equal(t, fiber.StatusOK, status)
	var view services.PhotoSetView
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Equal(t, 1, view.DocumentedAreas)
	assert.Equal(t, 13, view.Progress)
}

func TestProfileRoundTrip(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "PUT", "/tenant-profile", `{
		"name": "Sarah Johnson-Lee",
		"email": "sarah.jl@email.com",
		"phone": "+1 (555) 123-4567"
	}`)
	require.Equal(t, fiber.StatusOK, status)

	var updated models.TenantProfile
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "Sarah Johnson-Lee", updated.Name)
	assert.Equal(t, "TEN-2024-0304", updated.TenantID)

	status, raw = doJSON(t, app, "GET", "/tenant-profile", "")
	require.Equal(t, fiber.StatusOK, status)
	var fetched models.TenantProfile
	require.NoError(t, json.Unmarshal(raw, &fetched))
	assert.Equal(t, "Sarah Johnson-Lee", fetched.Name)
}

func TestNavForRoleHeader(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("GET", "/nav?path=/tenant-rent", nil)
	req.Header.Set("X-User-Role", "tenant")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var shell struct {
		Role string `json:"role"`
		Menu []struct {
			Label  string `json:"label"`
			Active bool   `json:"active"`
		} `json:"menu"`
		LogoutRedirect string `json:"logoutRedirect"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&shell))
	assert.Equal(t, "tenant", shell.Role)
	require.Len(t, shell.Menu, 7)
	assert.Equal(t, "/login", shell.LogoutRedirect)

	active := 0
	for _, e := range shell.Menu {
		if e.Active {
			active++
			assert.Equal(t, "Rent Status", e.Label)
		}
	}
	assert.Equal(t, 1, active)
}

func TestNavDefaultsToOwner(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "GET", "/nav?path=/propertyowner-dashboard", "")
	require.Equal(t, fiber.StatusOK, status)

	var shell struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(raw, &shell))
	assert.Equal(t, "property-owner", shell.Role)
}

func TestLogout(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "POST", "/logout", "")
	require.Equal(t, fiber.StatusOK, status)

	var body struct {
		OK       bool   `json:"ok"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.True(t, body.OK)
	assert.Equal(t, "/login", body.Redirect)
}

func TestHealthz(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "GET", "/healthz", "")
	require.Equal(t, fiber.StatusOK, status)

	var result services.HealthCheckResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, 4, result.Counts["properties"])
}

func TestVersionHeaderEchoed(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "1.0.0", resp.Header.Get("X-Api-Version"))

	// alias resolves to the full version
	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("X-Api-Version", "1.0")
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "1.0.0", resp.Header.Get("X-Api-Version"))
}

func TestErrorHandlerRendersCustomError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return &types.CustomError{
			Code:    fiber.StatusInternalServerError,
			Message: "store unavailable",
			Type:    "getProperties",
		}
	})

	status, raw := doJSON(t, app, "GET", "/boom", "")
	require.Equal(t, fiber.StatusInternalServerError, status)

	var body struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
		OK      bool   `json:"ok"`
		Type    string `json:"type"`
		URL     string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, fiber.StatusInternalServerError, body.Status)
	assert.Equal(t, "store unavailable", body.Message)
	assert.Equal(t, "getProperties", body.Type)
	assert.False(t, body.OK)
	assert.Equal(t, "/boom", body.URL)
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	app := testApp(t)

	status, raw := doJSON(t, app, "GET", "/no-such-page", "")
	require.Equal(t, fiber.StatusNotFound, status)

	var body struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
		OK      bool   `json:"ok"`
		URL     string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, fiber.StatusNotFound, body.Status)
	assert.Equal(t, "[404] Resource Not Found", body.Message)
	assert.False(t, body.OK)
	assert.Equal(t, "/no-such-page", body.URL)
}
