package store

import (
	"testing"

	"github.com/farhanbasheerfarhan399-cyber/pms/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.MaintenanceRequest{}))
	return db
}

func TestGormSeedAndListOrder(t *testing.T) {
	s := NewGorm[models.Tenant](testDB(t))
	require.NoError(t, s.Seed(seedTenants()))

	rows, err := s.List()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "John Smith", rows[0].Name)
	assert.Equal(t, "Sarah Johnson", rows[1].Name)
	assert.Equal(t, "Mike Brown", rows[2].Name)
}

func TestGormAddListsFirst(t *testing.T) {
	s := NewGorm[models.Tenant](testDB(t))
	require.NoError(t, s.Seed(seedTenants()))
	require.NoError(t, s.Add(models.Tenant{ID: "4", Name: "Ana Lee", Initials: "AL"}))

	rows, err := s.List()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Ana Lee", rows[0].Name)
	assert.Equal(t, "John Smith", rows[1].Name)
}

func TestGormUpdateAndDelete(t *testing.T) {
	s := NewGorm[models.Tenant](testDB(t))
	require.NoError(t, s.Seed(seedTenants()))

	require.NoError(t, s.Update(models.Tenant{ID: "2", Name: "Sarah Johnson", RentStatus: models.RentOverdue}))
	got, err := s.FindByID("2")
	require.NoError(t, err)
	assert.Equal(t, models.RentOverdue, got.RentStatus)

	assert.ErrorIs(t, s.Update(models.Tenant{ID: "99"}), ErrNotFound)

	require.NoError(t, s.Delete("3"))
	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, s.Delete("3"), ErrNotFound)
}

func TestGormScopeSplitsBoards(t *testing.T) {
	db := testDB(t)
	owner := NewGorm[models.MaintenanceRequest](db, WithScope[models.MaintenanceRequest]("board", models.BoardOwner))
	tenant := NewGorm[models.MaintenanceRequest](db, WithScope[models.MaintenanceRequest]("board", models.BoardTenant))

	require.NoError(t, owner.Seed([]models.MaintenanceRequest{
		{ID: "1", Board: models.BoardOwner, Title: "Leaking Faucet"},
		{ID: "2", Board: models.BoardOwner, Title: "Broken AC Unit"},
	}))
	require.NoError(t, tenant.Seed([]models.MaintenanceRequest{
		{ID: "1", Board: models.BoardTenant, Title: "Kitchen Sink Leak"},
	}))

	ownerRows, err := owner.List()
	require.NoError(t, err)
	assert.Len(t, ownerRows, 2)

	tenantRows, err := tenant.List()
	require.NoError(t, err)
	require.Len(t, tenantRows, 1)
	assert.Equal(t, "Kitchen Sink Leak", tenantRows[0].Title)

	// ids repeat across boards without clashing
	got, err := owner.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Leaking Faucet", got.Title)
}

func TestGormKeyColumnOverride(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.AutoMigrate(&models.Stat{}))
	s := NewGorm[models.Stat](db, WithKeyColumn[models.Stat]("label"))
	require.NoError(t, s.Seed([]models.Stat{
		{Label: "Total Rent Collected", Value: "$45,680"},
	}))

	got, err := s.FindByID("Total Rent Collected")
	require.NoError(t, err)
	assert.Equal(t, "$45,680", got.Value)
}
