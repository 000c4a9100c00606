package repository

import (
	"context"
	"testing"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMaintenanceRepo_TenantIsolation(t *testing.T) {
	db := newTestDB(t)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	companyA := seedTenant(t, db, "acme")
	companyB := seedTenant(t, db, "globex")
	assetA := seedAsset(t, db, companyA, "A-001")
	m := seedMaintenance(t, db, assetA, companyA.Profile.ID, model.MaintenanceStatusScheduled, time.Now())

	_, err := repo.FindByID(ctx, companyB.Company.ID, m.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	items, total, err := repo.List(ctx, companyA.Company.ID, dto.MaintenanceFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, m.ID, items[0].ID)

	_, total, err = repo.List(ctx, companyB.Company.ID, dto.MaintenanceFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestMaintenanceRepo_ListDueBefore(t *testing.T) {
	db := newTestDB(t)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	tn := seedTenant(t, db, "acme")
	asset := seedAsset(t, db, tn, "A-001")
	now := time.Now()

	due := seedMaintenance(t, db, asset, tn.Profile.ID, model.MaintenanceStatusScheduled, now.AddDate(0, 0, 2))
	seedMaintenance(t, db, asset, tn.Profile.ID, model.MaintenanceStatusScheduled, now.AddDate(0, 0, 30))
	seedMaintenance(t, db, asset, tn.Profile.ID, model.MaintenanceStatusCompleted, now.AddDate(0, 0, 1))

	items, err := repo.ListDueBefore(ctx, now.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, due.ID, items[0].ID)

	// The cron needs the tenant key preloaded to fan notifications out.
	require.NotNil(t, items[0].Asset)
	require.NotNil(t, items[0].Asset.Department)
	assert.Equal(t, tn.Company.ID, items[0].Asset.Department.CompanyID)
}

func TestMaintenanceRepo_ConsumePartTx(t *testing.T) {
	db := newTestDB(t)
	repo := NewMaintenanceRepository(db)
	ctx := context.Background()

	tn := seedTenant(t, db, "acme")
	asset := seedAsset(t, db, tn, "A-001")
	m := seedMaintenance(t, db, asset, tn.Profile.ID, model.MaintenanceStatusInProgress, time.Now())

	part := model.SparePart{
		CompanyID: tn.Company.ID,
		Code:      "PRT-01",
		Name:      "Filter",
		UnitCost:  decimal.NewFromInt(25),
		Stock:     3,
		MinStock:  1,
		Active:    true,
	}
	require.NoError(t, db.Create(&part).Error)

	err := repo.ConsumePartTx(ctx, &model.MaintenancePart{
		MaintenanceID: m.ID,
		SparePartID:   part.ID,
		Quantity:      2,
		UnitCost:      part.UnitCost,
	})
	require.NoError(t, err)

	var reloaded model.SparePart
	require.NoError(t, db.First(&reloaded, "id = ?", part.ID).Error)
	assert.Equal(t, 1, reloaded.Stock)

	parts, err := repo.ListParts(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, 2, parts[0].Quantity)

	// Consuming more than the remaining stock rolls back: no row, no decrement.
	err = repo.ConsumePartTx(ctx, &model.MaintenancePart{
		MaintenanceID: m.ID,
		SparePartID:   part.ID,
		Quantity:      5,
		UnitCost:      part.UnitCost,
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	require.NoError(t, db.First(&reloaded, "id = ?", part.ID).Error)
	assert.Equal(t, 1, reloaded.Stock)

	parts, err = repo.ListParts(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}
