package repository

import (
	"context"
	"testing"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPart(t *testing.T, db *gorm.DB, tn tenant, code string, stock, minStock int) model.SparePart {
	t.Helper()
	part := model.SparePart{
		CompanyID: tn.Company.ID,
		Code:      code,
		Name:      "Part " + code,
		UnitCost:  decimal.NewFromInt(10),
		Stock:     stock,
		MinStock:  minStock,
		Active:    true,
	}
	require.NoError(t, db.Create(&part).Error)
	return part
}

func TestPartRepo_TenantIsolation(t *testing.T) {
	db := newTestDB(t)
	repo := NewSparePartRepository(db)
	ctx := context.Background()

	companyA := seedTenant(t, db, "acme")
	companyB := seedTenant(t, db, "globex")
	part := seedPart(t, db, companyA, "PRT-01", 10, 2)

	_, err := repo.FindByID(ctx, companyB.Company.ID, part.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	parts, err := repo.List(ctx, companyA.Company.ID)
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}

func TestPartRepo_AdjustStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewSparePartRepository(db)
	ctx := context.Background()

	tn := seedTenant(t, db, "acme")
	part := seedPart(t, db, tn, "PRT-01", 5, 2)

	require.NoError(t, repo.AdjustStock(ctx, tn.Company.ID, part.ID, -3))
	require.NoError(t, repo.AdjustStock(ctx, tn.Company.ID, part.ID, 10))

	reloaded, err := repo.FindByID(ctx, tn.Company.ID, part.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, reloaded.Stock)
}

func TestPartRepo_SoftDeleteHidesFromList(t *testing.T) {
	db := newTestDB(t)
	repo := NewSparePartRepository(db)
	ctx := context.Background()

	tn := seedTenant(t, db, "acme")
	part := seedPart(t, db, tn, "PRT-01", 5, 2)

	require.NoError(t, repo.SoftDelete(ctx, tn.Company.ID, part.ID))

	parts, err := repo.List(ctx, tn.Company.ID)
	require.NoError(t, err)
	assert.Empty(t, parts)

	// The row still exists and remains addressable by ID.
	reloaded, err := repo.FindByID(ctx, tn.Company.ID, part.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Active)
}

func TestPartRepo_LowStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewSparePartRepository(db)
	ctx := context.Background()

	companyA := seedTenant(t, db, "acme")
	companyB := seedTenant(t, db, "globex")
	seedPart(t, db, companyA, "PRT-01", 1, 2) // low
	seedPart(t, db, companyA, "PRT-02", 9, 2)
	seedPart(t, db, companyB, "PRT-03", 0, 1) // low, other tenant

	n, err := repo.CountLowStock(ctx, companyA.Company.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	all, err := repo.ListLowStockAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPartRepo_LinkAsset(t *testing.T) {
	db := newTestDB(t)
	repo := NewSparePartRepository(db)
	ctx := context.Background()

	tn := seedTenant(t, db, "acme")
	asset := seedAsset(t, db, tn, "A-001")
	part := seedPart(t, db, tn, "PRT-01", 5, 2)

	require.NoError(t, repo.LinkAsset(ctx, &model.AssetPart{AssetID: asset.ID, SparePartID: part.ID}))

	links, err := repo.ListByAsset(ctx, tn.Company.ID, asset.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.NotNil(t, links[0].SparePart)
	assert.Equal(t, "PRT-01", links[0].SparePart.Code)

	// Other tenants see nothing through the same asset ID.
	other := seedTenant(t, db, "globex")
	links, err = repo.ListByAsset(ctx, other.Company.ID, asset.ID)
	require.NoError(t, err)
	assert.Empty(t, links)
}
