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

func TestAssetRepo_TenantIsolation(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	companyA := seedTenant(t, db, "acme")
	companyB := seedTenant(t, db, "globex")
	assetA := seedAsset(t, db, companyA, "A-001")
	seedAsset(t, db, companyB, "B-001")

	// List only returns the caller's rows.
	assets, total, err := repo.List(ctx, companyA.Company.ID, dto.AssetFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, assets, 1)
	assert.Equal(t, "A-001", assets[0].Code)

	// Reaching into another tenant by ID fails.
	_, err = repo.FindByID(ctx, companyB.Company.ID, assetA.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Same for code lookups.
	_, err = repo.FindByCode(ctx, companyB.Company.ID, "A-001")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	found, err := repo.FindByCode(ctx, companyA.Company.ID, "A-001")
	require.NoError(t, err)
	assert.Equal(t, assetA.ID, found.ID)
}

func TestAssetRepo_ListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	tn := seedTenant(t, db, "acme")
	seedAsset(t, db, tn, "A-001")
	broken := seedAsset(t, db, tn, "A-002")
	require.NoError(t, db.Model(&broken).Update("status", model.AssetStatusMaintenance).Error)

	assets, total, err := repo.List(ctx, tn.Company.ID, dto.AssetFilter{
		Status: model.AssetStatusMaintenance, Page: 1, Limit: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, assets, 1)
	assert.Equal(t, "A-002", assets[0].Code)
}

func TestAssetRepo_ListAllSkipsDisposed(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	tn := seedTenant(t, db, "acme")
	seedAsset(t, db, tn, "A-001")
	gone := seedAsset(t, db, tn, "A-002")
	require.NoError(t, db.Model(&gone).Update("status", model.AssetStatusDisposed).Error)

	assets, err := repo.ListAll(ctx, tn.Company.ID)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "A-001", assets[0].Code)
	require.NotNil(t, assets[0].Category)
	assert.Equal(t, "Equipment", assets[0].Category.Name)
}

func TestAssetRepo_DisposeTx(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssetRepository(db)
	ctx := context.Background()

	tn := seedTenant(t, db, "acme")
	asset := seedAsset(t, db, tn, "A-001")

	disposal := &model.AssetDisposal{
		AssetID:       asset.ID,
		Method:        model.DisposalMethodSale,
		DisposalDate:  time.Now(),
		DisposalValue: decimal.NewFromInt(150),
		BookValueAt:   decimal.NewFromInt(820),
		CreatedByID:   tn.Profile.ID,
	}
	entry := &model.AssetAuditLog{
		AssetID: asset.ID,
		ActorID: tn.Profile.ID,
		Action:  model.AuditActionDispose,
	}
	require.NoError(t, repo.DisposeTx(ctx, &asset, disposal, entry))

	reloaded, err := repo.FindByID(ctx, tn.Company.ID, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AssetStatusDisposed, reloaded.Status)

	saved, err := repo.FindDisposal(ctx, tn.Company.ID, asset.ID)
	require.NoError(t, err)
	assert.True(t, saved.BookValueAt.Equal(decimal.NewFromInt(820)))

	// The disposal row is invisible to other tenants.
	other := seedTenant(t, db, "globex")
	_, err = repo.FindDisposal(ctx, other.Company.ID, asset.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	entries, err := repo.ListAudit(ctx, tn.Company.ID, asset.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.AuditActionDispose, entries[0].Action)
}
