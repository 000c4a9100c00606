package repository

import (
	"context"
	"testing"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReportRepo_SavedReportsOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	rep := &model.SavedReport{
		OwnerID:   owner,
		Prompt:    "assets per category",
		QueryKind: "assets_by_category",
		Title:     "Assets by Category",
		Insights:  "most value sits in machinery",
	}
	require.NoError(t, repo.Save(ctx, rep))

	_, err := repo.FindByID(ctx, uuid.New(), rep.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	found, err := repo.FindByID(ctx, owner, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, "Assets by Category", found.Title)

	// Deleting under the wrong owner leaves the row in place.
	require.NoError(t, repo.Delete(ctx, uuid.New(), rep.ID))
	reps, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, reps, 1)

	require.NoError(t, repo.Delete(ctx, owner, rep.ID))
	reps, err = repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, reps)
}

func TestReportRepo_AssetAggregations(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	tn := seedTenant(t, db, "acme")
	other := seedTenant(t, db, "globex")
	seedAsset(t, db, tn, "A-001")
	seedAsset(t, db, tn, "A-002")
	disposed := seedAsset(t, db, tn, "A-003")
	require.NoError(t, db.Model(&disposed).Update("status", model.AssetStatusDisposed).Error)
	seedAsset(t, db, other, "B-001")

	rows, err := repo.AssetsByCategory(ctx, tn.Company.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Equipment", rows[0].Category)
	assert.Equal(t, int64(2), rows[0].AssetCount)

	counts, err := repo.AssetStatusCounts(ctx, tn.Company.ID)
	require.NoError(t, err)
	byStatus := make(map[string]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}
	assert.Equal(t, int64(2), byStatus[model.AssetStatusActive])
	assert.Equal(t, int64(1), byStatus[model.AssetStatusDisposed])
}

func TestReportRepo_CountOpenMaintenances(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	tn := seedTenant(t, db, "acme")
	asset := seedAsset(t, db, tn, "A-001")
	now := time.Now()

	seedMaintenance(t, db, asset, tn.Profile.ID, model.MaintenanceStatusScheduled, now)
	seedMaintenance(t, db, asset, tn.Profile.ID, model.MaintenanceStatusInProgress, now)
	seedMaintenance(t, db, asset, tn.Profile.ID, model.MaintenanceStatusCompleted, now)

	n, err := repo.CountOpenMaintenances(ctx, tn.Company.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
