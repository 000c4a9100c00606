package repository

import (
	"context"
	"testing"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDocumentRepo_TenantIsolation(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	companyA := seedTenant(t, db, "acme")
	companyB := seedTenant(t, db, "globex")
	asset := seedAsset(t, db, companyA, "A-001")

	doc := &model.Document{
		AssetID:      asset.ID,
		FileName:     "invoice.pdf",
		ContentType:  "application/pdf",
		SizeBytes:    1024,
		StoragePath:  "a/b/invoice.pdf",
		UploadedByID: companyA.Profile.ID,
	}
	require.NoError(t, repo.Create(ctx, doc))

	found, err := repo.FindByID(ctx, companyA.Company.ID, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "invoice.pdf", found.FileName)

	_, err = repo.FindByID(ctx, companyB.Company.ID, doc.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	docs, err := repo.ListByAsset(ctx, companyB.Company.ID, asset.ID)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentRepo_DeleteScoped(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	companyA := seedTenant(t, db, "acme")
	companyB := seedTenant(t, db, "globex")
	asset := seedAsset(t, db, companyA, "A-001")

	doc := &model.Document{
		AssetID:      asset.ID,
		FileName:     "photo.jpg",
		ContentType:  "image/jpeg",
		SizeBytes:    2048,
		StoragePath:  "a/b/photo.jpg",
		UploadedByID: companyA.Profile.ID,
	}
	require.NoError(t, repo.Create(ctx, doc))

	// Cross-tenant delete silently removes nothing.
	require.NoError(t, repo.Delete(ctx, companyB.Company.ID, doc.ID))
	_, err := repo.FindByID(ctx, companyA.Company.ID, doc.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, companyA.Company.ID, doc.ID))
	_, err = repo.FindByID(ctx, companyA.Company.ID, doc.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
