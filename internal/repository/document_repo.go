package repository

import (
	"context"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *model.Document) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Document, error)
	ListByAsset(ctx context.Context, companyID, assetID uuid.UUID) ([]model.Document, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) DocumentRepository { return &documentRepo{db: db} }

func (r *documentRepo) Create(ctx context.Context, d *model.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *documentRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Document, error) {
	var d model.Document
	err := scopeDocuments(r.db.WithContext(ctx).Model(&model.Document{}), companyID).
		Where("documents.id = ?", id).First(&d).Error
	return &d, err
}

func (r *documentRepo) ListByAsset(ctx context.Context, companyID, assetID uuid.UUID) ([]model.Document, error) {
	var docs []model.Document
	err := scopeDocuments(r.db.WithContext(ctx).Model(&model.Document{}), companyID).
		Where("documents.asset_id = ?", assetID).
		Order("documents.created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepo) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	// Scoped subquery: delete only documents reachable through the tenant.
	return r.db.WithContext(ctx).
		Where("id = ? AND asset_id IN (?)", id,
			r.db.Model(&model.Asset{}).Select("assets.id").
				Joins("JOIN departments ON departments.id = assets.department_id").
				Where("departments.company_id = ?", companyID)).
		Delete(&model.Document{}).Error
}
