package repository

import (
	"context"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetRepository defines the data access contract for assets, disposals and
// audit entries. Every read is tenant-scoped through the owning department.
type AssetRepository interface {
	Create(ctx context.Context, a *model.Asset) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Asset, error)
	FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*model.Asset, error)
	List(ctx context.Context, companyID uuid.UUID, filter dto.AssetFilter) ([]model.Asset, int64, error)
	ListAll(ctx context.Context, companyID uuid.UUID) ([]model.Asset, error)
	Update(ctx context.Context, a *model.Asset) error

	// DisposeTx writes the disposal record and flips the asset status inside
	// one transaction; after commit the asset is terminal.
	DisposeTx(ctx context.Context, a *model.Asset, d *model.AssetDisposal, entry *model.AssetAuditLog) error
	FindDisposal(ctx context.Context, companyID, assetID uuid.UUID) (*model.AssetDisposal, error)

	AppendAudit(ctx context.Context, entry *model.AssetAuditLog) error
	ListAudit(ctx context.Context, companyID, assetID uuid.UUID) ([]model.AssetAuditLog, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type assetRepo struct{ db *gorm.DB }

func NewAssetRepository(db *gorm.DB) AssetRepository { return &assetRepo{db: db} }

func (r *assetRepo) Create(ctx context.Context, a *model.Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assetRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Asset, error) {
	var a model.Asset
	err := scopeAssets(r.db.WithContext(ctx).Model(&model.Asset{}), companyID).
		Where("assets.id = ?", id).First(&a).Error
	return &a, err
}

func (r *assetRepo) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*model.Asset, error) {
	var a model.Asset
	err := scopeAssets(r.db.WithContext(ctx).Model(&model.Asset{}), companyID).
		Where("assets.code = ?", code).First(&a).Error
	return &a, err
}

func (r *assetRepo) List(ctx context.Context, companyID uuid.UUID, filter dto.AssetFilter) ([]model.Asset, int64, error) {
	var assets []model.Asset
	var total int64

	q := scopeAssets(r.db.WithContext(ctx).Model(&model.Asset{}), companyID)

	if filter.Status != "" {
		q = q.Where("assets.status = ?", filter.Status)
	}
	if filter.CategoryID != "" {
		q = q.Where("assets.category_id = ?", filter.CategoryID)
	}
	if filter.DepartmentID != "" {
		q = q.Where("assets.department_id = ?", filter.DepartmentID)
	}
	if filter.UnitID != "" {
		q = q.Where("assets.unit_id = ?", filter.UnitID)
	}
	if filter.Name != "" {
		q = q.Where("LOWER(assets.name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("assets.name ASC").Limit(filter.Limit).Offset(offset).Find(&assets).Error
	return assets, total, err
}

func (r *assetRepo) ListAll(ctx context.Context, companyID uuid.UUID) ([]model.Asset, error) {
	var assets []model.Asset
	err := scopeAssets(r.db.WithContext(ctx).Model(&model.Asset{}), companyID).
		Preload("Category").
		Where("assets.status <> ?", model.AssetStatusDisposed).
		Order("assets.name ASC").Find(&assets).Error
	return assets, err
}

func (r *assetRepo) Update(ctx context.Context, a *model.Asset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *assetRepo) DisposeTx(ctx context.Context, a *model.Asset, d *model.AssetDisposal, entry *model.AssetAuditLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Asset{}).Where("id = ?", a.ID).
			Update("status", model.AssetStatusDisposed).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}

func (r *assetRepo) FindDisposal(ctx context.Context, companyID, assetID uuid.UUID) (*model.AssetDisposal, error) {
	var d model.AssetDisposal
	err := r.db.WithContext(ctx).Model(&model.AssetDisposal{}).
		Joins("JOIN assets ON assets.id = asset_disposals.asset_id").
		Joins("JOIN departments ON departments.id = assets.department_id").
		Where("departments.company_id = ? AND asset_disposals.asset_id = ?", companyID, assetID).
		First(&d).Error
	return &d, err
}

func (r *assetRepo) AppendAudit(ctx context.Context, entry *model.AssetAuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *assetRepo) ListAudit(ctx context.Context, companyID, assetID uuid.UUID) ([]model.AssetAuditLog, error) {
	var entries []model.AssetAuditLog
	err := r.db.WithContext(ctx).Model(&model.AssetAuditLog{}).
		Joins("JOIN assets ON assets.id = asset_audit_logs.asset_id").
		Joins("JOIN departments ON departments.id = assets.department_id").
		Where("departments.company_id = ? AND asset_audit_logs.asset_id = ?", companyID, assetID).
		Order("asset_audit_logs.created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *assetRepo) DB() *gorm.DB { return r.db }
