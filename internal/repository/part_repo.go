package repository

import (
	"context"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SparePartRepository interface {
	Create(ctx context.Context, p *model.SparePart) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.SparePart, error)
	List(ctx context.Context, companyID uuid.UUID) ([]model.SparePart, error)
	Update(ctx context.Context, p *model.SparePart) error
	SoftDelete(ctx context.Context, companyID, id uuid.UUID) error
	AdjustStock(ctx context.Context, companyID, id uuid.UUID, delta int) error
	CountLowStock(ctx context.Context, companyID uuid.UUID) (int64, error)

	// ListLowStockAll crosses tenants; it feeds the notification cron, which
	// fans out per company.
	ListLowStockAll(ctx context.Context) ([]model.SparePart, error)

	LinkAsset(ctx context.Context, link *model.AssetPart) error
	ListByAsset(ctx context.Context, companyID, assetID uuid.UUID) ([]model.AssetPart, error)
}

type sparePartRepo struct{ db *gorm.DB }

func NewSparePartRepository(db *gorm.DB) SparePartRepository { return &sparePartRepo{db: db} }

func (r *sparePartRepo) Create(ctx context.Context, p *model.SparePart) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *sparePartRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.SparePart, error) {
	var p model.SparePart
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).First(&p).Error
	return &p, err
}

func (r *sparePartRepo) List(ctx context.Context, companyID uuid.UUID) ([]model.SparePart, error) {
	var parts []model.SparePart
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND active = true", companyID).
		Order("name ASC").Find(&parts).Error
	return parts, err
}

func (r *sparePartRepo) Update(ctx context.Context, p *model.SparePart) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *sparePartRepo) SoftDelete(ctx context.Context, companyID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.SparePart{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("active", false).Error
}

func (r *sparePartRepo) AdjustStock(ctx context.Context, companyID, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.SparePart{}).
		Where("id = ? AND company_id = ? AND active = true", id, companyID).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *sparePartRepo) CountLowStock(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.SparePart{}).
		Where("company_id = ? AND active = true AND stock <= min_stock", companyID).
		Count(&n).Error
	return n, err
}

func (r *sparePartRepo) ListLowStockAll(ctx context.Context) ([]model.SparePart, error) {
	var parts []model.SparePart
	err := r.db.WithContext(ctx).
		Where("active = true AND stock <= min_stock").
		Find(&parts).Error
	return parts, err
}

func (r *sparePartRepo) LinkAsset(ctx context.Context, link *model.AssetPart) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *sparePartRepo) ListByAsset(ctx context.Context, companyID, assetID uuid.UUID) ([]model.AssetPart, error) {
	var links []model.AssetPart
	err := r.db.WithContext(ctx).Model(&model.AssetPart{}).
		Joins("JOIN assets ON assets.id = asset_parts.asset_id").
		Joins("JOIN departments ON departments.id = assets.department_id").
		Where("departments.company_id = ? AND asset_parts.asset_id = ?", companyID, assetID).
		Preload("SparePart").
		Find(&links).Error
	return links, err
}
