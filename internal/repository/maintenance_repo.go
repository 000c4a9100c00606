package repository

import (
	"context"
	"errors"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when consuming more parts than available.
var ErrInsufficientStock = errors.New("insufficient spare part stock")

type MaintenanceRepository interface {
	Create(ctx context.Context, m *model.AssetMaintenance) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.AssetMaintenance, error)
	List(ctx context.Context, companyID uuid.UUID, filter dto.MaintenanceFilter) ([]model.AssetMaintenance, int64, error)
	ListDueBefore(ctx context.Context, cutoff time.Time) ([]model.AssetMaintenance, error)
	Update(ctx context.Context, m *model.AssetMaintenance) error

	// ConsumePartTx decrements spare part stock and records the consumption
	// atomically; fails with ErrInsufficientStock if the part would go negative.
	ConsumePartTx(ctx context.Context, mp *model.MaintenancePart) error
	ListParts(ctx context.Context, maintenanceID uuid.UUID) ([]model.MaintenancePart, error)
}

type maintenanceRepo struct{ db *gorm.DB }

func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository { return &maintenanceRepo{db: db} }

func (r *maintenanceRepo) Create(ctx context.Context, m *model.AssetMaintenance) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *maintenanceRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.AssetMaintenance, error) {
	var m model.AssetMaintenance
	err := scopeMaintenances(r.db.WithContext(ctx).Model(&model.AssetMaintenance{}), companyID).
		Where("asset_maintenances.id = ?", id).First(&m).Error
	return &m, err
}

func (r *maintenanceRepo) List(ctx context.Context, companyID uuid.UUID, filter dto.MaintenanceFilter) ([]model.AssetMaintenance, int64, error) {
	var items []model.AssetMaintenance
	var total int64

	q := scopeMaintenances(r.db.WithContext(ctx).Model(&model.AssetMaintenance{}), companyID)

	if filter.AssetID != "" {
		q = q.Where("asset_maintenances.asset_id = ?", filter.AssetID)
	}
	if filter.Status != "" {
		q = q.Where("asset_maintenances.status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("asset_maintenances.type = ?", filter.Type)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("asset_maintenances.scheduled_date DESC").
		Limit(filter.Limit).Offset(offset).Find(&items).Error
	return items, total, err
}

// ListDueBefore returns scheduled maintenances due before cutoff, across all
// companies — the notification cron fans results out per tenant itself.
func (r *maintenanceRepo) ListDueBefore(ctx context.Context, cutoff time.Time) ([]model.AssetMaintenance, error) {
	var items []model.AssetMaintenance
	err := r.db.WithContext(ctx).
		Preload("Asset").
		Preload("Asset.Department").
		Where("status = ? AND scheduled_date <= ?", model.MaintenanceStatusScheduled, cutoff).
		Find(&items).Error
	return items, err
}

func (r *maintenanceRepo) Update(ctx context.Context, m *model.AssetMaintenance) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *maintenanceRepo) ConsumePartTx(ctx context.Context, mp *model.MaintenancePart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.SparePart{}).
			Where("id = ? AND stock >= ?", mp.SparePartID, mp.Quantity).
			Update("stock", gorm.Expr("stock - ?", mp.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}
		return tx.Create(mp).Error
	})
}

func (r *maintenanceRepo) ListParts(ctx context.Context, maintenanceID uuid.UUID) ([]model.MaintenancePart, error) {
	var parts []model.MaintenancePart
	err := r.db.WithContext(ctx).
		Where("maintenance_id = ?", maintenanceID).Find(&parts).Error
	return parts, err
}
