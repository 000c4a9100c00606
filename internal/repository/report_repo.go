package repository

import (
	"context"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Aggregation rows backing the canned report queries. The report generator
// never executes LLM-drafted SQL; one of these three queries runs instead.

type AssetsByCategoryRow struct {
	Category      string          `json:"category"`
	AssetCount    int64           `json:"asset_count"`
	PurchaseTotal decimal.Decimal `json:"purchase_total"`
}

type MaintenanceCostRow struct {
	Month     string          `json:"month"` // YYYY-MM
	Count     int64           `json:"count"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

type StatusCountRow struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ReportRepository persists saved reports (self-owned rows) and serves the
// canned aggregations, all tenant-scoped.
type ReportRepository interface {
	Save(ctx context.Context, r *model.SavedReport) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*model.SavedReport, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.SavedReport, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	AssetsByCategory(ctx context.Context, companyID uuid.UUID) ([]AssetsByCategoryRow, error)
	MaintenanceCostByMonth(ctx context.Context, companyID uuid.UUID) ([]MaintenanceCostRow, error)
	AssetStatusCounts(ctx context.Context, companyID uuid.UUID) ([]StatusCountRow, error)
	CountOpenMaintenances(ctx context.Context, companyID uuid.UUID) (int64, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) Save(ctx context.Context, rep *model.SavedReport) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *reportRepo) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*model.SavedReport, error) {
	var rep model.SavedReport
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).First(&rep).Error
	return &rep, err
}

func (r *reportRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.SavedReport, error) {
	var reps []model.SavedReport
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&reps).Error
	return reps, err
}

func (r *reportRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.SavedReport{}).Error
}

func (r *reportRepo) AssetsByCategory(ctx context.Context, companyID uuid.UUID) ([]AssetsByCategoryRow, error) {
	var rows []AssetsByCategoryRow
	err := scopeAssets(r.db.WithContext(ctx).Model(&model.Asset{}), companyID).
		Select("categories.name AS category, COUNT(assets.id) AS asset_count, COALESCE(SUM(assets.purchase_value), 0) AS purchase_total").
		Joins("JOIN categories ON categories.id = assets.category_id").
		Where("assets.status <> ?", model.AssetStatusDisposed).
		Group("categories.name").
		Order("purchase_total DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) MaintenanceCostByMonth(ctx context.Context, companyID uuid.UUID) ([]MaintenanceCostRow, error) {
	var rows []MaintenanceCostRow
	err := scopeMaintenances(r.db.WithContext(ctx).Model(&model.AssetMaintenance{}), companyID).
		Select("to_char(asset_maintenances.scheduled_date, 'YYYY-MM') AS month, COUNT(*) AS count, COALESCE(SUM(asset_maintenances.cost), 0) AS total_cost").
		Group("month").
		Order("month DESC").
		Limit(12).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) AssetStatusCounts(ctx context.Context, companyID uuid.UUID) ([]StatusCountRow, error) {
	var rows []StatusCountRow
	err := scopeAssets(r.db.WithContext(ctx).Model(&model.Asset{}), companyID).
		Select("assets.status AS status, COUNT(assets.id) AS count").
		Group("assets.status").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) CountOpenMaintenances(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var n int64
	err := scopeMaintenances(r.db.WithContext(ctx).Model(&model.AssetMaintenance{}), companyID).
		Where("asset_maintenances.status IN ?", []string{
			model.MaintenanceStatusScheduled, model.MaintenanceStatusInProgress,
		}).Count(&n).Error
	return n, err
}
