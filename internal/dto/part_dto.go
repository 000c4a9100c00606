package dto

import "github.com/shopspring/decimal"

type CreateSparePartRequest struct {
	Code     string           `json:"code"      validate:"required,min=1,max=60"`
	Name     string           `json:"name"      validate:"required,min=2,max=160"`
	UnitCost *decimal.Decimal `json:"unit_cost" validate:"omitempty,min=0"`
	Stock    int              `json:"stock"     validate:"min=0"`
	MinStock int              `json:"min_stock" validate:"min=0"`
}

type UpdateSparePartRequest struct {
	Name     *string          `json:"name"      validate:"omitempty,min=2,max=160"`
	UnitCost *decimal.Decimal `json:"unit_cost" validate:"omitempty,min=0"`
	MinStock *int             `json:"min_stock" validate:"omitempty,min=0"`
}

// AdjustPartStockRequest applies a manual delta (restock or correction).
type AdjustPartStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Reason string `json:"reason" validate:"required,min=2"`
}

// LinkAssetPartRequest declares a spare part compatible with an asset.
type LinkAssetPartRequest struct {
	AssetID     string `json:"asset_id"      validate:"required,uuid"`
	SparePartID string `json:"spare_part_id" validate:"required,uuid"`
}

// ConsumePartRequest records parts used by a maintenance and decrements stock.
type ConsumePartRequest struct {
	SparePartID string `json:"spare_part_id" validate:"required,uuid"`
	Quantity    int    `json:"quantity"      validate:"required,gt=0"`
}

type SparePartResponse struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock"`
	LowStock bool            `json:"low_stock"`
	Active   bool            `json:"active"`
}

type MaintenancePartResponse struct {
	ID            string          `json:"id"`
	MaintenanceID string          `json:"maintenance_id"`
	SparePartID   string          `json:"spare_part_id"`
	Quantity      int             `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
}
