package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateAssetRequest struct {
	Code            string           `json:"code"              validate:"required,min=2,max=60"`
	Name            string           `json:"name"              validate:"required,min=2,max=160"`
	Description     *string          `json:"description"`
	CategoryID      string           `json:"category_id"       validate:"required,uuid"`
	DepartmentID    string           `json:"department_id"     validate:"required,uuid"`
	UnitID          *string          `json:"unit_id"           validate:"omitempty,uuid"`
	AssignedToID    *string          `json:"assigned_to_id"    validate:"omitempty,uuid"`
	PurchaseValue   decimal.Decimal  `json:"purchase_value"    validate:"required,min=0"`
	ResidualValue   *decimal.Decimal `json:"residual_value"    validate:"omitempty,min=0"`
	UsefulLifeYears *int             `json:"useful_life_years" validate:"omitempty,gt=0,lte=100"`
	PurchaseDate    time.Time        `json:"purchase_date"     validate:"required"`
	SerialNumber    *string          `json:"serial_number"`
	RFIDTag         *string          `json:"rfid_tag"`
	Latitude        *float64         `json:"latitude"          validate:"omitempty,latitude"`
	Longitude       *float64         `json:"longitude"         validate:"omitempty,longitude"`
}

type UpdateAssetRequest struct {
	Name         *string  `json:"name"           validate:"omitempty,min=2,max=160"`
	Description  *string  `json:"description"`
	CategoryID   *string  `json:"category_id"    validate:"omitempty,uuid"`
	DepartmentID *string  `json:"department_id"  validate:"omitempty,uuid"`
	UnitID       *string  `json:"unit_id"        validate:"omitempty,uuid"`
	AssignedToID *string  `json:"assigned_to_id" validate:"omitempty,uuid"`
	Status       *string  `json:"status"         validate:"omitempty,oneof=active maintenance inactive"`
	SerialNumber *string  `json:"serial_number"`
	RFIDTag      *string  `json:"rfid_tag"`
	Latitude     *float64 `json:"latitude"       validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude"      validate:"omitempty,longitude"`
}

type DisposeAssetRequest struct {
	Method        string           `json:"method"         validate:"required,oneof=sale donation scrap loss"`
	DisposalDate  time.Time        `json:"disposal_date"  validate:"required"`
	DisposalValue *decimal.Decimal `json:"disposal_value" validate:"omitempty,min=0"`
	Reason        *string          `json:"reason"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type AssetFilter struct {
	Status       string `form:"status"`
	CategoryID   string `form:"category_id"`
	DepartmentID string `form:"department_id"`
	UnitID       string `form:"unit_id"`
	Name         string `form:"name"`
	Page         int    `form:"page,default=1"   validate:"min=1"`
	Limit        int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AssetResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	CategoryID      string          `json:"category_id"`
	DepartmentID    string          `json:"department_id"`
	UnitID          *string         `json:"unit_id"`
	AssignedToID    *string         `json:"assigned_to_id"`
	Status          string          `json:"status"`
	PurchaseValue   decimal.Decimal `json:"purchase_value"`
	ResidualValue   decimal.Decimal `json:"residual_value"`
	UsefulLifeYears int             `json:"useful_life_years"`
	PurchaseDate    time.Time       `json:"purchase_date"`
	SerialNumber    *string         `json:"serial_number"`
	RFIDTag         *string         `json:"rfid_tag"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`

	// Derived — computed on every read, never stored.
	AccumulatedDepreciation decimal.Decimal `json:"accumulated_depreciation"`
	BookValue               decimal.Decimal `json:"book_value"`
	FullyDepreciated        bool            `json:"fully_depreciated"`
}

type AssetListResponse struct {
	Data       []AssetResponse `json:"data"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

type DisposalResponse struct {
	ID            string          `json:"id"`
	AssetID       string          `json:"asset_id"`
	Method        string          `json:"method"`
	DisposalDate  time.Time       `json:"disposal_date"`
	DisposalValue decimal.Decimal `json:"disposal_value"`
	BookValueAt   decimal.Decimal `json:"book_value_at"`
	Reason        *string         `json:"reason"`
}

type AuditLogResponse struct {
	ID        string      `json:"id"`
	AssetID   string      `json:"asset_id"`
	ActorID   string      `json:"actor_id"`
	Action    string      `json:"action"`
	OldData   interface{} `json:"old_data"`
	NewData   interface{} `json:"new_data"`
	CreatedAt time.Time   `json:"created_at"`
}
