package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateMaintenanceRequest struct {
	AssetID       string           `json:"asset_id"       validate:"required,uuid"`
	Type          string           `json:"type"           validate:"required,oneof=preventiva corretiva emergencial"`
	Description   string           `json:"description"    validate:"required,min=2"`
	ScheduledDate time.Time        `json:"scheduled_date" validate:"required"`
	Cost          *decimal.Decimal `json:"cost"           validate:"omitempty,min=0"`
	Technician    *string          `json:"technician"`
	Notes         *string          `json:"notes"`
}

type UpdateMaintenanceRequest struct {
	Description   *string          `json:"description"    validate:"omitempty,min=2"`
	ScheduledDate *time.Time       `json:"scheduled_date"`
	Cost          *decimal.Decimal `json:"cost"           validate:"omitempty,min=0"`
	Technician    *string          `json:"technician"`
	Notes         *string          `json:"notes"`
}

// UpdateMaintenanceStatusRequest drives the workflow
// agendada → em_andamento → concluida, or → cancelada before completion.
type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=em_andamento concluida cancelada"`
}

type MaintenanceFilter struct {
	AssetID string `form:"asset_id"`
	Status  string `form:"status"`
	Type    string `form:"type"`
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type MaintenanceResponse struct {
	ID            string          `json:"id"`
	AssetID       string          `json:"asset_id"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Description   string          `json:"description"`
	ScheduledDate time.Time       `json:"scheduled_date"`
	CompletedDate *time.Time      `json:"completed_date"`
	Cost          decimal.Decimal `json:"cost"`
	Technician    *string         `json:"technician"`
	Notes         *string         `json:"notes"`
	CreatedByID   string          `json:"created_by_id"`
}

type MaintenanceListResponse struct {
	Data       []MaintenanceResponse `json:"data"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}
