package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Maintenance types (kept from the original product, which ships in Portuguese).
const (
	MaintenanceTypePreventive = "preventiva"
	MaintenanceTypeCorrective = "corretiva"
	MaintenanceTypeEmergency  = "emergencial"
)

// Maintenance statuses. agendada → em_andamento → concluida, or → cancelada
// from any non-terminal state. concluida and cancelada are terminal.
const (
	MaintenanceStatusScheduled  = "agendada"
	MaintenanceStatusInProgress = "em_andamento"
	MaintenanceStatusCompleted  = "concluida"
	MaintenanceStatusCancelled  = "cancelada"
)

// AssetMaintenance is a scheduled or completed maintenance record.
type AssetMaintenance struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssetID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Type          string    `gorm:"type:varchar(20);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'agendada';index"`
	Description   string    `gorm:"not null"`
	ScheduledDate time.Time `gorm:"not null;index"`
	CompletedDate *time.Time
	Cost          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Technician    *string
	Notes         *string
	CreatedByID   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Asset     *Asset   `gorm:"foreignKey:AssetID"`
	CreatedBy *Profile `gorm:"foreignKey:CreatedByID"`
}

// TableName keeps the historical table name used by the original schema.
func (AssetMaintenance) TableName() string { return "asset_maintenances" }
