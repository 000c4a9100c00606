package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SparePart is an inventory item consumed by maintenances.
type SparePart struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"not null;index"`
	Name      string    `gorm:"not null"`
	UnitCost  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stock     int             `gorm:"not null;default:0"`
	MinStock  int             `gorm:"not null;default:1"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Company *Company `gorm:"foreignKey:CompanyID"`
}

// AssetPart links a spare part to the assets it is compatible with.
type AssetPart struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssetID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_asset_part"`
	SparePartID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_asset_part"`
	CreatedAt   time.Time

	Asset     *Asset     `gorm:"foreignKey:AssetID"`
	SparePart *SparePart `gorm:"foreignKey:SparePartID"`
}

// MaintenancePart records parts consumed by a maintenance. Quantity is
// always positive; stock is decremented in the same transaction.
type MaintenancePart struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MaintenanceID uuid.UUID `gorm:"type:uuid;not null;index"`
	SparePartID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity      int       `gorm:"not null"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(12,2);not null"` // cost at consumption time
	CreatedAt     time.Time

	Maintenance *AssetMaintenance `gorm:"foreignKey:MaintenanceID"`
	SparePart   *SparePart        `gorm:"foreignKey:SparePartID"`
}
