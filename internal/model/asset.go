package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset statuses.
const (
	AssetStatusActive      = "active"
	AssetStatusMaintenance = "maintenance"
	AssetStatusInactive    = "inactive"
	AssetStatusDisposed    = "disposed"
)

// Asset is a physical fixed asset (equipment, vehicle, furniture).
// Depreciation inputs are immutable facts about the purchase; the book value
// is always derived, never stored.
type Asset struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code            string    `gorm:"uniqueIndex;not null"` // printed on the QR label
	Name            string    `gorm:"index;not null"`
	Description     *string
	CategoryID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	DepartmentID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	UnitID          *uuid.UUID `gorm:"type:uuid;index"`
	AssignedToID    *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(20);not null;default:'active'"`
	PurchaseValue   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ResidualValue   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	UsefulLifeYears int             `gorm:"not null"`
	PurchaseDate    time.Time       `gorm:"not null"`
	SerialNumber    *string
	RFIDTag         *string  `gorm:"column:rfid_tag;index"`
	Latitude        *float64 `gorm:"type:decimal(10,7)"`
	Longitude       *float64 `gorm:"type:decimal(10,7)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Category   *Category   `gorm:"foreignKey:CategoryID"`
	Department *Department `gorm:"foreignKey:DepartmentID"`
	Unit       *Unit       `gorm:"foreignKey:UnitID"`
	AssignedTo *Profile    `gorm:"foreignKey:AssignedToID"`
}
