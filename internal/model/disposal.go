package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Disposal methods.
const (
	DisposalMethodSale     = "sale"
	DisposalMethodDonation = "donation"
	DisposalMethodScrap    = "scrap"
	DisposalMethodLoss     = "loss"
)

// AssetDisposal is the terminal lifecycle record for an asset. An asset has
// at most one disposal; once it exists the asset status is "disposed" forever.
type AssetDisposal struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssetID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Method        string    `gorm:"type:varchar(20);not null"`
	DisposalDate  time.Time `gorm:"not null"`
	DisposalValue decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	BookValueAt   decimal.Decimal `gorm:"type:decimal(14,2);not null"` // book value at disposal time
	Reason        *string
	CreatedByID   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time

	Asset     *Asset   `gorm:"foreignKey:AssetID"`
	CreatedBy *Profile `gorm:"foreignKey:CreatedByID"`
}
