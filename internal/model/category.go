package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category classifies assets and carries depreciation defaults applied when
// an asset is created without explicit values.
type Category struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                   string    `gorm:"not null"`
	Description            *string
	DefaultUsefulLifeYears int             `gorm:"not null;default:5"`
	DefaultResidualPct     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:10"`
	Active                 bool            `gorm:"not null;default:true"`
	CreatedAt              time.Time
	UpdatedAt              time.Time

	Company *Company `gorm:"foreignKey:CompanyID"`
}

// TableName overrides GORM's default pluralization (categories, not categorys).
func (Category) TableName() string { return "categories" }
