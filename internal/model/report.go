package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SavedReport is an AI-generated report owned by a single user. Unlike the
// company-scoped tables, access is restricted to the owning profile.
type SavedReport struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Prompt    string         `gorm:"not null"`
	QueryKind string         `gorm:"type:varchar(40);not null"` // which canned aggregation ran
	Title     string         `gorm:"not null"`
	Insights  string         `gorm:"type:text;not null"`
	Data      datatypes.JSON `gorm:"type:jsonb"` // aggregated rows the insights were drawn from
	CreatedAt time.Time

	Owner *Profile `gorm:"foreignKey:OwnerID"`
}
