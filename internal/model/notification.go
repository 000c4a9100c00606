package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification kinds.
const (
	NotificationMaintenanceDue = "maintenance_due"
	NotificationLowStock       = "low_stock"
)

// Notification is a per-user message materialized by the background cron.
// DedupKey prevents the cron from creating a second row for the same event.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      string    `gorm:"type:varchar(30);not null"`
	Message   string    `gorm:"not null"`
	DedupKey  string    `gorm:"uniqueIndex;not null"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time

	Profile *Profile `gorm:"foreignKey:ProfileID"`
}
