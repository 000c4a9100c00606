package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Audit actions.
const (
	AuditActionCreate  = "create"
	AuditActionUpdate  = "update"
	AuditActionDispose = "dispose"
	AuditActionDelete  = "delete"
)

// AssetAuditLog is an immutable append-only change record. OldData/NewData
// hold full JSON snapshots of the asset before and after the mutation.
// Rows are never updated or deleted.
type AssetAuditLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AssetID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	ActorID   uuid.UUID      `gorm:"type:uuid;not null"`
	Action    string         `gorm:"type:varchar(20);not null"`
	OldData   datatypes.JSON `gorm:"type:jsonb"`
	NewData   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time

	Actor *Profile `gorm:"foreignKey:ActorID"`
}

// TableName keeps the historical table name used by the original schema.
func (AssetAuditLog) TableName() string { return "asset_audit_logs" }
