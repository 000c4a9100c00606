package model

import (
	"time"

	"github.com/google/uuid"
)

// Document is a file attachment (invoice, photo, manual) linked to an asset.
// Bytes live on disk under the configured storage path; this row is metadata.
type Document struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssetID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName     string    `gorm:"not null"`
	ContentType  string    `gorm:"not null"`
	SizeBytes    int64     `gorm:"not null"`
	StoragePath  string    `gorm:"not null"` // relative to DOCUMENT_STORAGE_PATH
	UploadedByID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time

	Asset      *Asset   `gorm:"foreignKey:AssetID"`
	UploadedBy *Profile `gorm:"foreignKey:UploadedByID"`
}
