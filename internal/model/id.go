package model

// Primary keys are generated app-side so the schema stays portable across
// Postgres and the sqlite used in repository tests.

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (m *Company) BeforeCreate(*gorm.DB) error          { ensureID(&m.ID); return nil }
func (m *Department) BeforeCreate(*gorm.DB) error       { ensureID(&m.ID); return nil }
func (m *Unit) BeforeCreate(*gorm.DB) error             { ensureID(&m.ID); return nil }
func (m *Profile) BeforeCreate(*gorm.DB) error          { ensureID(&m.ID); return nil }
func (m *Category) BeforeCreate(*gorm.DB) error         { ensureID(&m.ID); return nil }
func (m *Asset) BeforeCreate(*gorm.DB) error            { ensureID(&m.ID); return nil }
func (m *AssetMaintenance) BeforeCreate(*gorm.DB) error { ensureID(&m.ID); return nil }
func (m *SparePart) BeforeCreate(*gorm.DB) error        { ensureID(&m.ID); return nil }
func (m *AssetPart) BeforeCreate(*gorm.DB) error        { ensureID(&m.ID); return nil }
func (m *MaintenancePart) BeforeCreate(*gorm.DB) error  { ensureID(&m.ID); return nil }
func (m *AssetDisposal) BeforeCreate(*gorm.DB) error    { ensureID(&m.ID); return nil }
func (m *Document) BeforeCreate(*gorm.DB) error         { ensureID(&m.ID); return nil }
func (m *AssetAuditLog) BeforeCreate(*gorm.DB) error    { ensureID(&m.ID); return nil }
func (m *SavedReport) BeforeCreate(*gorm.DB) error      { ensureID(&m.ID); return nil }
func (m *Notification) BeforeCreate(*gorm.DB) error     { ensureID(&m.ID); return nil }
