package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// Profile stores system users with role-based access.
// Role: "admin" | "manager" | "user". CompanyID is the tenant key carried
// into every JWT issued for this user.
type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index"`
	UnitID       *uuid.UUID `gorm:"type:uuid"`
	Active       bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Company    *Company    `gorm:"foreignKey:CompanyID"`
	Department *Department `gorm:"foreignKey:DepartmentID"`
	Unit       *Unit       `gorm:"foreignKey:UnitID"`
}
