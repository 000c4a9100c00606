package repository

import (
	"testing"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema. The
// connection pool is pinned to one connection so every query sees the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Company{},
		&model.Department{},
		&model.Unit{},
		&model.Profile{},
		&model.Category{},
		&model.Asset{},
		&model.AssetMaintenance{},
		&model.SparePart{},
		&model.AssetPart{},
		&model.MaintenancePart{},
		&model.AssetDisposal{},
		&model.Document{},
		&model.AssetAuditLog{},
		&model.SavedReport{},
		&model.Notification{},
	))
	return db
}

// tenant bundles the rows every scoped query needs: a company, one
// department, one category and one user.
type tenant struct {
	Company    model.Company
	Department model.Department
	Category   model.Category
	Profile    model.Profile
}

func seedTenant(t *testing.T, db *gorm.DB, name string) tenant {
	t.Helper()

	company := model.Company{Name: name}
	require.NoError(t, db.Create(&company).Error)

	dept := model.Department{CompanyID: company.ID, Name: name + " Ops", Active: true}
	require.NoError(t, db.Create(&dept).Error)

	category := model.Category{
		CompanyID:              company.ID,
		Name:                   "Equipment",
		DefaultUsefulLifeYears: 5,
		DefaultResidualPct:     decimal.NewFromInt(10),
		Active:                 true,
	}
	require.NoError(t, db.Create(&category).Error)

	profile := model.Profile{
		Email:        name + "@example.com",
		Name:         name + " admin",
		PasswordHash: "x",
		Role:         model.RoleAdmin,
		CompanyID:    company.ID,
		Active:       true,
	}
	require.NoError(t, db.Create(&profile).Error)

	return tenant{Company: company, Department: dept, Category: category, Profile: profile}
}

func seedAsset(t *testing.T, db *gorm.DB, tn tenant, code string) model.Asset {
	t.Helper()

	asset := model.Asset{
		Code:            code,
		Name:            "Asset " + code,
		CategoryID:      tn.Category.ID,
		DepartmentID:    tn.Department.ID,
		Status:          model.AssetStatusActive,
		PurchaseValue:   decimal.NewFromInt(1000),
		ResidualValue:   decimal.NewFromInt(100),
		UsefulLifeYears: 5,
		PurchaseDate:    time.Now().AddDate(-1, 0, 0),
	}
	require.NoError(t, db.Create(&asset).Error)
	return asset
}

func seedMaintenance(t *testing.T, db *gorm.DB, asset model.Asset, actor uuid.UUID, status string, scheduled time.Time) model.AssetMaintenance {
	t.Helper()

	m := model.AssetMaintenance{
		AssetID:       asset.ID,
		Type:          model.MaintenanceTypePreventive,
		Status:        status,
		Description:   "routine service",
		ScheduledDate: scheduled,
		Cost:          decimal.Zero,
		CreatedByID:   actor,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}
