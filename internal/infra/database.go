package infra

import (
	"fmt"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, retrying with
// exponential backoff while Postgres comes up, then runs AutoMigrate for the
// full schema.
func NewDatabase(dsn string) (*gorm.DB, error) {
	var db *gorm.DB

	connect := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(connect, policy); err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Migrate creates or updates all tables. Also used by integration tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}
