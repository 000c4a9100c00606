package repository

// scope.go — query-time tenant scoping.
// The original product enforced tenancy with database row-level security.
// Here every company-owned query goes through one of these helpers so a
// Company A user can never receive Company B rows, whatever the endpoint.

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scopeAssets restricts an asset query to the requesting user's company via
// the owning department.
func scopeAssets(q *gorm.DB, companyID uuid.UUID) *gorm.DB {
	return q.Joins("JOIN departments ON departments.id = assets.department_id").
		Where("departments.company_id = ?", companyID)
}

// scopeMaintenances restricts a maintenance query through asset → department.
func scopeMaintenances(q *gorm.DB, companyID uuid.UUID) *gorm.DB {
	return q.Joins("JOIN assets ON assets.id = asset_maintenances.asset_id").
		Joins("JOIN departments ON departments.id = assets.department_id").
		Where("departments.company_id = ?", companyID)
}

// scopeDocuments restricts a document query through asset → department.
func scopeDocuments(q *gorm.DB, companyID uuid.UUID) *gorm.DB {
	return q.Joins("JOIN assets ON assets.id = documents.asset_id").
		Joins("JOIN departments ON departments.id = assets.department_id").
		Where("departments.company_id = ?", companyID)
}
