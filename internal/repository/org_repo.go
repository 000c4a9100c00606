package repository

import (
	"context"

	"github.com/wyllersu/lifecyle-asset-insight/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgRepository covers the tenant hierarchy: company → departments → units.
type OrgRepository interface {
	FindCompany(ctx context.Context, id uuid.UUID) (*model.Company, error)
	UpdateCompany(ctx context.Context, c *model.Company) error

	CreateDepartment(ctx context.Context, d *model.Department) error
	FindDepartment(ctx context.Context, companyID, id uuid.UUID) (*model.Department, error)
	ListDepartments(ctx context.Context, companyID uuid.UUID) ([]model.Department, error)
	UpdateDepartment(ctx context.Context, d *model.Department) error

	CreateUnit(ctx context.Context, u *model.Unit) error
	FindUnit(ctx context.Context, companyID, id uuid.UUID) (*model.Unit, error)
	ListUnits(ctx context.Context, companyID uuid.UUID, departmentID *uuid.UUID) ([]model.Unit, error)
	UpdateUnit(ctx context.Context, u *model.Unit) error
}

type orgRepo struct{ db *gorm.DB }

func NewOrgRepository(db *gorm.DB) OrgRepository { return &orgRepo{db: db} }

func (r *orgRepo) FindCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var c model.Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *orgRepo) UpdateCompany(ctx context.Context, c *model.Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *orgRepo) CreateDepartment(ctx context.Context, d *model.Department) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *orgRepo) FindDepartment(ctx context.Context, companyID, id uuid.UUID) (*model.Department, error) {
	var d model.Department
	err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", id, companyID).First(&d).Error
	return &d, err
}

func (r *orgRepo) ListDepartments(ctx context.Context, companyID uuid.UUID) ([]model.Department, error) {
	var deps []model.Department
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).Order("name ASC").Find(&deps).Error
	return deps, err
}

func (r *orgRepo) UpdateDepartment(ctx context.Context, d *model.Department) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *orgRepo) CreateUnit(ctx context.Context, u *model.Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *orgRepo) FindUnit(ctx context.Context, companyID, id uuid.UUID) (*model.Unit, error) {
	var u model.Unit
	err := r.db.WithContext(ctx).
		Joins("JOIN departments ON departments.id = units.department_id").
		Where("units.id = ? AND departments.company_id = ?", id, companyID).
		First(&u).Error
	return &u, err
}

func (r *orgRepo) ListUnits(ctx context.Context, companyID uuid.UUID, departmentID *uuid.UUID) ([]model.Unit, error) {
	var units []model.Unit
	q := r.db.WithContext(ctx).
		Joins("JOIN departments ON departments.id = units.department_id").
		Where("departments.company_id = ?", companyID)
	if departmentID != nil {
		q = q.Where("units.department_id = ?", *departmentID)
	}
	err := q.Order("units.name ASC").Find(&units).Error
	return units, err
}

func (r *orgRepo) UpdateUnit(ctx context.Context, u *model.Unit) error {
	return r.db.WithContext(ctx).Save(u).Error
}
