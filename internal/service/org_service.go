package service

import (
	"context"
	"errors"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/google/uuid"
)

// OrgService manages the tenant hierarchy. The requester's own company is the
// only one ever reachable; there is no cross-company administration surface.
type OrgService interface {
	GetCompany(ctx context.Context, companyID uuid.UUID) (*dto.CompanyResponse, error)
	UpdateCompany(ctx context.Context, companyID uuid.UUID, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)

	CreateDepartment(ctx context.Context, companyID uuid.UUID, req dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	ListDepartments(ctx context.Context, companyID uuid.UUID) ([]dto.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)

	CreateUnit(ctx context.Context, companyID uuid.UUID, req dto.CreateUnitRequest) (*dto.UnitResponse, error)
	ListUnits(ctx context.Context, companyID uuid.UUID, departmentID *uuid.UUID) ([]dto.UnitResponse, error)
	UpdateUnit(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateUnitRequest) (*dto.UnitResponse, error)
}

type orgService struct {
	repo repository.OrgRepository
}

func NewOrgService(repo repository.OrgRepository) OrgService {
	return &orgService{repo: repo}
}

func (s *orgService) GetCompany(ctx context.Context, companyID uuid.UUID) (*dto.CompanyResponse, error) {
	c, err := s.repo.FindCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return companyToResponse(c), nil
}

func (s *orgService) UpdateCompany(ctx context.Context, companyID uuid.UUID, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	c, err := s.repo.FindCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.TaxID != nil {
		c.TaxID = req.TaxID
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if err := s.repo.UpdateCompany(ctx, c); err != nil {
		return nil, err
	}
	return companyToResponse(c), nil
}

func (s *orgService) CreateDepartment(ctx context.Context, companyID uuid.UUID, req dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	d := &model.Department{CompanyID: companyID, Name: req.Name, Active: true}
	if err := s.repo.CreateDepartment(ctx, d); err != nil {
		return nil, err
	}
	return departmentToResponse(d), nil
}

func (s *orgService) ListDepartments(ctx context.Context, companyID uuid.UUID) ([]dto.DepartmentResponse, error) {
	deps, err := s.repo.ListDepartments(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DepartmentResponse, len(deps))
	for i := range deps {
		resp[i] = *departmentToResponse(&deps[i])
	}
	return resp, nil
}

func (s *orgService) UpdateDepartment(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	d, err := s.repo.FindDepartment(ctx, companyID, id)
	if err != nil {
		return nil, errors.New("department not found")
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Active != nil {
		d.Active = *req.Active
	}
	if err := s.repo.UpdateDepartment(ctx, d); err != nil {
		return nil, err
	}
	return departmentToResponse(d), nil
}

func (s *orgService) CreateUnit(ctx context.Context, companyID uuid.UUID, req dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return nil, errors.New("invalid department_id")
	}
	if _, err := s.repo.FindDepartment(ctx, companyID, departmentID); err != nil {
		return nil, errors.New("department not found")
	}
	u := &model.Unit{DepartmentID: departmentID, Name: req.Name, Address: req.Address, Active: true}
	if err := s.repo.CreateUnit(ctx, u); err != nil {
		return nil, err
	}
	return unitToResponse(u), nil
}

func (s *orgService) ListUnits(ctx context.Context, companyID uuid.UUID, departmentID *uuid.UUID) ([]dto.UnitResponse, error) {
	units, err := s.repo.ListUnits(ctx, companyID, departmentID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UnitResponse, len(units))
	for i := range units {
		resp[i] = *unitToResponse(&units[i])
	}
	return resp, nil
}

func (s *orgService) UpdateUnit(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	u, err := s.repo.FindUnit(ctx, companyID, id)
	if err != nil {
		return nil, errors.New("unit not found")
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Address != nil {
		u.Address = req.Address
	}
	if req.Active != nil {
		u.Active = *req.Active
	}
	if err := s.repo.UpdateUnit(ctx, u); err != nil {
		return nil, err
	}
	return unitToResponse(u), nil
}

func companyToResponse(c *model.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		TaxID:   c.TaxID,
		Address: c.Address,
		Active:  c.Active,
	}
}

func departmentToResponse(d *model.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:        d.ID.String(),
		CompanyID: d.CompanyID.String(),
		Name:      d.Name,
		Active:    d.Active,
	}
}

func unitToResponse(u *model.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:           u.ID.String(),
		DepartmentID: u.DepartmentID.String(),
		Name:         u.Name,
		Address:      u.Address,
		Active:       u.Active,
	}
}
