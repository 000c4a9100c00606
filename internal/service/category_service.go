package service

import (
	"context"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryService interface {
	Create(ctx context.Context, companyID uuid.UUID, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context, companyID uuid.UUID) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Deactivate(ctx context.Context, companyID, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, companyID uuid.UUID, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	residualPct := decimal.NewFromInt(10)
	if req.DefaultResidualPct != nil {
		residualPct = *req.DefaultResidualPct
	}
	c := &model.Category{
		CompanyID:              companyID,
		Name:                   req.Name,
		Description:            req.Description,
		DefaultUsefulLifeYears: req.DefaultUsefulLifeYears,
		DefaultResidualPct:     residualPct,
		Active:                 true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return categoryToResponse(c), nil
}

func (s *categoryService) List(ctx context.Context, companyID uuid.UUID) ([]dto.CategoryResponse, error) {
	cats, err := s.repo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoryResponse, len(cats))
	for i := range cats {
		resp[i] = *categoryToResponse(&cats[i])
	}
	return resp, nil
}

func (s *categoryService) Update(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.DefaultUsefulLifeYears != nil {
		c.DefaultUsefulLifeYears = *req.DefaultUsefulLifeYears
	}
	if req.DefaultResidualPct != nil {
		c.DefaultResidualPct = *req.DefaultResidualPct
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return categoryToResponse(c), nil
}

func (s *categoryService) Deactivate(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, companyID, id)
}

func categoryToResponse(c *model.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:                     c.ID.String(),
		Name:                   c.Name,
		Description:            c.Description,
		DefaultUsefulLifeYears: c.DefaultUsefulLifeYears,
		DefaultResidualPct:     c.DefaultResidualPct,
		Active:                 c.Active,
	}
}
