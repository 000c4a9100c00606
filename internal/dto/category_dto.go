package dto

import "github.com/shopspring/decimal"

type CreateCategoryRequest struct {
	Name                   string           `json:"name"                      validate:"required,min=2,max=120"`
	Description            *string          `json:"description"`
	DefaultUsefulLifeYears int              `json:"default_useful_life_years" validate:"required,gt=0,lte=100"`
	DefaultResidualPct     *decimal.Decimal `json:"default_residual_pct"      validate:"omitempty,min=0,max=100"`
}

type UpdateCategoryRequest struct {
	Name                   *string          `json:"name"                      validate:"omitempty,min=2,max=120"`
	Description            *string          `json:"description"`
	DefaultUsefulLifeYears *int             `json:"default_useful_life_years" validate:"omitempty,gt=0,lte=100"`
	DefaultResidualPct     *decimal.Decimal `json:"default_residual_pct"      validate:"omitempty,min=0,max=100"`
}

type CategoryResponse struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Description            *string         `json:"description"`
	DefaultUsefulLifeYears int             `json:"default_useful_life_years"`
	DefaultResidualPct     decimal.Decimal `json:"default_residual_pct"`
	Active                 bool            `json:"active"`
}
