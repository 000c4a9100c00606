package dto

// ─── Company ─────────────────────────────────────────────────────────────────

type UpdateCompanyRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=2,max=160"`
	TaxID   *string `json:"tax_id"`
	Address *string `json:"address"`
}

type CompanyResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	TaxID   *string `json:"tax_id"`
	Address *string `json:"address"`
	Active  bool    `json:"active"`
}

// ─── Departments ─────────────────────────────────────────────────────────────

type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

type UpdateDepartmentRequest struct {
	Name   *string `json:"name"   validate:"omitempty,min=2,max=120"`
	Active *bool   `json:"active"`
}

type DepartmentResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
}

// ─── Units ───────────────────────────────────────────────────────────────────

type CreateUnitRequest struct {
	DepartmentID string  `json:"department_id" validate:"required,uuid"`
	Name         string  `json:"name"          validate:"required,min=2,max=120"`
	Address      *string `json:"address"`
}

type UpdateUnitRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=120"`
	Address *string `json:"address"`
	Active  *bool   `json:"active"`
}

type UnitResponse struct {
	ID           string  `json:"id"`
	DepartmentID string  `json:"department_id"`
	Name         string  `json:"name"`
	Address      *string `json:"address"`
	Active       bool    `json:"active"`
}
