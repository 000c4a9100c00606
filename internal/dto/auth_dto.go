package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         ProfileResponse `json:"user"`
}

// ─── Profiles (users) ────────────────────────────────────────────────────────

type CreateProfileRequest struct {
	Email        string  `json:"email"         validate:"required,email"`
	Name         string  `json:"name"          validate:"required,min=2,max=120"`
	Password     string  `json:"password"      validate:"required,min=8"`
	Role         string  `json:"role"          validate:"required,oneof=admin manager user"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
	UnitID       *string `json:"unit_id"       validate:"omitempty,uuid"`
}

type UpdateProfileRequest struct {
	Name         *string `json:"name"          validate:"omitempty,min=2,max=120"`
	Password     *string `json:"password"      validate:"omitempty,min=8"`
	Role         *string `json:"role"          validate:"omitempty,oneof=admin manager user"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
	UnitID       *string `json:"unit_id"       validate:"omitempty,uuid"`
}

type ProfileResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	CompanyID    string  `json:"company_id"`
	DepartmentID *string `json:"department_id"`
	UnitID       *string `json:"unit_id"`
	Active       bool    `json:"active"`
}
