package service

import (
	"context"
	"errors"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/config"
	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	CreateProfile(ctx context.Context, companyID uuid.UUID, req dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	ListProfiles(ctx context.Context, companyID uuid.UUID, includeInactive bool) ([]dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	DeactivateProfile(ctx context.Context, companyID, id uuid.UUID) error
	ReactivateProfile(ctx context.Context, companyID, id uuid.UUID) error
}

type authService struct {
	repo repository.ProfileRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.ProfileRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         profileToResponse(user),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token invalid or expired")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("malformed token")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("malformed token")
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil || !user.Active {
		return nil, errors.New("user not found or inactive")
	}

	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         profileToResponse(user),
	}, nil
}

func (s *authService) CreateProfile(ctx context.Context, companyID uuid.UUID, req dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	user := &model.Profile{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         req.Role,
		CompanyID:    companyID,
		Active:       true,
	}
	if user.DepartmentID, err = parseOptionalUUID(req.DepartmentID); err != nil {
		return nil, errors.New("invalid department_id")
	}
	if user.UnitID, err = parseOptionalUUID(req.UnitID); err != nil {
		return nil, errors.New("invalid unit_id")
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := profileToResponse(user)
	return &resp, nil
}

func (s *authService) ListProfiles(ctx context.Context, companyID uuid.UUID, includeInactive bool) ([]dto.ProfileResponse, error) {
	users, err := s.repo.ListByCompany(ctx, companyID, includeInactive)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProfileResponse, len(users))
	for i := range users {
		resp[i] = profileToResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil || user.CompanyID != companyID {
		return nil, errors.New("user not found")
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.DepartmentID != nil {
		if user.DepartmentID, err = parseOptionalUUID(req.DepartmentID); err != nil {
			return nil, errors.New("invalid department_id")
		}
	}
	if req.UnitID != nil {
		if user.UnitID, err = parseOptionalUUID(req.UnitID); err != nil {
			return nil, errors.New("invalid unit_id")
		}
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := profileToResponse(user)
	return &resp, nil
}

func (s *authService) DeactivateProfile(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, companyID, id)
}

func (s *authService) ReactivateProfile(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.Reactivate(ctx, companyID, id)
}

func (s *authService) generateToken(user *model.Profile, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    user.ID.String(),
		"email":      user.Email,
		"role":       user.Role,
		"company_id": user.CompanyID.String(),
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func profileToResponse(u *model.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		CompanyID:    u.CompanyID.String(),
		DepartmentID: uuidPtrToString(u.DepartmentID),
		UnitID:       uuidPtrToString(u.UnitID),
		Active:       u.Active,
	}
}

// parseOptionalUUID converts an optional string id; nil or empty stays nil.
func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
