package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ErrAssetDisposed guards every mutation against terminal assets.
var ErrAssetDisposed = errors.New("asset is disposed and can no longer be modified")

type AssetService interface {
	Create(ctx context.Context, companyID, actorID uuid.UUID, req dto.CreateAssetRequest) (*dto.AssetResponse, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*dto.AssetResponse, error)
	ResolveByCode(ctx context.Context, companyID uuid.UUID, code string) (*dto.AssetResponse, error)
	List(ctx context.Context, companyID uuid.UUID, filter dto.AssetFilter) (*dto.AssetListResponse, error)
	Update(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	Dispose(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.DisposeAssetRequest) (*dto.DisposalResponse, error)
	GetDisposal(ctx context.Context, companyID, assetID uuid.UUID) (*dto.DisposalResponse, error)
	ListAudit(ctx context.Context, companyID, assetID uuid.UUID) ([]dto.AuditLogResponse, error)
}

type assetService struct {
	repo         repository.AssetRepository
	categoryRepo repository.CategoryRepository
	orgRepo      repository.OrgRepository
}

func NewAssetService(repo repository.AssetRepository, categoryRepo repository.CategoryRepository, orgRepo repository.OrgRepository) AssetService {
	return &assetService{repo: repo, categoryRepo: categoryRepo, orgRepo: orgRepo}
}

func (s *assetService) Create(ctx context.Context, companyID, actorID uuid.UUID, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, errors.New("invalid category_id")
	}
	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return nil, errors.New("invalid department_id")
	}

	// Both parents must belong to the requesting company.
	category, err := s.categoryRepo.FindByID(ctx, companyID, categoryID)
	if err != nil {
		return nil, errors.New("category not found")
	}
	if _, err := s.orgRepo.FindDepartment(ctx, companyID, departmentID); err != nil {
		return nil, errors.New("department not found")
	}

	// Category defaults fill in missing depreciation inputs.
	usefulLife := category.DefaultUsefulLifeYears
	if req.UsefulLifeYears != nil {
		usefulLife = *req.UsefulLifeYears
	}
	if usefulLife <= 0 {
		return nil, errors.New("useful_life_years must be greater than zero")
	}

	residual := req.PurchaseValue.Mul(category.DefaultResidualPct).Div(decimal.NewFromInt(100))
	if req.ResidualValue != nil {
		residual = *req.ResidualValue
	}
	if residual.GreaterThan(req.PurchaseValue) {
		return nil, errors.New("residual_value cannot exceed purchase_value")
	}

	asset := &model.Asset{
		Code:            req.Code,
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      categoryID,
		DepartmentID:    departmentID,
		Status:          model.AssetStatusActive,
		PurchaseValue:   req.PurchaseValue,
		ResidualValue:   residual.Round(2),
		UsefulLifeYears: usefulLife,
		PurchaseDate:    req.PurchaseDate,
		SerialNumber:    req.SerialNumber,
		RFIDTag:         req.RFIDTag,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
	if asset.UnitID, err = parseOptionalUUID(req.UnitID); err != nil {
		return nil, errors.New("invalid unit_id")
	}
	if asset.AssignedToID, err = parseOptionalUUID(req.AssignedToID); err != nil {
		return nil, errors.New("invalid assigned_to_id")
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, err
	}

	s.appendAudit(ctx, asset.ID, actorID, model.AuditActionCreate, nil, asset)

	return assetToResponse(asset, time.Now()), nil
}

func (s *assetService) GetByID(ctx context.Context, companyID, id uuid.UUID) (*dto.AssetResponse, error) {
	asset, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return assetToResponse(asset, time.Now()), nil
}

func (s *assetService) ResolveByCode(ctx context.Context, companyID uuid.UUID, code string) (*dto.AssetResponse, error) {
	asset, err := s.repo.FindByCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	return assetToResponse(asset, time.Now()), nil
}

func (s *assetService) List(ctx context.Context, companyID uuid.UUID, filter dto.AssetFilter) (*dto.AssetListResponse, error) {
	assets, total, err := s.repo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	data := make([]dto.AssetResponse, len(assets))
	for i := range assets {
		data[i] = *assetToResponse(&assets[i], now)
	}
	return &dto.AssetListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *assetService) Update(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if asset.Status == model.AssetStatusDisposed {
		return nil, ErrAssetDisposed
	}

	before := *asset

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Description != nil {
		asset.Description = req.Description
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, errors.New("invalid category_id")
		}
		if _, err := s.categoryRepo.FindByID(ctx, companyID, categoryID); err != nil {
			return nil, errors.New("category not found")
		}
		asset.CategoryID = categoryID
	}
	if req.DepartmentID != nil {
		departmentID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return nil, errors.New("invalid department_id")
		}
		if _, err := s.orgRepo.FindDepartment(ctx, companyID, departmentID); err != nil {
			return nil, errors.New("department not found")
		}
		asset.DepartmentID = departmentID
	}
	if req.UnitID != nil {
		if asset.UnitID, err = parseOptionalUUID(req.UnitID); err != nil {
			return nil, errors.New("invalid unit_id")
		}
	}
	if req.AssignedToID != nil {
		if asset.AssignedToID, err = parseOptionalUUID(req.AssignedToID); err != nil {
			return nil, errors.New("invalid assigned_to_id")
		}
	}
	if req.Status != nil {
		asset.Status = *req.Status
	}
	if req.SerialNumber != nil {
		asset.SerialNumber = req.SerialNumber
	}
	if req.RFIDTag != nil {
		asset.RFIDTag = req.RFIDTag
	}
	if req.Latitude != nil {
		asset.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		asset.Longitude = req.Longitude
	}

	if err := s.repo.Update(ctx, asset); err != nil {
		return nil, err
	}

	s.appendAudit(ctx, asset.ID, actorID, model.AuditActionUpdate, &before, asset)

	return assetToResponse(asset, time.Now()), nil
}

func (s *assetService) Dispose(ctx context.Context, companyID, actorID, id uuid.UUID, req dto.DisposeAssetRequest) (*dto.DisposalResponse, error) {
	asset, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if asset.Status == model.AssetStatusDisposed {
		return nil, ErrAssetDisposed
	}

	bv := ComputeBookValue(asset.PurchaseValue, asset.ResidualValue, asset.UsefulLifeYears, asset.PurchaseDate, req.DisposalDate)

	disposalValue := decimal.Zero
	if req.DisposalValue != nil {
		disposalValue = *req.DisposalValue
	}

	disposal := &model.AssetDisposal{
		AssetID:       asset.ID,
		Method:        req.Method,
		DisposalDate:  req.DisposalDate,
		DisposalValue: disposalValue,
		BookValueAt:   bv.BookValue,
		Reason:        req.Reason,
		CreatedByID:   actorID,
	}

	before := *asset
	after := before
	after.Status = model.AssetStatusDisposed
	entry := buildAuditEntry(asset.ID, actorID, model.AuditActionDispose, &before, &after)

	if err := s.repo.DisposeTx(ctx, asset, disposal, entry); err != nil {
		return nil, err
	}

	return disposalToResponse(disposal), nil
}

func (s *assetService) GetDisposal(ctx context.Context, companyID, assetID uuid.UUID) (*dto.DisposalResponse, error) {
	d, err := s.repo.FindDisposal(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	return disposalToResponse(d), nil
}

func (s *assetService) ListAudit(ctx context.Context, companyID, assetID uuid.UUID) ([]dto.AuditLogResponse, error) {
	entries, err := s.repo.ListAudit(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AuditLogResponse, len(entries))
	for i, e := range entries {
		var oldData, newData interface{}
		_ = json.Unmarshal(e.OldData, &oldData)
		_ = json.Unmarshal(e.NewData, &newData)
		resp[i] = dto.AuditLogResponse{
			ID:        e.ID.String(),
			AssetID:   e.AssetID.String(),
			ActorID:   e.ActorID.String(),
			Action:    e.Action,
			OldData:   oldData,
			NewData:   newData,
			CreatedAt: e.CreatedAt,
		}
	}
	return resp, nil
}

// appendAudit writes the change record. Audit failures are logged, never
// surfaced — the mutation already committed.
func (s *assetService) appendAudit(ctx context.Context, assetID, actorID uuid.UUID, action string, before, after *model.Asset) {
	entry := buildAuditEntry(assetID, actorID, action, before, after)
	if err := s.repo.AppendAudit(ctx, entry); err != nil {
		log.Error().Err(err).Str("asset_id", assetID.String()).Str("action", action).
			Msg("failed to append audit entry")
	}
}

func buildAuditEntry(assetID, actorID uuid.UUID, action string, before, after *model.Asset) *model.AssetAuditLog {
	entry := &model.AssetAuditLog{
		AssetID: assetID,
		ActorID: actorID,
		Action:  action,
	}
	if before != nil {
		entry.OldData, _ = json.Marshal(before)
	}
	if after != nil {
		entry.NewData, _ = json.Marshal(after)
	}
	return entry
}

func assetToResponse(a *model.Asset, asOf time.Time) *dto.AssetResponse {
	bv := ComputeBookValue(a.PurchaseValue, a.ResidualValue, a.UsefulLifeYears, a.PurchaseDate, asOf)
	return &dto.AssetResponse{
		ID:              a.ID.String(),
		Code:            a.Code,
		Name:            a.Name,
		Description:     a.Description,
		CategoryID:      a.CategoryID.String(),
		DepartmentID:    a.DepartmentID.String(),
		UnitID:          uuidPtrToString(a.UnitID),
		AssignedToID:    uuidPtrToString(a.AssignedToID),
		Status:          a.Status,
		PurchaseValue:   a.PurchaseValue,
		ResidualValue:   a.ResidualValue,
		UsefulLifeYears: a.UsefulLifeYears,
		PurchaseDate:    a.PurchaseDate,
		SerialNumber:    a.SerialNumber,
		RFIDTag:         a.RFIDTag,
		Latitude:        a.Latitude,
		Longitude:       a.Longitude,

		AccumulatedDepreciation: bv.AccumulatedDepreciation,
		BookValue:               bv.BookValue,
		FullyDepreciated:        bv.FullyDepreciated,
	}
}

func disposalToResponse(d *model.AssetDisposal) *dto.DisposalResponse {
	return &dto.DisposalResponse{
		ID:            d.ID.String(),
		AssetID:       d.AssetID.String(),
		Method:        d.Method,
		DisposalDate:  d.DisposalDate,
		DisposalValue: d.DisposalValue,
		BookValueAt:   d.BookValueAt,
		Reason:        d.Reason,
	}
}
