package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// validTransitions encodes the workflow: agendada → em_andamento → concluida,
// or → cancelada from any non-terminal state. Terminal states have no exits.
var validTransitions = map[string][]string{
	model.MaintenanceStatusScheduled:  {model.MaintenanceStatusInProgress, model.MaintenanceStatusCancelled},
	model.MaintenanceStatusInProgress: {model.MaintenanceStatusCompleted, model.MaintenanceStatusCancelled},
}

// ErrInvalidTransition is returned for any move the workflow does not allow.
var ErrInvalidTransition = errors.New("invalid maintenance status transition")

type MaintenanceService interface {
	Create(ctx context.Context, companyID, actorID uuid.UUID, req dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*dto.MaintenanceResponse, error)
	List(ctx context.Context, companyID uuid.UUID, filter dto.MaintenanceFilter) (*dto.MaintenanceListResponse, error)
	Update(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error)
	UpdateStatus(ctx context.Context, companyID, actorID, id uuid.UUID, newStatus string) (*dto.MaintenanceResponse, error)
	ConsumePart(ctx context.Context, companyID, id uuid.UUID, req dto.ConsumePartRequest) (*dto.MaintenancePartResponse, error)
	ListParts(ctx context.Context, companyID, id uuid.UUID) ([]dto.MaintenancePartResponse, error)
}

type maintenanceService struct {
	repo      repository.MaintenanceRepository
	assetRepo repository.AssetRepository
	partRepo  repository.SparePartRepository
}

func NewMaintenanceService(repo repository.MaintenanceRepository, assetRepo repository.AssetRepository, partRepo repository.SparePartRepository) MaintenanceService {
	return &maintenanceService{repo: repo, assetRepo: assetRepo, partRepo: partRepo}
}

func (s *maintenanceService) Create(ctx context.Context, companyID, actorID uuid.UUID, req dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	assetID, err := uuid.Parse(req.AssetID)
	if err != nil {
		return nil, errors.New("invalid asset_id")
	}
	asset, err := s.assetRepo.FindByID(ctx, companyID, assetID)
	if err != nil {
		return nil, errors.New("asset not found")
	}
	if asset.Status == model.AssetStatusDisposed {
		return nil, ErrAssetDisposed
	}

	cost := decimal.Zero
	if req.Cost != nil {
		cost = *req.Cost
	}

	m := &model.AssetMaintenance{
		AssetID:       assetID,
		Type:          req.Type,
		Status:        model.MaintenanceStatusScheduled,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		Cost:          cost,
		Technician:    req.Technician,
		Notes:         req.Notes,
		CreatedByID:   actorID,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return maintenanceToResponse(m), nil
}

func (s *maintenanceService) GetByID(ctx context.Context, companyID, id uuid.UUID) (*dto.MaintenanceResponse, error) {
	m, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return maintenanceToResponse(m), nil
}

func (s *maintenanceService) List(ctx context.Context, companyID uuid.UUID, filter dto.MaintenanceFilter) (*dto.MaintenanceListResponse, error) {
	items, total, err := s.repo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MaintenanceResponse, len(items))
	for i := range items {
		data[i] = *maintenanceToResponse(&items[i])
	}
	return &dto.MaintenanceListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *maintenanceService) Update(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	m, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if isTerminal(m.Status) {
		return nil, fmt.Errorf("maintenance is %s and can no longer be edited", m.Status)
	}

	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.ScheduledDate != nil {
		m.ScheduledDate = *req.ScheduledDate
	}
	if req.Cost != nil {
		m.Cost = *req.Cost
	}
	if req.Technician != nil {
		m.Technician = req.Technician
	}
	if req.Notes != nil {
		m.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return maintenanceToResponse(m), nil
}

// UpdateStatus applies one workflow step and keeps the asset status in sync:
// starting a maintenance parks the asset in "maintenance", finishing or
// cancelling it returns the asset to "active".
func (s *maintenanceService) UpdateStatus(ctx context.Context, companyID, actorID, id uuid.UUID, newStatus string) (*dto.MaintenanceResponse, error) {
	m, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(m.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, m.Status, newStatus)
	}

	m.Status = newStatus
	if newStatus == model.MaintenanceStatusCompleted {
		now := time.Now()
		m.CompletedDate = &now
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.syncAssetStatus(ctx, companyID, actorID, m.AssetID, newStatus)

	return maintenanceToResponse(m), nil
}

func (s *maintenanceService) ConsumePart(ctx context.Context, companyID, id uuid.UUID, req dto.ConsumePartRequest) (*dto.MaintenancePartResponse, error) {
	m, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if isTerminal(m.Status) {
		return nil, fmt.Errorf("maintenance is %s; parts can no longer be consumed", m.Status)
	}

	partID, err := uuid.Parse(req.SparePartID)
	if err != nil {
		return nil, errors.New("invalid spare_part_id")
	}
	part, err := s.partRepo.FindByID(ctx, companyID, partID)
	if err != nil {
		return nil, errors.New("spare part not found")
	}

	mp := &model.MaintenancePart{
		MaintenanceID: m.ID,
		SparePartID:   part.ID,
		Quantity:      req.Quantity,
		UnitCost:      part.UnitCost,
	}
	if err := s.repo.ConsumePartTx(ctx, mp); err != nil {
		return nil, err
	}

	return &dto.MaintenancePartResponse{
		ID:            mp.ID.String(),
		MaintenanceID: mp.MaintenanceID.String(),
		SparePartID:   mp.SparePartID.String(),
		Quantity:      mp.Quantity,
		UnitCost:      mp.UnitCost,
	}, nil
}

func (s *maintenanceService) ListParts(ctx context.Context, companyID, id uuid.UUID) ([]dto.MaintenancePartResponse, error) {
	// Tenancy check before the unscoped parts query.
	m, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	parts, err := s.repo.ListParts(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaintenancePartResponse, len(parts))
	for i, p := range parts {
		resp[i] = dto.MaintenancePartResponse{
			ID:            p.ID.String(),
			MaintenanceID: p.MaintenanceID.String(),
			SparePartID:   p.SparePartID.String(),
			Quantity:      p.Quantity,
			UnitCost:      p.UnitCost,
		}
	}
	return resp, nil
}

// syncAssetStatus mirrors the maintenance workflow onto the asset. Best
// effort: the maintenance row is already committed. When the asset status
// actually changes, the change is recorded in the asset's audit trail like
// any other mutation.
func (s *maintenanceService) syncAssetStatus(ctx context.Context, companyID, actorID, assetID uuid.UUID, maintenanceStatus string) {
	asset, err := s.assetRepo.FindByID(ctx, companyID, assetID)
	if err != nil || asset.Status == model.AssetStatusDisposed {
		return
	}
	before := *asset
	switch maintenanceStatus {
	case model.MaintenanceStatusInProgress:
		asset.Status = model.AssetStatusMaintenance
	case model.MaintenanceStatusCompleted, model.MaintenanceStatusCancelled:
		if asset.Status == model.AssetStatusMaintenance {
			asset.Status = model.AssetStatusActive
		}
	default:
		return
	}
	if asset.Status == before.Status {
		return
	}
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return
	}
	entry := buildAuditEntry(asset.ID, actorID, "status_sync", &before, asset)
	if err := s.assetRepo.AppendAudit(ctx, entry); err != nil {
		log.Error().Err(err).Str("asset_id", asset.ID.String()).
			Msg("failed to append status sync audit entry")
	}
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func isTerminal(status string) bool {
	return status == model.MaintenanceStatusCompleted || status == model.MaintenanceStatusCancelled
}

func maintenanceToResponse(m *model.AssetMaintenance) *dto.MaintenanceResponse {
	return &dto.MaintenanceResponse{
		ID:            m.ID.String(),
		AssetID:       m.AssetID.String(),
		Type:          m.Type,
		Status:        m.Status,
		Description:   m.Description,
		ScheduledDate: m.ScheduledDate,
		CompletedDate: m.CompletedDate,
		Cost:          m.Cost,
		Technician:    m.Technician,
		Notes:         m.Notes,
		CreatedByID:   m.CreatedByID.String(),
	}
}
