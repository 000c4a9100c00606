package service

import (
	"context"
	"errors"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SparePartService interface {
	Create(ctx context.Context, companyID uuid.UUID, req dto.CreateSparePartRequest) (*dto.SparePartResponse, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*dto.SparePartResponse, error)
	List(ctx context.Context, companyID uuid.UUID) ([]dto.SparePartResponse, error)
	Update(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateSparePartRequest) (*dto.SparePartResponse, error)
	Deactivate(ctx context.Context, companyID, id uuid.UUID) error
	AdjustStock(ctx context.Context, companyID, id uuid.UUID, req dto.AdjustPartStockRequest) (*dto.SparePartResponse, error)
	LinkAsset(ctx context.Context, companyID uuid.UUID, req dto.LinkAssetPartRequest) error
	ListByAsset(ctx context.Context, companyID, assetID uuid.UUID) ([]dto.SparePartResponse, error)
}

type sparePartService struct {
	repo      repository.SparePartRepository
	assetRepo repository.AssetRepository
}

func NewSparePartService(repo repository.SparePartRepository, assetRepo repository.AssetRepository) SparePartService {
	return &sparePartService{repo: repo, assetRepo: assetRepo}
}

func (s *sparePartService) Create(ctx context.Context, companyID uuid.UUID, req dto.CreateSparePartRequest) (*dto.SparePartResponse, error) {
	cost := decimal.Zero
	if req.UnitCost != nil {
		cost = *req.UnitCost
	}
	p := &model.SparePart{
		CompanyID: companyID,
		Code:      req.Code,
		Name:      req.Name,
		UnitCost:  cost,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		Active:    true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return partToResponse(p), nil
}

func (s *sparePartService) GetByID(ctx context.Context, companyID, id uuid.UUID) (*dto.SparePartResponse, error) {
	p, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return partToResponse(p), nil
}

func (s *sparePartService) List(ctx context.Context, companyID uuid.UUID) ([]dto.SparePartResponse, error) {
	parts, err := s.repo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SparePartResponse, len(parts))
	for i := range parts {
		resp[i] = *partToResponse(&parts[i])
	}
	return resp, nil
}

func (s *sparePartService) Update(ctx context.Context, companyID, id uuid.UUID, req dto.UpdateSparePartRequest) (*dto.SparePartResponse, error) {
	p, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.UnitCost != nil {
		p.UnitCost = *req.UnitCost
	}
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return partToResponse(p), nil
}

func (s *sparePartService) Deactivate(ctx context.Context, companyID, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, companyID, id)
}

func (s *sparePartService) AdjustStock(ctx context.Context, companyID, id uuid.UUID, req dto.AdjustPartStockRequest) (*dto.SparePartResponse, error) {
	p, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p.Stock+req.Delta < 0 {
		return nil, repository.ErrInsufficientStock
	}
	if err := s.repo.AdjustStock(ctx, companyID, id, req.Delta); err != nil {
		return nil, err
	}
	p.Stock += req.Delta
	return partToResponse(p), nil
}

func (s *sparePartService) LinkAsset(ctx context.Context, companyID uuid.UUID, req dto.LinkAssetPartRequest) error {
	assetID, err := uuid.Parse(req.AssetID)
	if err != nil {
		return errors.New("invalid asset_id")
	}
	partID, err := uuid.Parse(req.SparePartID)
	if err != nil {
		return errors.New("invalid spare_part_id")
	}
	// Both sides must be visible to the tenant.
	if _, err := s.assetRepo.FindByID(ctx, companyID, assetID); err != nil {
		return errors.New("asset not found")
	}
	if _, err := s.repo.FindByID(ctx, companyID, partID); err != nil {
		return errors.New("spare part not found")
	}
	return s.repo.LinkAsset(ctx, &model.AssetPart{AssetID: assetID, SparePartID: partID})
}

func (s *sparePartService) ListByAsset(ctx context.Context, companyID, assetID uuid.UUID) ([]dto.SparePartResponse, error) {
	links, err := s.repo.ListByAsset(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SparePartResponse, 0, len(links))
	for _, l := range links {
		if l.SparePart != nil {
			resp = append(resp, *partToResponse(l.SparePart))
		}
	}
	return resp, nil
}

func partToResponse(p *model.SparePart) *dto.SparePartResponse {
	return &dto.SparePartResponse{
		ID:       p.ID.String(),
		Code:     p.Code,
		Name:     p.Name,
		UnitCost: p.UnitCost,
		Stock:    p.Stock,
		MinStock: p.MinStock,
		LowStock: p.Stock <= p.MinStock,
		Active:   p.Active,
	}
}
