package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/infra"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/google/uuid"
)

type ExportService interface {
	AssetRegisterCSV(ctx context.Context, companyID uuid.UUID) ([]byte, error)
	AssetRegisterPDF(ctx context.Context, companyID uuid.UUID) ([]byte, error)
}

type exportService struct {
	assetRepo repository.AssetRepository
	orgRepo   repository.OrgRepository
}

func NewExportService(assetRepo repository.AssetRepository, orgRepo repository.OrgRepository) ExportService {
	return &exportService{assetRepo: assetRepo, orgRepo: orgRepo}
}

func (s *exportService) AssetRegisterCSV(ctx context.Context, companyID uuid.UUID) ([]byte, error) {
	rows, err := s.registerRows(ctx, companyID, time.Now())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{
		"code", "name", "category", "status", "purchase_date",
		"purchase_value", "accumulated_depreciation", "book_value",
	}); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.Code,
			r.Name,
			r.Category,
			r.Status,
			r.PurchaseDate.Format("2006-01-02"),
			r.PurchaseValue.StringFixed(2),
			r.Depreciation.StringFixed(2),
			r.BookValue.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) AssetRegisterPDF(ctx context.Context, companyID uuid.UUID) ([]byte, error) {
	asOf := time.Now()
	rows, err := s.registerRows(ctx, companyID, asOf)
	if err != nil {
		return nil, err
	}
	company, err := s.orgRepo.FindCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return infra.GenerateAssetRegisterPDF(company.Name, rows, asOf)
}

func (s *exportService) registerRows(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]infra.AssetRegisterRow, error) {
	assets, err := s.assetRepo.ListAll(ctx, companyID)
	if err != nil {
		return nil, err
	}
	rows := make([]infra.AssetRegisterRow, len(assets))
	for i := range assets {
		a := &assets[i]
		bv := ComputeBookValue(a.PurchaseValue, a.ResidualValue, a.UsefulLifeYears, a.PurchaseDate, asOf)
		rows[i] = infra.AssetRegisterRow{
			Code:          a.Code,
			Name:          a.Name,
			Category:      categoryName(a),
			Status:        a.Status,
			PurchaseDate:  a.PurchaseDate,
			PurchaseValue: a.PurchaseValue,
			Depreciation:  bv.AccumulatedDepreciation,
			BookValue:     bv.BookValue,
		}
	}
	return rows, nil
}

func categoryName(a *model.Asset) string {
	if a.Category != nil {
		return a.Category.Name
	}
	return ""
}
