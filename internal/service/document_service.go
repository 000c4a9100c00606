package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/infra"
	"github.com/wyllersu/lifecyle-asset-insight/internal/model"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrUnsupportedDocumentType is returned for uploads whose extension is not
// in the allowed set.
var ErrUnsupportedDocumentType = errors.New("unsupported document type")

// allowedDocumentExts is the whitelist for asset attachments: invoices,
// manuals, warranty scans, and photos.
var allowedDocumentExts = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
	".csv":  true,
	".txt":  true,
}

type DocumentService interface {
	Upload(ctx context.Context, companyID, assetID, uploadedBy uuid.UUID, fileName, contentType string, src io.Reader) (*dto.DocumentResponse, error)
	ListByAsset(ctx context.Context, companyID, assetID uuid.UUID) ([]dto.DocumentResponse, error)
	Open(ctx context.Context, companyID, id uuid.UUID) (*model.Document, io.ReadCloser, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}

type documentService struct {
	repo      repository.DocumentRepository
	assetRepo repository.AssetRepository
	store     *infra.DocumentStore
}

func NewDocumentService(repo repository.DocumentRepository, assetRepo repository.AssetRepository, store *infra.DocumentStore) DocumentService {
	return &documentService{repo: repo, assetRepo: assetRepo, store: store}
}

func (s *documentService) Upload(ctx context.Context, companyID, assetID, uploadedBy uuid.UUID, fileName, contentType string, src io.Reader) (*dto.DocumentResponse, error) {
	if !allowedDocumentExts[strings.ToLower(filepath.Ext(fileName))] {
		return nil, ErrUnsupportedDocumentType
	}

	// the asset lookup doubles as the tenant check
	if _, err := s.assetRepo.FindByID(ctx, companyID, assetID); err != nil {
		return nil, err
	}

	rel, size, err := s.store.Save(assetID, fileName, src)
	if err != nil {
		return nil, err
	}

	doc := &model.Document{
		AssetID:      assetID,
		FileName:     fileName,
		ContentType:  contentType,
		SizeBytes:    size,
		StoragePath:  rel,
		UploadedByID: uploadedBy,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		if rmErr := s.store.Remove(rel); rmErr != nil {
			log.Error().Err(rmErr).Str("path", rel).Msg("document: orphan cleanup failed")
		}
		return nil, err
	}
	return documentToResponse(doc), nil
}

func (s *documentService) ListByAsset(ctx context.Context, companyID, assetID uuid.UUID) ([]dto.DocumentResponse, error) {
	docs, err := s.repo.ListByAsset(ctx, companyID, assetID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		resp[i] = *documentToResponse(&docs[i])
	}
	return resp, nil
}

func (s *documentService) Open(ctx context.Context, companyID, id uuid.UUID) (*model.Document, io.ReadCloser, error) {
	doc, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.store.Open(doc.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return doc, rc, nil
}

func (s *documentService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	doc, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		return err
	}
	if err := s.store.Remove(doc.StoragePath); err != nil {
		log.Error().Err(err).Str("path", doc.StoragePath).Msg("document: file removal failed")
	}
	return nil
}

func documentToResponse(d *model.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:          d.ID.String(),
		AssetID:     d.AssetID.String(),
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		CreatedAt:   d.CreatedAt,
	}
}
