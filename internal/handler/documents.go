package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/wyllersu/lifecyle-asset-insight/internal/apierror"
	"github.com/wyllersu/lifecyle-asset-insight/internal/middleware"
	"github.com/wyllersu/lifecyle-asset-insight/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxDocumentSize caps uploads at 20 MiB.
const maxDocumentSize = 20 << 20

type DocumentsHandler struct{ svc service.DocumentService }

func NewDocumentsHandler(svc service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{svc: svc}
}

// Upload accepts a multipart form with a single "file" field attached to an
// asset.
func (h *DocumentsHandler) Upload(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("missing file field"))
		return
	}
	if fileHeader.Size > maxDocumentSize {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("file exceeds the 20MB limit"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("unreadable file"))
		return
	}
	defer src.Close()

	claims := middleware.GetClaims(c)
	resp, err := h.svc.Upload(
		c.Request.Context(),
		claims.CompanyUUID(),
		assetID,
		claims.UserUUID(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		src,
	)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedDocumentType) {
			c.JSON(http.StatusUnsupportedMediaType, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DocumentsHandler) ListByAsset(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ListByAsset(c.Request.Context(), claims.CompanyUUID(), assetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list documents"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentsHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	doc, rc, err := h.svc.Open(c.Request.Context(), claims.CompanyUUID(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("document not found"))
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Length", strconv.FormatInt(doc.SizeBytes, 10))
	c.DataFromReader(http.StatusOK, doc.SizeBytes, doc.ContentType, rc, nil)
}

func (h *DocumentsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Delete(c.Request.Context(), claims.CompanyUUID(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("document not found"))
		return
	}
	c.Status(http.StatusNoContent)
}
