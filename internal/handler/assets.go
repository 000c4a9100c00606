package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/wyllersu/lifecyle-asset-insight/internal/apierror"
	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/infra"
	"github.com/wyllersu/lifecyle-asset-insight/internal/middleware"
	"github.com/wyllersu/lifecyle-asset-insight/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssetsHandler struct{ svc service.AssetService }

func NewAssetsHandler(svc service.AssetService) *AssetsHandler {
	return &AssetsHandler{svc: svc}
}

// Create godoc
// @Summary Register an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param body body dto.CreateAssetRequest true "Asset"
// @Success 201 {object} dto.AssetResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/assets [post]
func (h *AssetsHandler) Create(c *gin.Context) {
	var req dto.CreateAssetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Create(c.Request.Context(), claims.CompanyUUID(), claims.UserUUID(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AssetsHandler) List(c *gin.Context) {
	var filter dto.AssetFilter
	if !bindQueryFilter(c, &filter) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.List(c.Request.Context(), claims.CompanyUUID(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list assets"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssetsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.GetByID(c.Request.Context(), claims.CompanyUUID(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("asset not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Scan resolves an asset by the code printed on its QR label.
func (h *AssetsHandler) Scan(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, apierror.New("invalid code"))
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ResolveByCode(c.Request.Context(), claims.CompanyUUID(), code)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("asset not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QRCode renders the asset's QR label as a PNG.
func (h *AssetsHandler) QRCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	asset, err := h.svc.GetByID(c.Request.Context(), claims.CompanyUUID(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("asset not found"))
		return
	}

	size := 0
	if s := c.Query("size"); s != "" {
		size, _ = strconv.Atoi(s)
	}
	png, err := infra.GenerateAssetQR(asset.Code, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render QR code"))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *AssetsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateAssetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Update(c.Request.Context(), claims.CompanyUUID(), claims.UserUUID(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrAssetDisposed) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssetsHandler) Dispose(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.DisposeAssetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Dispose(c.Request.Context(), claims.CompanyUUID(), claims.UserUUID(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrAssetDisposed) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AssetsHandler) GetDisposal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.GetDisposal(c.Request.Context(), claims.CompanyUUID(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("disposal not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssetsHandler) Audit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ListAudit(c.Request.Context(), claims.CompanyUUID(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list audit entries"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
