package handler

import (
	"errors"
	"net/http"

	"github.com/wyllersu/lifecyle-asset-insight/internal/apierror"
	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/middleware"
	"github.com/wyllersu/lifecyle-asset-insight/internal/repository"
	"github.com/wyllersu/lifecyle-asset-insight/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenancesHandler struct{ svc service.MaintenanceService }

func NewMaintenancesHandler(svc service.MaintenanceService) *MaintenancesHandler {
	return &MaintenancesHandler{svc: svc}
}

func (h *MaintenancesHandler) Create(c *gin.Context) {
	var req dto.CreateMaintenanceRequest
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

func (h *MaintenancesHandler) List(c *gin.Context) {
	var filter dto.MaintenanceFilter
	if !bindQueryFilter(c, &filter) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.List(c.Request.Context(), claims.CompanyUUID(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list maintenances"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaintenancesHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.GetByID(c.Request.Context(), claims.CompanyUUID(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("maintenance not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaintenancesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateMaintenanceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Update(c.Request.Context(), claims.CompanyUUID(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus moves a maintenance through its workflow. Invalid transitions
// return 409 so the client can refresh its view.
func (h *MaintenancesHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateMaintenanceStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.UpdateStatus(c.Request.Context(), claims.CompanyUUID(), claims.UserUUID(), id, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MaintenancesHandler) ConsumePart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.ConsumePartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ConsumePart(c.Request.Context(), claims.CompanyUUID(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MaintenancesHandler) ListParts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ListParts(c.Request.Context(), claims.CompanyUUID(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list consumed parts"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
