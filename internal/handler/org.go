package handler

import (
	"net/http"

	"github.com/wyllersu/lifecyle-asset-insight/internal/apierror"
	"github.com/wyllersu/lifecyle-asset-insight/internal/dto"
	"github.com/wyllersu/lifecyle-asset-insight/internal/middleware"
	"github.com/wyllersu/lifecyle-asset-insight/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrgHandler serves the tenant's own company, its departments and units.
type OrgHandler struct{ svc service.OrgService }

func NewOrgHandler(svc service.OrgService) *OrgHandler { return &OrgHandler{svc: svc} }

func (h *OrgHandler) GetCompany(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.GetCompany(c.Request.Context(), claims.CompanyUUID())
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("company not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrgHandler) UpdateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.UpdateCompany(c.Request.Context(), claims.CompanyUUID(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Departments ───────────────────────────────────────────────────────────────

func (h *OrgHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.CreateDepartment(c.Request.Context(), claims.CompanyUUID(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrgHandler) ListDepartments(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ListDepartments(c.Request.Context(), claims.CompanyUUID())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list departments"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrgHandler) UpdateDepartment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateDepartmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.UpdateDepartment(c.Request.Context(), claims.CompanyUUID(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Units ─────────────────────────────────────────────────────────────────────

func (h *OrgHandler) CreateUnit(c *gin.Context) {
	var req dto.CreateUnitRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.CreateUnit(c.Request.Context(), claims.CompanyUUID(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrgHandler) ListUnits(c *gin.Context) {
	var departmentID *uuid.UUID
	if s := c.Query("department_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("invalid department_id"))
			return
		}
		departmentID = &id
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ListUnits(c.Request.Context(), claims.CompanyUUID(), departmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list units"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrgHandler) UpdateUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateUnitRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.UpdateUnit(c.Request.Context(), claims.CompanyUUID(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
