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

type ReportsHandler struct {
	svc service.ReportService
	ai  service.AIService
}

func NewReportsHandler(svc service.ReportService, ai service.AIService) *ReportsHandler {
	return &ReportsHandler{svc: svc, ai: ai}
}

// Generate godoc
// @Summary Generate a report from a natural-language prompt
// @Tags reports
// @Accept json
// @Produce json
// @Param body body dto.GenerateReportRequest true "Prompt"
// @Success 201 {object} dto.ReportResponse
// @Router /v1/reports [post]
func (h *ReportsHandler) Generate(c *gin.Context) {
	var req dto.GenerateReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Generate(c.Request.Context(), claims.CompanyUUID(), claims.UserUUID(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to generate report"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReportsHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.List(c.Request.Context(), claims.UserUUID())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list reports"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.GetByID(c.Request.Context(), claims.UserUUID(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("report not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.Delete(c.Request.Context(), claims.UserUUID(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("report not found"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReportsHandler) Dashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.DashboardStats(c.Request.Context(), claims.CompanyUUID())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load dashboard"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── AI suggestions ────────────────────────────────────────────────────────────

// AnalyzeAsset never fails on provider errors: the response carries a
// fallback flag instead.
func (h *ReportsHandler) AnalyzeAsset(c *gin.Context) {
	var req dto.AssetAnalysisRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.ai.AnalyzeAsset(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to analyze asset"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) SuggestCategory(c *gin.Context) {
	var req dto.CategorySuggestionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.ai.SuggestCategory(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to suggest category"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
