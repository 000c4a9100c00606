package handler

import (
	"net/http"
	"time"

	"github.com/wyllersu/lifecyle-asset-insight/internal/apierror"
	"github.com/wyllersu/lifecyle-asset-insight/internal/middleware"
	"github.com/wyllersu/lifecyle-asset-insight/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportsHandler struct{ svc service.ExportService }

func NewExportsHandler(svc service.ExportService) *ExportsHandler {
	return &ExportsHandler{svc: svc}
}

func (h *ExportsHandler) AssetsCSV(c *gin.Context) {
	claims := middleware.GetClaims(c)
	data, err := h.svc.AssetRegisterCSV(c.Request.Context(), claims.CompanyUUID())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to export asset register"))
		return
	}
	name := "asset-register-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *ExportsHandler) AssetsPDF(c *gin.Context) {
	claims := middleware.GetClaims(c)
	data, err := h.svc.AssetRegisterPDF(c.Request.Context(), claims.CompanyUUID())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to export asset register"))
		return
	}
	name := "asset-register-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
