package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apierrors "github.com/farmledger/api/internal/errors"
	"github.com/farmledger/api/internal/middleware"
	"github.com/farmledger/api/internal/report"
)

// ReportHandler serves the agrotechnical activities report.
type ReportHandler struct {
	svc *report.Service
}

// NewReportHandler creates a new ReportHandler instance.
func NewReportHandler(svc *report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Data handles GET /api/v1/reports/agrotechnical/data/:farmId.
func (h *ReportHandler) Data(c *gin.Context) {
	rows, ok := h.rows(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rows)
}

// HTML handles GET /api/v1/reports/agrotechnical/html/:farmId.
func (h *ReportHandler) HTML(c *gin.Context) {
	rows, ok := h.rows(c)
	if !ok {
		return
	}
	html, err := h.svc.HTML(rows)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to render report", err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PDF handles GET /api/v1/reports/agrotechnical/pdf/:farmId.
func (h *ReportHandler) PDF(c *gin.Context) {
	rows, ok := h.rows(c)
	if !ok {
		return
	}
	html, err := h.svc.HTML(rows)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to render report", err)
		return
	}
	pdf, err := h.svc.PDF(html)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to render report PDF", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="agrotechnical-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Excel handles GET /api/v1/reports/agrotechnical/excel/:farmId.
func (h *ReportHandler) Excel(c *gin.Context) {
	rows, ok := h.rows(c)
	if !ok {
		return
	}
	buf, err := h.svc.Excel(rows)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to render report workbook", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="agrotechnical-report.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ReportHandler) rows(c *gin.Context) ([]report.ActivityRow, bool) {
	farmID, ok := pathID(c, "farmId")
	if !ok {
		return nil, false
	}
	rows, err := h.svc.Rows(c.Request.Context(), middleware.GetUserID(c), farmID)
	if err != nil {
		reportError(c, err, farmID)
		return nil, false
	}
	return rows, true
}

func reportError(c *gin.Context, err error, farmID uuid.UUID) {
	switch {
	case errors.Is(err, report.ErrFarmNotFound):
		apierrors.NotFound(c, "Farm not found")
	case errors.Is(err, report.ErrFarmNotOwned):
		apierrors.Forbidden(c, "Farm belongs to another user")
	case errors.Is(err, report.ErrNoFields):
		apierrors.BadRequest(c, "No fields for this farm", map[string]interface{}{
			"farm_id": farmID.String(),
		})
	default:
		apierrors.InternalServerError(c, "Failed to assemble report", err)
	}
}
