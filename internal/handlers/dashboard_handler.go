package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmledger/api/internal/middleware"
	"github.com/farmledger/api/internal/services"
)

// DashboardHandler serves the landing page summary and the farm map data.
type DashboardHandler struct {
	svc services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(svc services.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Home handles GET /api/v1/home.
func (h *DashboardHandler) Home(c *gin.Context) {
	summary, err := h.svc.Home(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Map handles GET /api/v1/map/:farmId.
func (h *DashboardHandler) Map(c *gin.Context) {
	farmID, ok := pathID(c, "farmId")
	if !ok {
		return
	}
	fields, err := h.svc.MapData(c.Request.Context(), middleware.GetUserID(c), farmID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}
