package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmledger/api/internal/middleware"
	"github.com/farmledger/api/internal/services"
)

// FarmHandler handles farm-related HTTP requests.
type FarmHandler struct {
	farms services.FarmService
}

// NewFarmHandler creates a new FarmHandler instance.
func NewFarmHandler(farms services.FarmService) *FarmHandler {
	return &FarmHandler{farms: farms}
}

// Get handles GET /api/v1/farms/:id.
func (h *FarmHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	farm, err := h.farms.GetFarm(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, farm)
}

// ListByUser handles GET /api/v1/farms/user.
func (h *FarmHandler) ListByUser(c *gin.Context) {
	farms, err := h.farms.ListFarms(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, farms)
}

// ListRefs handles GET /api/v1/farms/user/list.
func (h *FarmHandler) ListRefs(c *gin.Context) {
	refs, err := h.farms.ListFarmRefs(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, refs)
}

// Create handles POST /api/v1/farms.
func (h *FarmHandler) Create(c *gin.Context) {
	var input services.FarmInput
	if !bindJSON(c, &input) {
		return
	}
	farm, err := h.farms.CreateFarm(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, farm)
}

// Update handles PUT /api/v1/farms/:id.
func (h *FarmHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.FarmInput
	if !bindJSON(c, &input) {
		return
	}
	farm, err := h.farms.UpdateFarm(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, farm)
}

// Delete handles DELETE /api/v1/farms/:id.
func (h *FarmHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.farms.DeleteFarm(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
