package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmledger/api/internal/middleware"
	"github.com/farmledger/api/internal/services"
)

// CropHandler handles crop-related HTTP requests.
type CropHandler struct {
	crops services.CropService
}

// NewCropHandler creates a new CropHandler instance.
func NewCropHandler(crops services.CropService) *CropHandler {
	return &CropHandler{crops: crops}
}

// Get handles GET /api/v1/crops/:id.
func (h *CropHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	crop, err := h.crops.GetCrop(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, crop)
}

// ListByField handles GET /api/v1/crops/field/:fieldId.
func (h *CropHandler) ListByField(c *gin.Context) {
	fieldID, ok := pathID(c, "fieldId")
	if !ok {
		return
	}
	crops, err := h.crops.ListCrops(c.Request.Context(), middleware.GetUserID(c), fieldID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, crops)
}

// ListActive handles GET /api/v1/crops/user/active.
func (h *CropHandler) ListActive(c *gin.Context) {
	crops, err := h.crops.ListActiveCrops(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, crops)
}

// Create handles POST /api/v1/crops.
func (h *CropHandler) Create(c *gin.Context) {
	var input services.CropInput
	if !bindJSON(c, &input) {
		return
	}
	crop, err := h.crops.CreateCrop(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crop)
}

// Update handles PUT /api/v1/crops/:id.
func (h *CropHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.CropInput
	if !bindJSON(c, &input) {
		return
	}
	crop, err := h.crops.UpdateCrop(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, crop)
}

// Delete handles DELETE /api/v1/crops/:id.
func (h *CropHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.crops.DeleteCrop(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CropTypes handles GET /api/v1/crops/crop-types.
func (h *CropHandler) CropTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.crops.CropTypes())
}
