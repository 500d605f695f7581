package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmledger/api/internal/middleware"
	"github.com/farmledger/api/internal/services"
)

// FieldHandler handles field-related HTTP requests.
type FieldHandler struct {
	fields services.FieldService
}

// NewFieldHandler creates a new FieldHandler instance.
func NewFieldHandler(fields services.FieldService) *FieldHandler {
	return &FieldHandler{fields: fields}
}

// Get handles GET /api/v1/fields/:id.
func (h *FieldHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	field, err := h.fields.GetField(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, field)
}

// ListByFarm handles GET /api/v1/fields/farm/:farmId.
func (h *FieldHandler) ListByFarm(c *gin.Context) {
	farmID, ok := pathID(c, "farmId")
	if !ok {
		return
	}
	fields, err := h.fields.ListFields(c.Request.Context(), middleware.GetUserID(c), farmID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// Create handles POST /api/v1/fields.
func (h *FieldHandler) Create(c *gin.Context) {
	var input services.FieldInput
	if !bindJSON(c, &input) {
		return
	}
	field, err := h.fields.CreateField(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, field)
}

// Update handles PUT /api/v1/fields/:id.
func (h *FieldHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.FieldInput
	if !bindJSON(c, &input) {
		return
	}
	field, err := h.fields.UpdateField(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, field)
}

// Delete handles DELETE /api/v1/fields/:id.
func (h *FieldHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.fields.DeleteField(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SoilTypes handles GET /api/v1/fields/soil-types.
func (h *FieldHandler) SoilTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.fields.SoilTypes())
}
