package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmledger/api/internal/middleware"
	"github.com/farmledger/api/internal/services"
)

// ReferenceParcelHandler handles reference parcel HTTP requests.
type ReferenceParcelHandler struct {
	svc services.ReferenceParcelService
}

// NewReferenceParcelHandler creates a new ReferenceParcelHandler instance.
func NewReferenceParcelHandler(svc services.ReferenceParcelService) *ReferenceParcelHandler {
	return &ReferenceParcelHandler{svc: svc}
}

// Get handles GET /api/v1/reference-parcels/:id.
func (h *ReferenceParcelHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	parcel, err := h.svc.GetReferenceParcel(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, parcel)
}

// ListByField handles GET /api/v1/reference-parcels/field/:fieldId.
func (h *ReferenceParcelHandler) ListByField(c *gin.Context) {
	fieldID, ok := pathID(c, "fieldId")
	if !ok {
		return
	}
	parcels, err := h.svc.ListReferenceParcels(c.Request.Context(), middleware.GetUserID(c), fieldID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, parcels)
}

// Create handles POST /api/v1/reference-parcels.
func (h *ReferenceParcelHandler) Create(c *gin.Context) {
	var input services.ReferenceParcelInput
	if !bindJSON(c, &input) {
		return
	}
	parcel, err := h.svc.CreateReferenceParcel(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, parcel)
}

// Update handles PUT /api/v1/reference-parcels/:id.
func (h *ReferenceParcelHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.ReferenceParcelInput
	if !bindJSON(c, &input) {
		return
	}
	parcel, err := h.svc.UpdateReferenceParcel(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, parcel)
}

// Delete handles DELETE /api/v1/reference-parcels/:id.
func (h *ReferenceParcelHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteReferenceParcel(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SoilMeasurementHandler handles soil measurement HTTP requests.
type SoilMeasurementHandler struct {
	svc services.SoilMeasurementService
}

// NewSoilMeasurementHandler creates a new SoilMeasurementHandler instance.
func NewSoilMeasurementHandler(svc services.SoilMeasurementService) *SoilMeasurementHandler {
	return &SoilMeasurementHandler{svc: svc}
}

// Get handles GET /api/v1/soil-measurements/:id.
func (h *SoilMeasurementHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	m, err := h.svc.GetSoilMeasurement(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// ListByField handles GET /api/v1/soil-measurements/field/:fieldId.
func (h *SoilMeasurementHandler) ListByField(c *gin.Context) {
	fieldID, ok := pathID(c, "fieldId")
	if !ok {
		return
	}
	measurements, err := h.svc.ListSoilMeasurements(c.Request.Context(), middleware.GetUserID(c), fieldID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, measurements)
}

// Create handles POST /api/v1/soil-measurements.
func (h *SoilMeasurementHandler) Create(c *gin.Context) {
	var input services.SoilMeasurementInput
	if !bindJSON(c, &input) {
		return
	}
	m, err := h.svc.CreateSoilMeasurement(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// Update handles PUT /api/v1/soil-measurements/:id.
func (h *SoilMeasurementHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.SoilMeasurementInput
	if !bindJSON(c, &input) {
		return
	}
	m, err := h.svc.UpdateSoilMeasurement(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/v1/soil-measurements/:id.
func (h *SoilMeasurementHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSoilMeasurement(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
