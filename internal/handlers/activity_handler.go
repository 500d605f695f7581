package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmledger/api/internal/middleware"
	"github.com/farmledger/api/internal/services"
)

// FertilizationHandler handles fertilization HTTP requests.
type FertilizationHandler struct {
	svc services.FertilizationService
}

// NewFertilizationHandler creates a new FertilizationHandler instance.
func NewFertilizationHandler(svc services.FertilizationService) *FertilizationHandler {
	return &FertilizationHandler{svc: svc}
}

// Get handles GET /api/v1/fertilizations/:id.
func (h *FertilizationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	fert, err := h.svc.GetFertilization(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fert)
}

// ListByCrop handles GET /api/v1/fertilizations/crop/:cropId.
func (h *FertilizationHandler) ListByCrop(c *gin.Context) {
	cropID, ok := pathID(c, "cropId")
	if !ok {
		return
	}
	ferts, err := h.svc.ListFertilizations(c.Request.Context(), middleware.GetUserID(c), cropID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ferts)
}

// Create handles POST /api/v1/fertilizations.
func (h *FertilizationHandler) Create(c *gin.Context) {
	var input services.FertilizationInput
	if !bindJSON(c, &input) {
		return
	}
	fert, err := h.svc.CreateFertilization(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fert)
}

// Update handles PUT /api/v1/fertilizations/:id.
func (h *FertilizationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.FertilizationInput
	if !bindJSON(c, &input) {
		return
	}
	fert, err := h.svc.UpdateFertilization(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fert)
}

// Delete handles DELETE /api/v1/fertilizations/:id.
func (h *FertilizationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteFertilization(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Types handles GET /api/v1/fertilizations/types.
func (h *FertilizationHandler) Types(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.FertilizationTypes())
}

// Interventions handles GET /api/v1/fertilizations/interventions.
func (h *FertilizationHandler) Interventions(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Interventions())
}

// PlantProtectionHandler handles plant protection HTTP requests.
type PlantProtectionHandler struct {
	svc services.PlantProtectionService
}

// NewPlantProtectionHandler creates a new PlantProtectionHandler instance.
func NewPlantProtectionHandler(svc services.PlantProtectionService) *PlantProtectionHandler {
	return &PlantProtectionHandler{svc: svc}
}

// Get handles GET /api/v1/plant-protections/:id.
func (h *PlantProtectionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	prot, err := h.svc.GetPlantProtection(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prot)
}

// ListByCrop handles GET /api/v1/plant-protections/crop/:cropId.
func (h *PlantProtectionHandler) ListByCrop(c *gin.Context) {
	cropID, ok := pathID(c, "cropId")
	if !ok {
		return
	}
	prots, err := h.svc.ListPlantProtections(c.Request.Context(), middleware.GetUserID(c), cropID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prots)
}

// Create handles POST /api/v1/plant-protections.
func (h *PlantProtectionHandler) Create(c *gin.Context) {
	var input services.PlantProtectionInput
	if !bindJSON(c, &input) {
		return
	}
	prot, err := h.svc.CreatePlantProtection(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prot)
}

// Update handles PUT /api/v1/plant-protections/:id.
func (h *PlantProtectionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.PlantProtectionInput
	if !bindJSON(c, &input) {
		return
	}
	prot, err := h.svc.UpdatePlantProtection(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prot)
}

// Delete handles DELETE /api/v1/plant-protections/:id.
func (h *PlantProtectionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePlantProtection(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Types handles GET /api/v1/plant-protections/types.
func (h *PlantProtectionHandler) Types(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.PlantProtectionTypes())
}

// CultivationOperationHandler handles cultivation operation HTTP requests.
type CultivationOperationHandler struct {
	svc services.CultivationOperationService
}

// NewCultivationOperationHandler creates a new CultivationOperationHandler
// instance.
func NewCultivationOperationHandler(svc services.CultivationOperationService) *CultivationOperationHandler {
	return &CultivationOperationHandler{svc: svc}
}

// Get handles GET /api/v1/cultivation-operations/:id.
func (h *CultivationOperationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	op, err := h.svc.GetCultivationOperation(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, op)
}

// ListByCrop handles GET /api/v1/cultivation-operations/crop/:cropId.
func (h *CultivationOperationHandler) ListByCrop(c *gin.Context) {
	cropID, ok := pathID(c, "cropId")
	if !ok {
		return
	}
	ops, err := h.svc.ListCultivationOperations(c.Request.Context(), middleware.GetUserID(c), cropID)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ops)
}

// Create handles POST /api/v1/cultivation-operations.
func (h *CultivationOperationHandler) Create(c *gin.Context) {
	var input services.CultivationOperationInput
	if !bindJSON(c, &input) {
		return
	}
	op, err := h.svc.CreateCultivationOperation(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, op)
}

// Update handles PUT /api/v1/cultivation-operations/:id.
func (h *CultivationOperationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input services.CultivationOperationInput
	if !bindJSON(c, &input) {
		return
	}
	op, err := h.svc.UpdateCultivationOperation(c.Request.Context(), middleware.GetUserID(c), id, input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, op)
}

// Delete handles DELETE /api/v1/cultivation-operations/:id.
func (h *CultivationOperationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCultivationOperation(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
