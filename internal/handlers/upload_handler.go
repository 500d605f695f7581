package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/farmledger/api/internal/errors"
	"github.com/farmledger/api/internal/importer"
	"github.com/farmledger/api/internal/middleware"
)

// UploadHandler handles registry file uploads.
type UploadHandler struct {
	gml *importer.GML
	csv *importer.CSV
}

// NewUploadHandler creates a new UploadHandler instance.
func NewUploadHandler(gml *importer.GML, csv *importer.CSV) *UploadHandler {
	return &UploadHandler{gml: gml, csv: csv}
}

// UploadGML handles POST /api/v1/uploads/gml/:farmId.
// The declaration file comes as the multipart form field "file".
func (h *UploadHandler) UploadGML(c *gin.Context) {
	farmID, ok := pathID(c, "farmId")
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, importer.ErrEmptyFile.Error(), nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		apierrors.InternalServerError(c, "Failed to read uploaded file", err)
		return
	}
	defer file.Close()

	result, err := h.gml.Import(c.Request.Context(), middleware.GetUserID(c), farmID, header.Filename, header.Size, file)
	if err != nil {
		importError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "File uploaded and processed successfully",
		"fileName": header.Filename,
		"result":   result,
	})
}

// UploadCSV handles POST /api/v1/uploads/csv/:farmId.
func (h *UploadHandler) UploadCSV(c *gin.Context) {
	farmID, ok := pathID(c, "farmId")
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, importer.ErrEmptyFile.Error(), nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		apierrors.InternalServerError(c, "Failed to read uploaded file", err)
		return
	}
	defer file.Close()

	result, err := h.csv.Import(c.Request.Context(), middleware.GetUserID(c), farmID, header.Filename, header.Size, file)
	if err != nil {
		importError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "File uploaded and processed successfully",
		"fileName": header.Filename,
		"result":   result,
	})
}

func importError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, importer.ErrEmptyFile),
		errors.Is(err, importer.ErrGMLExtension),
		errors.Is(err, importer.ErrCSVExtension),
		errors.Is(err, importer.ErrMalformedPayload):
		apierrors.BadRequest(c, err.Error(), nil)
	case errors.Is(err, importer.ErrFarmNotFound):
		apierrors.NotFound(c, "Farm not found")
	case errors.Is(err, importer.ErrFarmNotOwned):
		apierrors.Forbidden(c, "Farm belongs to another user")
	default:
		apierrors.InternalServerError(c, "Import failed", err)
	}
}
