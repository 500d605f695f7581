package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apierrors "github.com/farmledger/api/internal/errors"
	"github.com/farmledger/api/internal/services"
)

// bindJSON binds the request body into obj, writing the error response
// itself when binding fails. Returns false when the request was rejected.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			apierrors.ValidationError(c, validationErrors)
			return false
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return false
	}
	return true
}

// pathID parses a UUID path parameter, writing the error response itself
// when the value is malformed. Returns uuid.Nil and false on rejection.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name+" parameter", nil)
		return uuid.Nil, false
	}
	return id, true
}

// serviceError maps service-level sentinel errors onto the HTTP error
// envelope. Anything unrecognized becomes a 500.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, "Resource not found")
	case errors.Is(err, services.ErrOwnership):
		apierrors.Forbidden(c, "Resource belongs to another user")
	case errors.Is(err, services.ErrInvalidInput):
		apierrors.BadRequest(c, err.Error(), nil)
	case errors.Is(err, services.ErrDuplicate):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrCredentials):
		apierrors.Unauthorized(c, "Invalid email or password")
	default:
		apierrors.InternalServerError(c, "Internal server error", err)
	}
}
