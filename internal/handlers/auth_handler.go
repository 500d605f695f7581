package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farmledger/api/internal/services"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	users services.UserService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(users services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var input services.RegisterInput
	if !bindJSON(c, &input) {
		return
	}
	user, err := h.users.Register(c.Request.Context(), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input services.LoginInput
	if !bindJSON(c, &input) {
		return
	}
	result, err := h.users.Login(c.Request.Context(), input)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
