package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-storefront/internal/domains/auth/model"
	"bookstore-storefront/internal/domains/auth/service"
	"bookstore-storefront/internal/shared/response"
	"bookstore-storefront/pkg/apiclient"
)

type AuthHandler struct {
	service service.ServiceInterface
}

func NewAuthHandler(service service.ServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		response.InternalServerError(c, "Failed to log out")
		return
	}
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context())
	if err != nil {
		if errors.Is(err, model.ErrSessionExpired) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.Unauthorized(c, "Not logged in")
		return
	}
	response.Success(c, http.StatusOK, "OK", user)
}
