package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/dto"
	"github.com/KhaledAshrafH/Task-Management-System/internal/adapter/http/middleware"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
	"github.com/KhaledAshrafH/Task-Management-System/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), domain.RegisterUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Username:    result.User.Username,
		AccessToken: result.AccessToken,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Username:    result.User.Username,
		AccessToken: result.AccessToken,
	})
}

// Logout revokes the presented credential's session. It succeeds even when
// no credential is presented, so clients can always call it safely.
func (h *AuthHandler) Logout(c *gin.Context) {
	raw := middleware.BearerToken(c)
	if err := h.authService.Logout(c.Request.Context(), raw); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
