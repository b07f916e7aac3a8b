package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/service"
)

// AuthHandler serves registration, login, account deletion and the
// password-reset endpoints.
type AuthHandler struct {
	authService  *service.AuthService
	resetService *service.ResetService
}

func NewAuthHandler(authService *service.AuthService, resetService *service.ResetService) *AuthHandler {
	return &AuthHandler{authService: authService, resetService: resetService}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Campos vacíos")
		return
	}

	user, signed, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password, c.ClientIP())
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	logrus.WithField("user_id", user.ID).Info("Handler.Register: user registered")
	SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Usuario creado exitosamente",
		"token":   signed,
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Campos vacíos")
		return
	}

	signed, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Login exitoso",
		"token":   signed,
	})
}

type DeleteAccountRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Delete(c *gin.Context) {
	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Campos vacíos")
		return
	}

	if err := h.authService.Delete(c.Request.Context(), req.Email, req.Password); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"message": "Usuario eliminado exitosamente"})
}

type ResetRequest struct {
	Email string `json:"email" binding:"required"`
}

// RequestReset always answers the same 200 whether or not the email maps to an
// account, so the endpoint cannot be used to enumerate users.
func (h *AuthHandler) RequestReset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Campos vacíos")
		return
	}

	if err := h.resetService.Request(c.Request.Context(), req.Email); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Si la cuenta existe, se ha enviado un correo de restablecimiento",
	})
}

type ConfirmResetRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) ConfirmReset(c *gin.Context) {
	var req ConfirmResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Campos vacíos")
		return
	}

	if err := h.resetService.Confirm(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"message": "Contraseña actualizada"})
}
