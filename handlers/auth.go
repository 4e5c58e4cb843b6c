package handlers

import (
	"context"
	"errors"
	"net/http"

	"solarcare/models"
	"solarcare/services/auth"
	"solarcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthService is the login surface the HTTP layer depends on.
type AuthService interface {
	RequestOTP(ctx context.Context, phone string) (*models.OTPChallenge, error)
	VerifyOTP(ctx context.Context, requestID, code string) (*models.AuthResult, error)
	ValidateToken(token string) (string, error)
}

type AuthHandler struct {
	AuthService AuthService
	Logger      *zap.Logger
}

// RequestOTPHandler handles POST /api/auth/otp.
func (h *AuthHandler) RequestOTPHandler(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	ch, err := h.AuthService.RequestOTP(c.Request.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPhone) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid phone number", err.Error())
			return
		}
		getLogger(c, h.Logger).Error("Failed to issue OTP", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not send OTP", "")
		return
	}
	c.JSON(http.StatusOK, ch)
}

// VerifyOTPHandler handles POST /api/auth/verify.
func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	var req struct {
		RequestID string `json:"requestId" binding:"required"`
		OTP       string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	res, err := h.AuthService.VerifyOTP(c.Request.Context(), req.RequestID, req.OTP)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, res)
	case errors.Is(err, auth.ErrOTPNotFound):
		utils.JSONError(c, http.StatusNotFound, "OTP expired or not found", "")
	case errors.Is(err, auth.ErrOTPMismatch):
		utils.JSONError(c, http.StatusUnauthorized, "Incorrect OTP", "")
	case errors.Is(err, auth.ErrTooManyAttempts):
		utils.JSONError(c, http.StatusTooManyRequests, "Too many attempts, request a new OTP", "")
	default:
		getLogger(c, h.Logger).Error("OTP verification failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Could not verify OTP", "")
	}
}
