package handler

import (
	"net/http"
	"strings"

	"github.com/farmchainx/farmchainx/internal/apiserver/middleware"
	"github.com/farmchainx/farmchainx/internal/common/dto"
	"github.com/farmchainx/farmchainx/internal/i18n"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserInfo returns the caller's profile
func (h *Handler) GetUserInfo(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, toUserInfo(user))
}

// UpdateProfile replaces the caller's editable profile fields. Email, role and
// approval are not editable here.
func (h *Handler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		i18n.RespondWithError(c, i18n.ErrorFullNameRequired)
		return
	}

	user.FullName = fullName
	user.Phone = strings.TrimSpace(req.Phone)
	user.Address = strings.TrimSpace(req.Address)
	user.FarmName = strings.TrimSpace(req.FarmName)
	user.FarmSize = strings.TrimSpace(req.FarmSize)
	user.CompanyName = strings.TrimSpace(req.CompanyName)
	user.DeliveryArea = strings.TrimSpace(req.DeliveryArea)
	user.Preferences = strings.TrimSpace(req.Preferences)

	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		h.storeError(c, err, i18n.ErrorUserNotFound, "failed to update profile")
		return
	}

	i18n.Success(i18n.SuccessProfileUpdated).
		With("user", toUserInfo(user)).
		Send(c)
}

// ChangePassword handles password change requests
func (h *Handler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		i18n.RespondWithError(c, i18n.ErrorPasswordRequired)
		return
	}
	if len(req.NewPassword) < minPasswordLength {
		i18n.RespondWithError(c, i18n.ErrorPasswordTooShort)
		return
	}
	if len(req.NewPassword) > maxPasswordLength {
		i18n.RespondWithError(c, i18n.ErrorPasswordTooLong)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidOldPassword)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	user.Password = string(hash)
	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		h.storeError(c, err, i18n.ErrorUserNotFound, "failed to change password")
		return
	}

	i18n.Success(i18n.SuccessPasswordChanged).Send(c)
}
