package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/farmchainx/farmchainx/internal/apiserver/cache"
	"github.com/farmchainx/farmchainx/internal/apiserver/database"
	"github.com/farmchainx/farmchainx/internal/i18n"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errCannotDeleteAdmin = errors.New("cannot delete admin")

// AdminHealth reports database reachability and the account count
func (h *Handler) AdminHealth(c *gin.Context) {
	count, err := h.db.CountUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("admin health check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "ERROR",
			"message": i18n.TranslateError(c, i18n.ErrorDatabaseUnavailable),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "OK",
		"service":    "Admin Controller",
		"database":   "Connected",
		"timestamp":  timestamp(h.now()),
		"totalUsers": count,
	})
}

// UserStats returns cached account counts
func (h *Handler) UserStats(c *gin.Context) {
	stats, err := cache.Load(c.Request.Context(), h.cache, cache.UserStatsKey(), h.db.GetUserStats)
	if err != nil {
		h.storeError(c, err, nil, "failed to get user stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// PendingApprovals lists accounts awaiting approval
func (h *Handler) PendingApprovals(c *gin.Context) {
	users, err := h.db.ListUsersByApproval(c.Request.Context(), false)
	if err != nil {
		h.storeError(c, err, nil, "failed to list pending users")
		return
	}
	c.JSON(http.StatusOK, toUserInfos(users))
}

// AllUsers lists every account
func (h *Handler) AllUsers(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		h.storeError(c, err, nil, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, toUserInfos(users))
}

// ApproveUser marks an account as approved
func (h *Handler) ApproveUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.db.SetUserApproved(ctx, id, true); err != nil {
		h.storeError(c, err, i18n.ErrorUserNotFound, "failed to approve user")
		return
	}
	user, err := h.db.GetUserByID(ctx, id)
	if err != nil {
		h.storeError(c, err, i18n.ErrorUserNotFound, "failed to reload user")
		return
	}

	h.cache.Invalidate(ctx, cache.UserStatsKey())
	h.logger.Info("user approved", zap.Uint("user_id", id))

	i18n.Success(i18n.SuccessUserApproved).
		With("user", toUserInfo(user)).
		Send(c)
}

// RejectUser deletes a non-admin account with its crops and orders
func (h *Handler) RejectUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	err := h.db.Transaction(ctx, func(ctx context.Context) error {
		user, err := h.db.GetUserByID(ctx, id)
		if err != nil {
			return err
		}
		if user.Role == database.RoleAdmin {
			return errCannotDeleteAdmin
		}
		return h.db.DeleteUser(ctx, id)
	})
	if errors.Is(err, errCannotDeleteAdmin) {
		i18n.RespondWithError(c, i18n.ErrorCannotDeleteAdmin)
		return
	}
	if err != nil {
		h.storeError(c, err, i18n.ErrorUserNotFound, "failed to reject user")
		return
	}

	h.cache.Invalidate(ctx, cache.UserStatsKey(), cache.CropStatsKey(id))
	h.logger.Info("user rejected", zap.Uint("user_id", id))

	i18n.Success(i18n.SuccessUserRejected).Send(c)
}
