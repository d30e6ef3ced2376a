package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/farmchainx/farmchainx/internal/apiserver/cache"
	"github.com/farmchainx/farmchainx/internal/apiserver/database"
	"github.com/farmchainx/farmchainx/internal/apiserver/middleware"
	"github.com/farmchainx/farmchainx/internal/common/dto"
	"github.com/farmchainx/farmchainx/internal/i18n"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// applyCropRequest validates req and copies it onto crop
func applyCropRequest(crop *database.Crop, req *dto.CropRequest) *i18n.ErrorWithCode {
	name := strings.TrimSpace(req.Name)
	cropType := strings.TrimSpace(req.Type)
	soil := strings.TrimSpace(req.Soil)
	place := strings.TrimSpace(req.Place)
	if name == "" || cropType == "" || soil == "" || place == "" {
		return i18n.ErrorCropRequiredFields
	}

	sowed, err := time.Parse(dateLayout, strings.TrimSpace(req.SowedDate))
	if err != nil {
		return i18n.ErrorInvalidSowedDate
	}
	if req.HarvestPeriod == nil || *req.HarvestPeriod < 0 || *req.HarvestPeriod > database.MaxHarvestPeriod {
		return i18n.ErrorInvalidHarvestPeriod
	}
	if sowed.AddDate(0, 0, *req.HarvestPeriod).Year() > 9999 {
		return i18n.ErrorInvalidHarvestPeriod
	}

	crop.Name = name
	crop.Type = cropType
	crop.Soil = soil
	crop.Place = place
	crop.Comments = strings.TrimSpace(req.Comments)
	crop.Image = req.Image
	crop.SowedDate = sowed
	crop.HarvestPeriod = *req.HarvestPeriod
	crop.Status = strings.TrimSpace(req.Status)
	if crop.Status == "" {
		crop.Status = database.CropStatusActive
	}
	crop.ComputeHarvest()
	return nil
}

// ownedCrop loads a crop of the caller, answering 404 for other users' crops
func (h *Handler) ownedCrop(c *gin.Context, user *database.User) (*database.Crop, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}
	crop, err := h.db.GetCrop(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, i18n.ErrorCropNotFound, "failed to get crop")
		return nil, false
	}
	if crop.UserID != user.ID {
		i18n.RespondWithError(c, i18n.ErrorCropNotFound)
		return nil, false
	}
	return crop, true
}

// CreateCrop records a new crop for the caller
func (h *Handler) CreateCrop(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}

	var req dto.CropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}

	crop := &database.Crop{UserID: user.ID}
	if verr := applyCropRequest(crop, &req); verr != nil {
		i18n.RespondWithError(c, verr)
		return
	}

	ctx := c.Request.Context()
	if err := h.db.CreateCrop(ctx, crop); err != nil {
		h.storeError(c, err, nil, "failed to create crop")
		return
	}

	h.metrics.CropCreated()
	h.cache.Invalidate(ctx, cache.CropStatsKey(user.ID))
	h.logger.Debug("crop created", zap.Uint("crop_id", crop.ID), zap.Uint("user_id", user.ID))

	i18n.Created(i18n.SuccessCropCreated).
		With("crop", toCropInfo(crop)).
		Send(c)
}

// ListCrops lists the caller's crops, optionally filtered by ?status=
func (h *Handler) ListCrops(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}

	crops, err := h.db.ListCropsByUser(c.Request.Context(), user.ID, strings.TrimSpace(c.Query("status")))
	if err != nil {
		h.storeError(c, err, nil, "failed to list crops")
		return
	}
	c.JSON(http.StatusOK, toCropInfos(crops))
}

// GetCrop returns one of the caller's crops
func (h *Handler) GetCrop(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}
	crop, ok := h.ownedCrop(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toCropInfo(crop))
}

// UpdateCrop fully replaces one of the caller's crops
func (h *Handler) UpdateCrop(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}
	crop, ok := h.ownedCrop(c, user)
	if !ok {
		return
	}

	var req dto.CropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}
	if verr := applyCropRequest(crop, &req); verr != nil {
		i18n.RespondWithError(c, verr)
		return
	}

	ctx := c.Request.Context()
	if err := h.db.UpdateCrop(ctx, crop); err != nil {
		h.storeError(c, err, i18n.ErrorCropNotFound, "failed to update crop")
		return
	}
	h.cache.Invalidate(ctx, cache.CropStatsKey(user.ID))

	i18n.Success(i18n.SuccessCropUpdated).
		With("crop", toCropInfo(crop)).
		Send(c)
}

// DeleteCrop removes one of the caller's crops
func (h *Handler) DeleteCrop(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}
	crop, ok := h.ownedCrop(c, user)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.db.DeleteCrop(ctx, crop.ID); err != nil {
		h.storeError(c, err, i18n.ErrorCropNotFound, "failed to delete crop")
		return
	}
	h.cache.Invalidate(ctx, cache.CropStatsKey(user.ID))

	i18n.Success(i18n.SuccessCropDeleted).Send(c)
}

// CropStats returns the caller's cached crop dashboard
func (h *Handler) CropStats(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}

	today := database.DateOnly(h.now())
	stats, err := cache.Load(c.Request.Context(), h.cache, cache.CropStatsKey(user.ID),
		func(ctx context.Context) (*database.CropStats, error) {
			return h.db.GetCropStats(ctx, user.ID, today)
		})
	if err != nil {
		h.storeError(c, err, nil, "failed to get crop stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
