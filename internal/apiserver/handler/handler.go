package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/farmchainx/farmchainx/internal/apiserver/cache"
	"github.com/farmchainx/farmchainx/internal/apiserver/database"
	"github.com/farmchainx/farmchainx/internal/auth/jwt"
	"github.com/farmchainx/farmchainx/internal/i18n"
	"github.com/farmchainx/farmchainx/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves every REST endpoint of the API server
type Handler struct {
	db         database.Database
	jwtService *jwt.Service
	cache      *cache.Manager
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewHandler creates a new handler. cacheManager and m may be nil.
func NewHandler(db database.Database, jwtService *jwt.Service, cacheManager *cache.Manager, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		db:         db,
		jwtService: jwtService,
		cache:      cacheManager,
		metrics:    m,
		logger:     logger.Named("handler"),
		now:        time.Now,
	}
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return 0, false
	}
	return uint(id), true
}

// storeError maps a storage error to a response, using notFound for missing rows
func (h *Handler) storeError(c *gin.Context, err error, notFound *i18n.ErrorWithCode, msg string) {
	if errors.Is(err, database.ErrNotFound) && notFound != nil {
		i18n.RespondWithError(c, notFound)
		return
	}
	h.logger.Error(msg, zap.String("path", c.FullPath()), zap.Error(err))
	i18n.RespondWithError(c, i18n.ErrInternalServer)
}

func timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
