package handler

import (
	"net/http"

	"github.com/farmchainx/farmchainx/internal/i18n"
	"github.com/farmchainx/farmchainx/pkg/version"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health reports service and database status, answering 503 when the
// database does not respond
func (h *Handler) Health(c *gin.Context) {
	body := gin.H{
		"service":   "FarmChainX Backend",
		"version":   version.Get(),
		"timestamp": timestamp(h.now()),
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		body["status"] = "DOWN"
		body["database"] = "DOWN"
		body["error"] = i18n.TranslateError(c, i18n.ErrorDatabaseUnavailable)
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	body["status"] = "UP"
	body["database"] = "UP"
	body["message"] = i18n.TranslateMessage(c, i18n.SuccessServiceRunning, nil)
	c.JSON(http.StatusOK, body)
}

// Test is a liveness probe without dependencies
func (h *Handler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   i18n.TranslateMessage(c, i18n.SuccessEndpointWorking, nil),
		"timestamp": timestamp(h.now()),
	})
}

// TestStatus describes the running service
func (h *Handler) TestStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   "Test Controller",
		"version":   version.Get(),
		"message":   i18n.TranslateMessage(c, i18n.SuccessServiceRunning, nil),
		"timestamp": timestamp(h.now()),
	})
}

// TestPublic confirms that unauthenticated routes are reachable
func (h *Handler) TestPublic(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   i18n.TranslateMessage(c, i18n.SuccessPublicEndpoint, nil),
		"timestamp": timestamp(h.now()),
	})
}

// TestEcho returns the posted JSON object
func (h *Handler) TestEcho(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"received":  payload,
		"message":   i18n.TranslateMessage(c, i18n.SuccessEcho, nil),
		"timestamp": timestamp(h.now()),
	})
}

// NotFound answers unknown routes with a JSON body
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":    i18n.StatusError,
		"message":   i18n.TranslateError(c, i18n.ErrEndpoint),
		"path":      c.Request.URL.Path,
		"timestamp": timestamp(h.now()),
	})
}
