package i18n

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespondWithError_TaggedError(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) { RespondWithError(c, ErrorEmailExists) })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Email already exists", body["error"])
	assert.Equal(t, "EMAIL_EXISTS", body["code"])
}

func TestRespondWithError_UntypedErrorHidesDetails(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) { RespondWithError(c, errors.New("dial tcp: refused")) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, body, "code")
}

func TestRespondWithSuccess_MergesDataAndPayload(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		Success(SuccessOrderStatusUpdated).
			With("orderStatus", "SHIPPED").
			WithPayload(gin.H{"order": gin.H{"id": 1}}).
			Send(c)
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Order status updated to SHIPPED", body["message"])
	assert.Equal(t, "SHIPPED", body["orderStatus"])
	assert.Contains(t, body, "order")
}

func TestRespondWithSuccess_NonMapPayload(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		Created(SuccessCropCreated).WithPayload([]int{1, 2}).Send(c)
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []any{float64(1), float64(2)}, body["data"])
}
