package i18n

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorWithCode_Basics(t *testing.T) {
	assert.Equal(t, "Email already exists", ErrorEmailExists.Error())
	assert.Equal(t, ErrorBadRequest, ErrorEmailExists.Code)
	assert.Equal(t, TagEmailExists, ErrorEmailExists.Tag)
	assert.Equal(t, TagInvalidCredentials, ErrorInvalidCredentials.Tag)
	assert.Equal(t, TagAccountPending, ErrorAccountPending.Tag)
}

func TestErrorWithCode_CopiesDoNotMutateCatalog(t *testing.T) {
	withRole := ErrorInsufficientRole.WithParam("Role", "CONSUMER")
	assert.Equal(t, "Access denied for role CONSUMER", withRole.Error())
	assert.Empty(t, ErrorInsufficientRole.Data)

	forbidden := ErrorAccountPending.WithHttpCode(ErrorForbidden)
	assert.Equal(t, ErrorForbidden, forbidden.Code)
	assert.Equal(t, ErrorBadRequest, ErrorAccountPending.Code)
	assert.Equal(t, TagAccountPending, forbidden.Tag)

	assert.True(t, errors.Is(forbidden, ErrorAccountPending))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", withRole), ErrorInsufficientRole))
	assert.False(t, errors.Is(forbidden, ErrorEmailExists))
}

func TestI18nError_FallbackToDefaultMessage(t *testing.T) {
	e := &I18nError{MessageID: "NotInCatalog", DefaultMessage: "Item {{.ID}} missing"}
	assert.Equal(t, "Item 7 missing", e.WithParam("ID", 7).Error())
}

func TestTranslateError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, "", TranslateError(c, nil))
	assert.Equal(t, "Crop not found", TranslateError(c, fmt.Errorf("load: %w", ErrorCropNotFound)))
	assert.Equal(t, "plain", TranslateError(c, errors.New("plain")))

	ec, ok := AsErrorWithCode(fmt.Errorf("x: %w", ErrorOrderNotFound))
	assert.True(t, ok)
	assert.Equal(t, ErrorNotFound, ec.Code)
}
