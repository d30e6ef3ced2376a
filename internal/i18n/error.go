package i18n

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents an HTTP status code
type ErrorCode int

const (
	ErrorBadRequest         ErrorCode = http.StatusBadRequest
	ErrorUnauthorized       ErrorCode = http.StatusUnauthorized
	ErrorForbidden          ErrorCode = http.StatusForbidden
	ErrorNotFound           ErrorCode = http.StatusNotFound
	ErrorConflict           ErrorCode = http.StatusConflict
	ErrorInternalServer     ErrorCode = http.StatusInternalServerError
	ErrorServiceUnavailable ErrorCode = http.StatusServiceUnavailable
)

// I18nError represents an internationalized error
type I18nError struct {
	// MessageID is the key used for translation lookup
	MessageID string
	// DefaultMessage is used when translation is not available
	DefaultMessage string
	// Data holds template parameters for the message
	Data map[string]any
}

// New creates a new I18nError with the given message ID
func New(messageID string) *I18nError {
	return &I18nError{
		MessageID:      messageID,
		DefaultMessage: messageID,
	}
}

// WithParam returns a copy of the error carrying an extra template parameter
func (e *I18nError) WithParam(key string, value any) *I18nError {
	cp := *e
	cp.Data = maps.Clone(e.Data)
	if cp.Data == nil {
		cp.Data = make(map[string]any)
	}
	cp.Data[key] = value
	return &cp
}

// Error renders the message in the default language
func (e *I18nError) Error() string {
	if translated := GetTranslator().Translate(e.MessageID, defaultLang, e.Data); translated != e.MessageID {
		return translated
	}

	msg := e.DefaultMessage
	for k, v := range e.Data {
		msg = strings.ReplaceAll(msg, fmt.Sprintf("{{.%s}}", k), fmt.Sprintf("%v", v))
	}
	return msg
}

// TranslateByContext translates the error based on the context's language preference
func (e *I18nError) TranslateByContext(c *gin.Context) string {
	if translated := GetTranslator().Translate(e.MessageID, contextLang(c), e.Data); translated != e.MessageID {
		return translated
	}
	return e.Error()
}

// ErrorWithCode is an error with an HTTP status and an optional machine
// readable tag such as EMAIL_EXISTS.
type ErrorWithCode struct {
	*I18nError
	Code ErrorCode
	Tag  string
}

// NewErrorWithCode creates a new error with a code
func NewErrorWithCode(messageID string, code ErrorCode) *ErrorWithCode {
	return &ErrorWithCode{
		I18nError: New(messageID),
		Code:      code,
	}
}

// WithParam returns a copy carrying an extra template parameter
func (e *ErrorWithCode) WithParam(key string, value any) *ErrorWithCode {
	return &ErrorWithCode{I18nError: e.I18nError.WithParam(key, value), Code: e.Code, Tag: e.Tag}
}

// WithHttpCode returns a copy with a different HTTP status
func (e *ErrorWithCode) WithHttpCode(code ErrorCode) *ErrorWithCode {
	return &ErrorWithCode{I18nError: e.I18nError, Code: code, Tag: e.Tag}
}

// WithTag returns a copy carrying a response tag
func (e *ErrorWithCode) WithTag(tag string) *ErrorWithCode {
	return &ErrorWithCode{I18nError: e.I18nError, Code: e.Code, Tag: tag}
}

// Is matches errors sharing the same message ID, so copies made by
// WithParam or WithHttpCode still match their catalog entry.
func (e *ErrorWithCode) Is(target error) bool {
	var t *ErrorWithCode
	if errors.As(target, &t) {
		return t.MessageID == e.MessageID
	}
	return false
}

// AsErrorWithCode extracts an *ErrorWithCode from err's chain
func AsErrorWithCode(err error) (*ErrorWithCode, bool) {
	var ec *ErrorWithCode
	if errors.As(err, &ec) {
		return ec, true
	}
	return nil, false
}

// TranslateError translates an error using the context's language preference
func TranslateError(c *gin.Context, err error) string {
	if err == nil {
		return ""
	}

	if ec, ok := AsErrorWithCode(err); ok {
		return ec.TranslateByContext(c)
	}
	var i18nErr *I18nError
	if errors.As(err, &i18nErr) {
		return i18nErr.TranslateByContext(c)
	}
	return err.Error()
}
