package i18n

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RespondWithError writes {"status":"error","error":<message>} plus "code"
// when the error carries a tag. Untyped errors become a 500.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	statusCode := http.StatusInternalServerError
	body := gin.H{"status": StatusError}

	if ec, ok := AsErrorWithCode(err); ok {
		statusCode = int(ec.Code)
		if ec.Tag != "" {
			body["code"] = ec.Tag
		}
		body["error"] = ec.TranslateByContext(c)
	} else {
		body["error"] = TranslateMessage(c, ErrInternalServer.MessageID, nil)
	}

	c.AbortWithStatusJSON(statusCode, body)
}

// RespondWithSuccess sends a success HTTP response with an internationalized message.
// data is used both as template input and as top level fields; map payloads are
// merged into the body, anything else lands under "data".
func RespondWithSuccess(c *gin.Context, statusCode int, msgID string, data map[string]any, payload any) {
	response := gin.H{
		"status":  StatusSuccess,
		"message": TranslateMessage(c, msgID, data),
	}

	for k, v := range data {
		response[k] = v
	}

	if payload != nil {
		switch p := payload.(type) {
		case map[string]any:
			for k, v := range p {
				response[k] = v
			}
		case gin.H:
			for k, v := range p {
				response[k] = v
			}
		default:
			response["data"] = payload
		}
	}

	c.JSON(statusCode, response)
}

// SuccessResponse represents a response with success message
type SuccessResponse struct {
	StatusCode int
	MsgID      string
	Data       map[string]any
	Payload    any
}

// With adds a key-value pair to the response data
func (r *SuccessResponse) With(key string, value any) *SuccessResponse {
	if r.Data == nil {
		r.Data = make(map[string]any)
	}
	r.Data[key] = value
	return r
}

// WithPayload sets the payload for the response
func (r *SuccessResponse) WithPayload(payload any) *SuccessResponse {
	r.Payload = payload
	return r
}

// Send sends the response to the client
func (r *SuccessResponse) Send(c *gin.Context) {
	RespondWithSuccess(c, r.StatusCode, r.MsgID, r.Data, r.Payload)
}

// Success creates a new success response with status code 200
func Success(msgID string) *SuccessResponse {
	return &SuccessResponse{StatusCode: http.StatusOK, MsgID: msgID}
}

// Created creates a new success response with status code 201
func Created(msgID string) *SuccessResponse {
	return &SuccessResponse{StatusCode: http.StatusCreated, MsgID: msgID}
}
