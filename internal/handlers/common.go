package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medibill-api/internal/logger"
	"medibill-api/internal/services"
)

var errInvalidPagination = errors.New("invalid pagination parameters")

// ErrorBody is the error envelope returned on every failed request.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// sendError is a helper function that combines logging and error response
func sendError(c *gin.Context, statusCode int, body ErrorBody, err error) {
	if statusCode >= http.StatusInternalServerError {
		logger.Error(body.Message,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	}
	c.JSON(statusCode, ErrorResponse{Error: body})
}

// sendBadRequest reports a malformed request before it reaches a service.
func sendBadRequest(c *gin.Context, field, message string) {
	sendError(c, http.StatusBadRequest, ErrorBody{
		Kind:    services.KindValidation,
		Message: message,
		Field:   field,
	}, nil)
}

// handleServiceError maps a service error kind onto an HTTP status. Internal
// details are logged and replaced with a generic message.
func handleServiceError(c *gin.Context, err error) {
	kind := services.Kind(err)
	body := ErrorBody{Kind: kind, Message: err.Error()}

	var ve *services.ValidationError
	if kind == services.KindValidation && errors.As(err, &ve) {
		body.Field = ve.Field
		body.Message = ve.Message
	}

	switch kind {
	case services.KindValidation:
		sendError(c, http.StatusBadRequest, body, err)
	case services.KindNotFound:
		sendError(c, http.StatusNotFound, body, err)
	case services.KindConflict:
		sendError(c, http.StatusConflict, body, err)
	default:
		body.Message = "internal server error"
		sendError(c, http.StatusInternalServerError, body, err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}

// actorFrom identifies the acting staff member for audit trails. Requests
// without the header are attributed to "system".
func actorFrom(c *gin.Context) string {
	if actor := c.GetHeader("X-Actor-ID"); actor != "" {
		return actor
	}
	return "system"
}
