package errors

import (
	"net/http"

	"codeberg.org/randseq/server/internal/logger"
	"codeberg.org/randseq/server/internal/sequence"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.Generation() for anything returned by the sequence package;
//     it picks 400 or 500 from the error kind
//   - Use errors.InternalError(), errors.BadRequest(), etc. for other failures
//     These functions handle both logging and HTTP response automatically
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For internal packages:
//   - Return typed or wrapped errors (fmt.Errorf("context: %w", err))
//   - Let the caller (handler) decide how to log and respond

// standard error codes
const (
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeTooManyRequests = "too_many_requests"
)

// writes the response for an error returned by sequence generation:
// validation kinds become 400 with the kind as code, anything else is a 500
func Generation(c *gin.Context, err error) {
	kind := sequence.KindOf(err)
	if kind == sequence.KindUnexpected {
		InternalError(c, "failed to generate numbers", err)
		return
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   string(kind),
		Message: err.Error(),
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	// add details if error provided
	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	info := classifyError(err)

	// log full error server-side with context
	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"category", info.category,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	// return sanitized error to client
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: info.sanitized,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}
