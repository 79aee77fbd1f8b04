package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/flatmate-finder/internal/logger"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

const (
	MessageInternal   = "Something went wrong!"
	MessageValidation = "Validation failed"
	MessageBadBody    = "Invalid request body"
	MessageTooLarge   = "Request body too large"

	exposeKey = "httperr.expose"
)

type Body struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Errors  validators.Errors `json:"errors,omitempty"`
}

// Expose controls whether Respond includes the underlying error text in
// 500 responses. It is installed once per engine.
func Expose(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(exposeKey, enabled)
		c.Next()
	}
}

// FromBinding classifies an error returned by gin's ShouldBind* helpers.
func FromBinding(err error) *Error {
	if fields, ok := validators.FromValidator(err); ok {
		return Validation(MessageValidation, fields)
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return TooLarge(MessageTooLarge)
	}

	return &Error{Kind: KindBadRequest, Message: MessageBadBody, Cause: err}
}

// Respond writes err as the standard error envelope and aborts the chain.
func Respond(c *gin.Context, err error) {
	var he *Error
	if !errors.As(err, &he) {
		var fields validators.Errors
		if errors.As(err, &fields) {
			he = Validation(MessageValidation, fields)
		} else {
			he = Internal(err)
		}
	}

	body := Body{
		Success: false,
		Message: he.Message,
		Errors:  he.Fields,
	}

	if he.Kind == KindInternal {
		logger.FromContext(c.Request.Context()).Error(
			"request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		if c.GetBool(exposeKey) && he.Cause != nil {
			body.Error = he.Cause.Error()
		}
	} else if he.Kind == KindBadRequest && he.Cause != nil && c.GetBool(exposeKey) {
		body.Error = he.Cause.Error()
	}

	c.AbortWithStatusJSON(he.Kind.Status(), body)
}
