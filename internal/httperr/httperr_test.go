package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, expose bool, err error) (int, Body) {
	t.Helper()

	r := gin.New()
	r.Use(Expose(expose))
	r.GET("/", func(c *gin.Context) { Respond(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespondKinds(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{BadRequest("You cannot book your own listing"), http.StatusBadRequest},
		{Unauthorized("Invalid email or password"), http.StatusUnauthorized},
		{Forbidden("Not authorized"), http.StatusForbidden},
		{NotFound("Listing not found"), http.StatusNotFound},
		{Conflict("You have already reviewed this listing"), http.StatusConflict},
		{TooLarge(MessageTooLarge), http.StatusRequestEntityTooLarge},
		{Unavailable("Image storage is not configured"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		status, body := serve(t, false, tt.err)
		assert.Equal(t, tt.status, status)
		assert.False(t, body.Success)
		assert.Equal(t, tt.err.(*Error).Message, body.Message)
	}
}

func TestRespondHidesInternalErrorsInProduction(t *testing.T) {
	cause := errors.New("connection refused")

	status, body := serve(t, false, cause)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, MessageInternal, body.Message)
	assert.Empty(t, body.Error)

	_, body = serve(t, true, fmt.Errorf("load listing: %w", cause))
	assert.Equal(t, "load listing: connection refused", body.Error)
}

func TestRespondValidationFields(t *testing.T) {
	var fields validators.Errors
	fields.Add("budget.max", "Maximum budget must be greater than minimum budget")

	status, body := serve(t, false, fields)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, MessageValidation, body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "budget.max", body.Errors[0].Field)
}

func TestFromBinding(t *testing.T) {
	he := FromBinding(&http.MaxBytesError{Limit: 10})
	assert.Equal(t, KindTooLarge, he.Kind)

	he = FromBinding(errors.New("unexpected EOF"))
	assert.Equal(t, KindBadRequest, he.Kind)
	assert.Equal(t, MessageBadBody, he.Message)
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("Booking not found"))
	assert.True(t, Is(err, KindNotFound))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.False(t, Is(nil, KindInternal))
}
