package apperrors

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

func TestWithDetailsDoesNotMutatePredefined(t *testing.T) {
	withDetails := ErrPayloadTooLarge.WithDetails(map[string]int64{"max": 10})

	assert.Nil(t, ErrPayloadTooLarge.Details)
	assert.NotNil(t, withDetails.Details)
	assert.Equal(t, ErrPayloadTooLarge.Code, withDetails.Code)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := StorageError(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)
	assert.Contains(t, err.Error(), "disk full")
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("AppError keeps status and code", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

		HandleError(c, ErrUnsupportedMediaType)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		var body map[string]map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, string(CodeUnsupportedMediaType), body["error"]["code"])
		assert.NotEmpty(t, body["error"]["message"])
	})

	t.Run("plain error becomes 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		HandleError(c, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}
