//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pos-loyalty/internal/handler/httperr"
	"pos-loyalty/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.RequestLogging(logger), middleware.ErrorHandler())
	r.GET("/ok/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("bad limit"), "Invalid limit", nil)
	})
	r.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(errors.New("unexpected"))
	})
	r.GET("/panic", func(c *gin.Context) { panic("till exploded") })
	return r
}

func TestRequestLogging(t *testing.T) {
	t.Run("generates an id and logs the route", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedEngine(&buf)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok/42", nil))

		id := w.Header().Get("X-Request-ID")
		assert.Len(t, id, 27, "ksuid string")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, id, line["request_id"])
		assert.Equal(t, "/ok/:id", line["route"])
		assert.Equal(t, "42", line["target_id"])
		assert.Equal(t, "INFO", line["level"])
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		var buf bytes.Buffer
		r := newLoggedEngine(&buf)

		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		req.Header.Set("X-Request-ID", "till-7-000123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "till-7-000123", w.Header().Get("X-Request-ID"))

		var body httperr.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, httperr.CodeInvalidRequest, body.Error.Code)
		assert.Equal(t, "Invalid limit", body.Error.Message)
		assert.Equal(t, "till-7-000123", body.RequestID)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), "bad limit")
	})
}

func TestErrorHandlerFallsBackToInternal(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedEngine(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recorded", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, httperr.CodeInternal, body.Error.Code)
}

func TestCustomRecovery(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedEngine(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error.Message)
}
