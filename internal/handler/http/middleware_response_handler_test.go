package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter(t *testing.T) {
	t.Run("first status wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusAccepted)
		w.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusAccepted, w.status)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("write implies 200 and accumulates size", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		_, _ = w.Write([]byte("hello "))
		_, _ = w.Write([]byte("world"))

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 11, w.size)
		assert.Equal(t, "hello world", rec.Body.String())
	})

	t.Run("unwrap exposes the underlying writer", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		assert.Same(t, rec, w.Unwrap())
	})
}
