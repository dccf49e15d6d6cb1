package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/oficina-poemas/internal/middlewares"
	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("AllowedOrigin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/themes", nil)
		req.Header.Set("Origin", "http://escola.local")

		middlewares.Cors([]string{"http://escola.local"})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "http://escola.local", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("UnknownOrigin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/themes", nil)
		req.Header.Set("Origin", "http://outro.local")

		middlewares.Cors([]string{"http://escola.local"})(next).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/export", nil)
		req.Header.Set("Origin", "http://qualquer.local")

		middlewares.Cors([]string{"*"})(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "Content-Disposition", rec.Header().Get("Access-Control-Expose-Headers"))
	})
}
