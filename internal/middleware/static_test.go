package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticFileServer(t *testing.T) {
	t.Run("serves existing files with caching", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

		req := httptest.NewRequest("GET", "/app.js", nil)
		w := httptest.NewRecorder()
		StaticFileServer(dir).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
		assert.Equal(t, "console.log(1)", w.Body.String())
	})

	t.Run("misses fall back to index.html", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>counter</html>"), 0o644))

		req := httptest.NewRequest("GET", "/sessions/active", nil)
		w := httptest.NewRecorder()
		StaticFileServer(dir).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "counter")
	})

	t.Run("placeholder without a frontend build", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		StaticFileServer(t.TempDir()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/api/v1")
	})

	t.Run("blocks path traversal", func(t *testing.T) {
		dir := t.TempDir()
		secret := filepath.Join(dir, "..", "secret.txt")
		assert.NoError(t, os.WriteFile(secret, []byte("hidden"), 0o644))

		req := httptest.NewRequest("GET", "/../secret.txt", nil)
		w := httptest.NewRecorder()
		StaticFileServer(dir).ServeHTTP(w, req)

		assert.NotContains(t, w.Body.String(), "hidden")
	})
}

func TestInvoiceFileServer(t *testing.T) {
	t.Run("serves rendered invoices immutable", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "abc123.html"), []byte("<html>invoice</html>"), 0o644))

		req := httptest.NewRequest("GET", "/abc123.html", nil)
		w := httptest.NewRecorder()
		InvoiceFileServer(dir).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "public, max-age=2592000", w.Header().Get("Cache-Control"))
	})

	t.Run("missing invoice is a 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/never-was.pdf", nil)
		w := httptest.NewRecorder()
		InvoiceFileServer(t.TempDir()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("directory is a 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		InvoiceFileServer(t.TempDir()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
}
