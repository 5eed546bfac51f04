package middleware

import (
	"net/http"
	"os"
	"path/filepath"
)

const placeholderPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>PlayDen POS</title></head>
<body style="font-family: Arial, sans-serif; margin: 48px; color: #333">
<h1>PlayDen POS</h1>
<p>No counter UI build found. The API is up at <code>/api/v1</code>, docs at <code>/swagger/index.html</code>.</p>
</body>
</html>`

// StaticFileServer serves the counter UI. Misses fall back to index.html so
// the single-page frontend owns its own routes; with no frontend build
// present a placeholder page points at the API instead of a bare 404.
func StaticFileServer(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			w.Header().Set("Cache-Control", "public, max-age=3600")
			http.ServeFile(w, r, path)
			return
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(placeholderPage))
	})
}

// InvoiceFileServer serves rendered invoice files. Invoices never change
// once written, so clients may cache them hard.
func InvoiceFileServer(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=2592000")
		http.ServeFile(w, r, path)
	})
}
