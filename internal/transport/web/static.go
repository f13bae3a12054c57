package web

import "net/http"

// Static serves the embedded assets under /static/.
func Static() http.Handler {
	files := http.StripPrefix("/static/", http.FileServerFS(staticFiles()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=300")
		files.ServeHTTP(w, r)
	})
}
