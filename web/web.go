// Package web embeds the browser UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"os"
)

//go:embed static
var assets embed.FS

// Static returns the embedded UI files rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// The directory is compiled in; this cannot fail at runtime.
		panic(err)
	}
	return sub
}

// Handler serves the UI from dir, or from the embedded assets when dir is empty.
// Unknown paths fall back to index.html.
func Handler(dir string) http.Handler {
	var files fs.FS = Static()
	if dir != "" {
		files = os.DirFS(dir)
	}
	fileServer := http.FileServerFS(files)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Path
		if len(name) > 0 && name[0] == '/' {
			name = name[1:]
		}
		if name == "" {
			name = "index.html"
		}
		if _, err := fs.Stat(files, name); err != nil {
			http.ServeFileFS(w, r, files, "index.html")
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
