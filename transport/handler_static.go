package transport

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// uploadedFiles serves stored uploads by exact name. Directories and missing
// files get the JSON not-found reply, so the upload dir is never listed.
func uploadedFiles(prefix, dir string) http.Handler {
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, prefix)
		if name == "" || strings.HasSuffix(name, "/") {
			routeNotFound(w, r)
			return
		}
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(path.Clean("/"+name))))
		if err != nil || info.IsDir() {
			routeNotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
