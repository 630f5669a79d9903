package http

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
)

type staticHandler struct {
	files http.Handler
}

// newStaticHandler serves fsys at the web root. Directories are only served
// through their index.html; listings are never generated.
func newStaticHandler(fsys fs.FS) *staticHandler {
	return &staticHandler{
		files: http.FileServer(http.FS(indexOnlyFS{fsys})),
	}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=0")
	h.files.ServeHTTP(w, r)
}

// indexOnlyFS hides directories that have no index.html
type indexOnlyFS struct {
	fsys fs.FS
}

func (f indexOnlyFS) Open(name string) (fs.File, error) {
	file, err := f.fsys.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if !info.IsDir() {
		return file, nil
	}

	if _, err := fs.Stat(f.fsys, path.Join(name, "index.html")); err != nil {
		_ = file.Close()
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	return file, nil
}
