// Copyright (c) 2026 Folio. All rights reserved.
// Author: code@chalkfarm.mx

package api

import (
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// staticRoots are the asset directories exposed at the server root. The web
// frontend references them with absolute paths, so the prefixes are fixed.
var staticRoots = []string{"css", "js", "fonts", "media"}

// registerStaticRoutes mounts a file server per asset root under baseDir.
// Directory listings are disabled; only direct file paths resolve.
func registerStaticRoutes(router chi.Router, baseDir string) {
	for _, root := range staticRoots {
		prefix := "/" + root
		fileServer := http.StripPrefix(prefix, http.FileServer(noListingDir{http.Dir(filepath.Join(baseDir, root))}))
		router.Get(prefix+"/*", fileServer.ServeHTTP)
	}
}

// noListingDir wraps an http.FileSystem and refuses directory reads.
type noListingDir struct {
	fs http.FileSystem
}

func (d noListingDir) Open(name string) (http.File, error) {
	file, err := d.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}

	return file, nil
}
