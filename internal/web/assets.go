package web

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/desertthunder/tracy/internal/shared"
)

//go:embed front/*.html front/*.css front/*.js
var frontFiles embed.FS

// Asset names served by the router.
const (
	AppHTML     = "app.html"
	ThemeCSS    = "theme.css"
	AppJS       = "app.js"
	KeysJS      = "keys.js"
	WindowsHTML = "windows.html"
)

// Assets resolves static files by name.
type Assets struct {
	fsys   fs.FS
	source string
}

// Embedded returns the assets compiled into the binary.
func Embedded() *Assets {
	sub, err := fs.Sub(frontFiles, "front")
	if err != nil {
		panic(fmt.Sprintf("embedded front-end is missing: %v", err))
	}
	return &Assets{fsys: sub, source: "embedded"}
}

// Dir returns assets read live from dir.
func Dir(dir string) *Assets {
	return &Assets{fsys: os.DirFS(dir), source: dir}
}

// Source describes where assets come from, for logging.
func (a *Assets) Source() string {
	return a.source
}

// Read returns the contents of the named asset.
func (a *Assets) Read(name string) ([]byte, error) {
	data, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", shared.ErrAssetNotFound, name)
		}
		return nil, err
	}
	return data, nil
}
