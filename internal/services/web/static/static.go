// Package static serves the minified browser assets of the landing page.
package static

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"
	"go.uber.org/zap"
)

// FS exposes the unminified static assets.
//
//go:embed *.css *.js *.svg
var FS embed.FS

var mediaTypes = map[string]string{
	".js":  "application/javascript",
	".css": "text/css",
	".svg": "image/svg+xml",
}

// Asset is one prepared static file.
type Asset struct {
	ContentType string
	Body        []byte
}

// Assets holds minified copies of every embedded file.
type Assets struct {
	files map[string]Asset
}

// Load minifies every embedded asset. Files that fail to minify are served
// as-is and reported through logger.
func Load(logger *zap.Logger) *Assets {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := minify.New()
	m.AddFunc(mediaTypes[".js"], js.Minify)
	m.AddFunc(mediaTypes[".css"], css.Minify)
	m.AddFunc(mediaTypes[".svg"], svg.Minify)

	files := make(map[string]Asset)
	_ = fs.WalkDir(FS, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		mediaType, ok := mediaTypes[strings.ToLower(path.Ext(name))]
		if !ok {
			return nil
		}
		raw, err := FS.ReadFile(name)
		if err != nil {
			logger.Warn("read static asset", zap.String("asset", name), zap.Error(err))
			return nil
		}
		body, err := m.Bytes(mediaType, raw)
		if err != nil {
			logger.Warn("minify static asset, serving original", zap.String("asset", name), zap.Error(err))
			body = raw
		}
		files[name] = Asset{ContentType: mediaType + "; charset=utf-8", Body: body}
		return nil
	})
	return &Assets{files: files}
}

// Lookup returns the asset stored under name.
func (a *Assets) Lookup(name string) (Asset, bool) {
	if a == nil {
		return Asset{}, false
	}
	asset, ok := a.files[strings.TrimPrefix(name, "/")]
	return asset, ok
}

var (
	defaultOnce   sync.Once
	defaultAssets *Assets
)

// Default returns the process-wide minified assets, built on first use.
func Default(logger *zap.Logger) *Assets {
	defaultOnce.Do(func() {
		defaultAssets = Load(logger)
	})
	return defaultAssets
}

// Handler serves assets by request path. Mount it with http.StripPrefix.
func (a *Assets) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		asset, ok := a.Lookup(r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", asset.ContentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(asset.Body)
	})
}
