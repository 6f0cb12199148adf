// Package assets serves the minified static bundle of the landing page.
package assets

import (
	"net/http"

	module "github.com/nlwcopa/bolao/internal/services/web/module"
	"github.com/nlwcopa/bolao/internal/services/web/routepath"
	"github.com/nlwcopa/bolao/internal/services/web/static"
)

// Module provides static asset routes.
type Module struct {
	assets *static.Assets
}

// New returns an assets module serving the given bundle.
func New(assets *static.Assets) Module {
	return Module{assets: assets}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "assets" }

// Mount wires the static asset handler under the static prefix.
func (m Module) Mount() (module.Mount, error) {
	assets := m.assets
	if assets == nil {
		assets = static.Default(nil)
	}
	mux := http.NewServeMux()
	registerRoutes(mux, assets.Handler())
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: mux}, nil
}
