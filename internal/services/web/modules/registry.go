package modules

import (
	"github.com/nlwcopa/bolao/internal/services/web/modules/assets"
	"github.com/nlwcopa/bolao/internal/services/web/modules/landing"
)

// DefaultModules returns the modules mounted by the web service.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		landing.New(deps.Gateway, deps.Logger),
		assets.New(deps.Assets),
	}
}
