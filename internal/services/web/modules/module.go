// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/nlwcopa/bolao/internal/services/web/module"
	"github.com/nlwcopa/bolao/internal/services/web/modules/landing"
	"github.com/nlwcopa/bolao/internal/services/web/static"
	"go.uber.org/zap"
)

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries what the registry hands to feature modules.
type Dependencies struct {
	// Gateway reaches the betting pool backend.
	Gateway landing.Gateway
	// Assets is the minified static bundle. Nil uses the shared default.
	Assets *static.Assets
	Logger *zap.Logger
}
