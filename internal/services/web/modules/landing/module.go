// Package landing serves the landing page and the pool creation form.
package landing

import (
	"net/http"

	module "github.com/nlwcopa/bolao/internal/services/web/module"
	"github.com/nlwcopa/bolao/internal/services/web/poolform"
	"github.com/nlwcopa/bolao/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Module provides the landing routes.
type Module struct {
	gateway Gateway
	gate    *poolform.Gate
	logger  *zap.Logger
}

// New returns a landing module backed by gateway.
func New(gateway Gateway, logger *zap.Logger) Module {
	return Module{gateway: gateway, gate: poolform.NewGate(), logger: logger}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "landing" }

// Mount wires landing route handlers at the root.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.gate, m.logger))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
