package landing

import (
	"net/http"

	"github.com/nlwcopa/bolao/internal/services/web/platform/httpx"
	"github.com/nlwcopa/bolao/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Root+"{$}", httpx.MethodNotAllowed(http.MethodGet+", "+http.MethodHead))
	mux.HandleFunc(http.MethodPost+" "+routepath.Pools, h.handleCreatePool)
	mux.HandleFunc(routepath.Pools, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
