package assets

import (
	"net/http"

	"github.com/nlwcopa/bolao/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, assets http.Handler) {
	if mux == nil || assets == nil {
		return
	}
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, assets))
}
