package landing

import (
	"context"
	"errors"
	"net/http"

	"github.com/nlwcopa/bolao/internal/services/web/api"
	apperrors "github.com/nlwcopa/bolao/internal/services/web/platform/errors"
)

// Gateway is the backend surface the landing page needs.
type Gateway interface {
	StatsGateway
	CreatePool(ctx context.Context, title string) (string, error)
}

type unavailableGateway struct{}

func (unavailableGateway) CountPools(context.Context) (int64, error)   { return 0, errGatewayNotConfigured }
func (unavailableGateway) CountGuesses(context.Context) (int64, error) { return 0, errGatewayNotConfigured }
func (unavailableGateway) CountUsers(context.Context) (int64, error)   { return 0, errGatewayNotConfigured }
func (unavailableGateway) CreatePool(context.Context, string) (string, error) {
	return "", errGatewayNotConfigured
}

var errGatewayNotConfigured = apperrors.E(apperrors.KindUnavailable, "landing gateway is not configured")

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) loadStats(ctx context.Context) (Stats, error) {
	stats, err := loadStats(ctx, s.gateway)
	if err != nil {
		return Stats{}, apperrors.Wrap(apperrors.KindUnavailable, "error.unavailable", "load landing stats", err)
	}
	return stats, nil
}

// CreatePool calls the backend and classifies failures. Every failure
// carries the same user-facing key.
func (s service) CreatePool(ctx context.Context, title string) (string, error) {
	code, err := s.gateway.CreatePool(ctx, title)
	if err == nil {
		return code, nil
	}
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode >= http.StatusBadRequest && statusErr.StatusCode < http.StatusInternalServerError {
		return "", apperrors.Wrap(apperrors.KindInvalidInput, "notice.pool_failed", "backend rejected pool", err)
	}
	return "", apperrors.Wrap(apperrors.KindUpstream, "notice.pool_failed", "backend create pool", err)
}
