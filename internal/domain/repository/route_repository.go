package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
)

// RouteRepository defines read-only access to routes.
type RouteRepository interface {
	List(ctx context.Context) ([]entity.Route, error)
}
