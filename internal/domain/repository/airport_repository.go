package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
)

// AirportRepository defines read-only access to airports.
type AirportRepository interface {
	List(ctx context.Context) ([]entity.Airport, error)
}
