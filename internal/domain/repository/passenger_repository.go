package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
)

// PassengerRepository defines read-only access to passengers.
type PassengerRepository interface {
	List(ctx context.Context) ([]entity.Passenger, error)
}
