package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
)

// AircraftRepository defines read-only access to aircraft.
type AircraftRepository interface {
	List(ctx context.Context) ([]entity.Aircraft, error)
	GetByID(ctx context.Context, id uint) (*entity.Aircraft, error)
}
