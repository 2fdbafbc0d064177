package repository

import (
	"context"
	"time"

	"flightops-service/internal/domain/entity"
)

// FlightRepository defines read-only access to flights. A nil window bound
// means unbounded on that side.
type FlightRepository interface {
	ListInWindow(ctx context.Context, fromUTC, toUTC *time.Time) ([]entity.Flight, error)
	GetByID(ctx context.Context, id uint) (*entity.Flight, error)
}
