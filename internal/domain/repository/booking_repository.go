package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
)

// BookingRepository defines read-only access to bookings.
type BookingRepository interface {
	List(ctx context.Context) ([]entity.Booking, error)
}
