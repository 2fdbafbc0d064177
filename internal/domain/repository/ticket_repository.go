package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
)

// TicketRepository defines read-only access to tickets.
type TicketRepository interface {
	List(ctx context.Context) ([]entity.Ticket, error)
	ListByFlight(ctx context.Context, flightID uint) ([]entity.Ticket, error)
}
