package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
)

// BaggageRepository defines read-only access to checked baggage.
type BaggageRepository interface {
	List(ctx context.Context) ([]entity.Baggage, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]entity.Baggage, error)
}
