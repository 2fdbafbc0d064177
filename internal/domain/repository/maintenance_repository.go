package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
)

// MaintenanceRepository defines read-only access to maintenance history.
type MaintenanceRepository interface {
	List(ctx context.Context) ([]entity.MaintenanceRecord, error)
	ListByAircraft(ctx context.Context, aircraftID uint) ([]entity.MaintenanceRecord, error)
}
