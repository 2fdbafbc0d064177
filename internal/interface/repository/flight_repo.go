package repository

import (
	"context"
	"time"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// Flights GORM model for database mapping
type Flights struct {
	ID           uint      `gorm:"primaryKey"`
	FlightNumber string    `gorm:"column:flight_number;index"`
	DepartureUTC time.Time `gorm:"column:departure_utc;index"`
	ArrivalUTC   time.Time `gorm:"column:arrival_utc"`
	Status       string    `gorm:"column:status"`
	RouteID      uint      `gorm:"column:route_id;index"`
	AircraftID   uint      `gorm:"column:aircraft_id;index"`
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flights"
}

func (m Flights) toEntity() entity.Flight {
	return entity.Flight{
		ID:           m.ID,
		FlightNumber: m.FlightNumber,
		DepartureUTC: m.DepartureUTC,
		ArrivalUTC:   m.ArrivalUTC,
		Status:       m.Status,
		RouteID:      m.RouteID,
		AircraftID:   m.AircraftID,
	}
}

// ListInWindow returns flights whose departure falls inside the window.
// Nil bounds leave that side of the window open.
func (r *GormFlightRepository) ListInWindow(ctx context.Context, fromUTC, toUTC *time.Time) ([]entity.Flight, error) {
	query := r.db.WithContext(ctx).Model(&Flights{})
	if fromUTC != nil {
		query = query.Where("departure_utc >= ?", *fromUTC)
	}
	if toUTC != nil {
		query = query.Where("departure_utc <= ?", *toUTC)
	}

	var rows []Flights
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	flights := make([]entity.Flight, 0, len(rows))
	for _, m := range rows {
		flights = append(flights, m.toEntity())
	}
	return flights, nil
}

// GetByID finds a flight by id
func (r *GormFlightRepository) GetByID(ctx context.Context, id uint) (*entity.Flight, error) {
	var row Flights
	result := r.db.WithContext(ctx).First(&row, id)

	if result.Error != nil {
		return nil, translateErr(result.Error)
	}

	flight := row.toEntity()
	return &flight, nil
}
