package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormTicketRepository implements the TicketRepository interface
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GORM ticket repository
func NewGormTicketRepository(db *gorm.DB) repository.TicketRepository {
	return &GormTicketRepository{
		db: db,
	}
}

// Tickets GORM model for database mapping
type Tickets struct {
	ID         uint    `gorm:"primaryKey"`
	FlightID   uint    `gorm:"column:flight_id;index"`
	BookingID  uint    `gorm:"column:booking_id;index"`
	SeatNumber string  `gorm:"column:seat_number"`
	Fare       float64 `gorm:"column:fare"`
	CheckedIn  bool    `gorm:"column:checked_in"`
}

// TableName overrides the default table name
func (Tickets) TableName() string {
	return "tickets"
}

func (m Tickets) toEntity() entity.Ticket {
	return entity.Ticket{
		ID:         m.ID,
		FlightID:   m.FlightID,
		BookingID:  m.BookingID,
		SeatNumber: m.SeatNumber,
		Fare:       m.Fare,
		CheckedIn:  m.CheckedIn,
	}
}

// List returns every ticket
func (r *GormTicketRepository) List(ctx context.Context) ([]entity.Ticket, error) {
	var rows []Tickets
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	tickets := make([]entity.Ticket, 0, len(rows))
	for _, m := range rows {
		tickets = append(tickets, m.toEntity())
	}
	return tickets, nil
}

// ListByFlight returns the tickets sold on one flight
func (r *GormTicketRepository) ListByFlight(ctx context.Context, flightID uint) ([]entity.Ticket, error) {
	var rows []Tickets
	if err := r.db.WithContext(ctx).Where("flight_id = ?", flightID).Find(&rows).Error; err != nil {
		return nil, err
	}

	tickets := make([]entity.Ticket, 0, len(rows))
	for _, m := range rows {
		tickets = append(tickets, m.toEntity())
	}
	return tickets, nil
}
