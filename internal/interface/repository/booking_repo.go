package repository

import (
	"context"
	"time"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormBookingRepository implements the BookingRepository interface
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GORM booking repository
func NewGormBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &GormBookingRepository{
		db: db,
	}
}

// Bookings GORM model for database mapping. Status and Canceled are the two
// optional cancellation indicators; deployments may populate either or
// neither.
type Bookings struct {
	ID          uint      `gorm:"primaryKey"`
	BookingRef  string    `gorm:"column:booking_ref;unique"`
	BookingDate time.Time `gorm:"column:booking_date"`
	Status      string    `gorm:"column:status"`
	Canceled    bool      `gorm:"column:canceled"`
	PassengerID uint      `gorm:"column:passenger_id;index"`
}

// TableName overrides the default table name
func (Bookings) TableName() string {
	return "bookings"
}

// List returns every booking
func (r *GormBookingRepository) List(ctx context.Context) ([]entity.Booking, error) {
	var rows []Bookings
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	bookings := make([]entity.Booking, 0, len(rows))
	for _, m := range rows {
		bookings = append(bookings, entity.Booking{
			ID:          m.ID,
			BookingRef:  m.BookingRef,
			BookingDate: m.BookingDate,
			Status:      m.Status,
			Canceled:    m.Canceled,
			PassengerID: m.PassengerID,
		})
	}
	return bookings, nil
}
