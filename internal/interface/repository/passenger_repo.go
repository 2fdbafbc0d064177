package repository

import (
	"context"
	"time"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormPassengerRepository implements the PassengerRepository interface
type GormPassengerRepository struct {
	db *gorm.DB
}

// NewGormPassengerRepository creates a new GORM passenger repository
func NewGormPassengerRepository(db *gorm.DB) repository.PassengerRepository {
	return &GormPassengerRepository{
		db: db,
	}
}

// Passengers GORM model for database mapping
type Passengers struct {
	ID          uint      `gorm:"primaryKey"`
	FullName    string    `gorm:"column:full_name"`
	PassportNo  string    `gorm:"column:passport_no;unique"`
	Nationality string    `gorm:"column:nationality"`
	DateOfBirth time.Time `gorm:"column:date_of_birth"`
}

// TableName overrides the default table name
func (Passengers) TableName() string {
	return "passengers"
}

// List returns every passenger
func (r *GormPassengerRepository) List(ctx context.Context) ([]entity.Passenger, error) {
	var rows []Passengers
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	passengers := make([]entity.Passenger, 0, len(rows))
	for _, m := range rows {
		passengers = append(passengers, entity.Passenger{
			ID:          m.ID,
			FullName:    m.FullName,
			PassportNo:  m.PassportNo,
			Nationality: m.Nationality,
			DateOfBirth: m.DateOfBirth,
		})
	}
	return passengers, nil
}
