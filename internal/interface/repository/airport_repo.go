package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Airports GORM model for database mapping
type Airports struct {
	ID      uint   `gorm:"primaryKey"`
	IATA    string `gorm:"column:iata;unique"`
	Name    string `gorm:"column:name"`
	City    string `gorm:"column:city"`
	Country string `gorm:"column:country"`
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "airports"
}

// List returns every airport
func (r *GormAirportRepository) List(ctx context.Context) ([]entity.Airport, error) {
	var rows []Airports
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	airports := make([]entity.Airport, 0, len(rows))
	for _, m := range rows {
		airports = append(airports, entity.Airport{
			ID:      m.ID,
			IATA:    m.IATA,
			Name:    m.Name,
			City:    m.City,
			Country: m.Country,
		})
	}
	return airports, nil
}
