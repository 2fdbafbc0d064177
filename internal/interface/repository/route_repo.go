package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormRouteRepository implements the RouteRepository interface
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository
func NewGormRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &GormRouteRepository{
		db: db,
	}
}

// Routes GORM model for database mapping
type Routes struct {
	ID                   uint `gorm:"primaryKey"`
	OriginAirportID      uint `gorm:"column:origin_airport_id;index"`
	DestinationAirportID uint `gorm:"column:destination_airport_id;index"`
	DistanceKm           int  `gorm:"column:distance_km"`
}

// TableName overrides the default table name
func (Routes) TableName() string {
	return "routes"
}

// List returns every route
func (r *GormRouteRepository) List(ctx context.Context) ([]entity.Route, error) {
	var rows []Routes
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	routes := make([]entity.Route, 0, len(rows))
	for _, m := range rows {
		routes = append(routes, entity.Route{
			ID:                   m.ID,
			OriginAirportID:      m.OriginAirportID,
			DestinationAirportID: m.DestinationAirportID,
			DistanceKm:           m.DistanceKm,
		})
	}
	return routes, nil
}
