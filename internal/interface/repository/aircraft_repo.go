package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAircraftRepository implements the AircraftRepository interface
type GormAircraftRepository struct {
	db *gorm.DB
}

// NewGormAircraftRepository creates a new GORM aircraft repository
func NewGormAircraftRepository(db *gorm.DB) repository.AircraftRepository {
	return &GormAircraftRepository{
		db: db,
	}
}

// Aircrafts GORM model for database mapping
type Aircrafts struct {
	ID         uint   `gorm:"primaryKey"`
	TailNumber string `gorm:"column:tail_number;unique"`
	Model      string `gorm:"column:model"`
	Capacity   int    `gorm:"column:capacity"`
}

// TableName overrides the default table name
func (Aircrafts) TableName() string {
	return "aircraft"
}

func (m Aircrafts) toEntity() entity.Aircraft {
	return entity.Aircraft{
		ID:         m.ID,
		TailNumber: m.TailNumber,
		Model:      m.Model,
		Capacity:   m.Capacity,
	}
}

// List returns every aircraft
func (r *GormAircraftRepository) List(ctx context.Context) ([]entity.Aircraft, error) {
	var rows []Aircrafts
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	aircraft := make([]entity.Aircraft, 0, len(rows))
	for _, m := range rows {
		aircraft = append(aircraft, m.toEntity())
	}
	return aircraft, nil
}

// GetByID finds an aircraft by id
func (r *GormAircraftRepository) GetByID(ctx context.Context, id uint) (*entity.Aircraft, error) {
	var row Aircrafts
	result := r.db.WithContext(ctx).First(&row, id)

	if result.Error != nil {
		return nil, translateErr(result.Error)
	}

	aircraft := row.toEntity()
	return &aircraft, nil
}
