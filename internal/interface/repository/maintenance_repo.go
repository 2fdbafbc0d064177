package repository

import (
	"context"
	"time"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormMaintenanceRepository implements the MaintenanceRepository interface
type GormMaintenanceRepository struct {
	db *gorm.DB
}

// NewGormMaintenanceRepository creates a new GORM maintenance repository
func NewGormMaintenanceRepository(db *gorm.DB) repository.MaintenanceRepository {
	return &GormMaintenanceRepository{
		db: db,
	}
}

// MaintenanceRecords GORM model for database mapping
type MaintenanceRecords struct {
	ID         uint      `gorm:"primaryKey"`
	AircraftID uint      `gorm:"column:aircraft_id;index"`
	Date       time.Time `gorm:"column:date"`
	Type       string    `gorm:"column:type"`
	Notes      string    `gorm:"column:notes"`
}

// TableName overrides the default table name
func (MaintenanceRecords) TableName() string {
	return "maintenance_records"
}

func (m MaintenanceRecords) toEntity() entity.MaintenanceRecord {
	return entity.MaintenanceRecord{
		ID:         m.ID,
		AircraftID: m.AircraftID,
		Date:       m.Date,
		Type:       m.Type,
		Notes:      m.Notes,
	}
}

// List returns every maintenance record
func (r *GormMaintenanceRepository) List(ctx context.Context) ([]entity.MaintenanceRecord, error) {
	var rows []MaintenanceRecords
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]entity.MaintenanceRecord, 0, len(rows))
	for _, m := range rows {
		records = append(records, m.toEntity())
	}
	return records, nil
}

// ListByAircraft returns the maintenance history of one aircraft
func (r *GormMaintenanceRepository) ListByAircraft(ctx context.Context, aircraftID uint) ([]entity.MaintenanceRecord, error) {
	var rows []MaintenanceRecords
	if err := r.db.WithContext(ctx).Where("aircraft_id = ?", aircraftID).Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]entity.MaintenanceRecord, 0, len(rows))
	for _, m := range rows {
		records = append(records, m.toEntity())
	}
	return records, nil
}
