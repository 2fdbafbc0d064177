package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormCrewRepository implements the CrewRepository interface
type GormCrewRepository struct {
	db *gorm.DB
}

// NewGormCrewRepository creates a new GORM crew repository
func NewGormCrewRepository(db *gorm.DB) repository.CrewRepository {
	return &GormCrewRepository{
		db: db,
	}
}

// CrewMembers GORM model for database mapping
type CrewMembers struct {
	ID        uint   `gorm:"primaryKey"`
	FullName  string `gorm:"column:full_name"`
	Role      string `gorm:"column:role"`
	LicenseNo string `gorm:"column:license_no"`
}

// TableName overrides the default table name
func (CrewMembers) TableName() string {
	return "crew_members"
}

// FlightCrews GORM model for database mapping. The (flight, crew) pair is
// the primary key, matching the one-row-per-assignment invariant.
type FlightCrews struct {
	FlightID     uint   `gorm:"column:flight_id;primaryKey"`
	CrewID       uint   `gorm:"column:crew_id;primaryKey"`
	RoleOnFlight string `gorm:"column:role_on_flight"`
}

// TableName overrides the default table name
func (FlightCrews) TableName() string {
	return "flight_crews"
}

// ListMembers returns every crew member
func (r *GormCrewRepository) ListMembers(ctx context.Context) ([]entity.CrewMember, error) {
	var rows []CrewMembers
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	members := make([]entity.CrewMember, 0, len(rows))
	for _, m := range rows {
		members = append(members, entity.CrewMember{
			ID:        m.ID,
			FullName:  m.FullName,
			Role:      m.Role,
			LicenseNo: m.LicenseNo,
		})
	}
	return members, nil
}

// ListAssignments returns every (flight, crew) assignment row
func (r *GormCrewRepository) ListAssignments(ctx context.Context) ([]entity.CrewAssignment, error) {
	var rows []FlightCrews
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	assignments := make([]entity.CrewAssignment, 0, len(rows))
	for _, m := range rows {
		assignments = append(assignments, entity.CrewAssignment{
			FlightID:     m.FlightID,
			CrewID:       m.CrewID,
			RoleOnFlight: m.RoleOnFlight,
		})
	}
	return assignments, nil
}
