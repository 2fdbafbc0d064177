package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
	"flightops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormBaggageRepository implements the BaggageRepository interface
type GormBaggageRepository struct {
	db *gorm.DB
}

// NewGormBaggageRepository creates a new GORM baggage repository
func NewGormBaggageRepository(db *gorm.DB) repository.BaggageRepository {
	return &GormBaggageRepository{
		db: db,
	}
}

// BaggageItems GORM model for database mapping
type BaggageItems struct {
	ID        uint    `gorm:"primaryKey"`
	TicketID  uint    `gorm:"column:ticket_id;index"`
	WeightKg  float64 `gorm:"column:weight_kg"`
	TagNumber string  `gorm:"column:tag_number"`
}

// TableName overrides the default table name
func (BaggageItems) TableName() string {
	return "baggage"
}

func (m BaggageItems) toEntity() entity.Baggage {
	return entity.Baggage{
		ID:        m.ID,
		TicketID:  m.TicketID,
		WeightKg:  m.WeightKg,
		TagNumber: m.TagNumber,
	}
}

// List returns every checked bag
func (r *GormBaggageRepository) List(ctx context.Context) ([]entity.Baggage, error) {
	var rows []BaggageItems
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	bags := make([]entity.Baggage, 0, len(rows))
	for _, m := range rows {
		bags = append(bags, m.toEntity())
	}
	return bags, nil
}

// ListByTicket returns the bags checked against one ticket
func (r *GormBaggageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]entity.Baggage, error) {
	var rows []BaggageItems
	if err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).Find(&rows).Error; err != nil {
		return nil, err
	}

	bags := make([]entity.Baggage, 0, len(rows))
	for _, m := range rows {
		bags = append(bags, m.toEntity())
	}
	return bags, nil
}
