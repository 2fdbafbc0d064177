package repository

import (
	"context"

	"flightops-service/internal/domain/entity"
)

// CrewRepository defines read-only access to crew members and their
// flight assignments.
type CrewRepository interface {
	ListMembers(ctx context.Context) ([]entity.CrewMember, error)
	ListAssignments(ctx context.Context) ([]entity.CrewAssignment, error)
}
