package staff

import (
	"context"
)

// StaffRepository defines data access for the shop roster. The scheduling and
// attendance subsystems treat it as read-only; writes happen only through the
// roster management endpoints.
type StaffRepository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	Update(ctx context.Context, s Staff) error
	Delete(ctx context.Context, id string) error

	// List returns the roster; onlyActive limits it to active staff,
	// the set eligible for scheduling and check-in.
	List(ctx context.Context, onlyActive bool) ([]Staff, error)
}
