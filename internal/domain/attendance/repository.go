package attendance

import (
	"context"
	"time"
)

// RecordRepository defines data access for attendance records, both planned
// shifts and real clock-in/clock-out windows.
type RecordRepository interface {
	// Create persists a new record and assigns its ID
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (Record, error)

	// Update overwrites the mutable fields of an existing record
	Update(ctx context.Context, record Record) error

	// Delete removes a record. Records are only ever deleted explicitly.
	Delete(ctx context.Context, id string) error

	// ListByStaff retrieves every record for one staff member
	ListByStaff(ctx context.Context, staffID string) ([]Record, error)

	// ListByRange retrieves every record overlapping [from, to):
	// start_time < to AND end_time > from.
	ListByRange(ctx context.Context, from, to time.Time) ([]Record, error)
}
