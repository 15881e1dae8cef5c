package schedule

import (
	"context"
)

// ScheduleService creates planned shifts: recurring generation, template
// application over the visible week, and one-off bulk assignment.
// Every operation requires the selected staff to exist and be active.
type ScheduleService interface {
	// ListTemplates returns the built-in template catalog
	ListTemplates(ctx context.Context) (ListTemplatesResponse, error)

	// GenerateRecurring expands a weekday selection over the 4-week horizon
	// and creates one planned shift per occurrence per staff member.
	// An empty weekday selection is a no-op, not an error.
	GenerateRecurring(ctx context.Context, req GenerateRecurringRequest) (BatchResponse, error)

	// ApplyTemplate applies a template over the visible week, skipping
	// staff/day pairs that already have a planned shift. Idempotent.
	ApplyTemplate(ctx context.Context, req ApplyTemplateRequest) (BatchResponse, error)

	// BulkAssign creates one planned shift per (staff, date) pair with a
	// single time range. Performs no existing-record check, so repeated
	// invocation duplicates planned shifts.
	BulkAssign(ctx context.Context, req BulkAssignRequest) (BatchResponse, error)
}
