package attendance

import (
	"context"
)

// AttendanceService covers record CRUD, the check-in/check-out actions with
// their derived attendance state, and the timeline projection.
type AttendanceService interface {
	// CreateRecord creates a single record (manual entry)
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	// GetRecord retrieves a single record by ID
	GetRecord(ctx context.Context, id string) (RecordResponse, error)

	// UpdateRecord edits a single record
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)

	// DeleteRecord deletes a single record
	DeleteRecord(ctx context.Context, id string) error

	// ListRecords retrieves records by staff and/or time range
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)

	// CheckIn opens today's actual record for a staff member
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes today's open actual record
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// StaffStatus derives the current attendance state for one staff member
	StaffStatus(ctx context.Context, staffID string) (StatusResponse, error)

	// StatusBoard derives the current attendance state for every active staff member
	StatusBoard(ctx context.Context) (StatusBoardResponse, error)

	// Timeline projects records onto a day/week/month view window
	Timeline(ctx context.Context, req TimelineRequest) (TimelineResponse, error)
}
