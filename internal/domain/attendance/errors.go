package attendance

import "errors"

// Attendance domain errors
var (
	// Record errors
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidTimeRange = errors.New("start time must be before end time")

	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("staff member has already checked in today")
	ErrNotCheckedIn      = errors.New("staff member has not checked in today")
	ErrAlreadyCheckedOut = errors.New("staff member has already checked out today")
)
