package response

import (
	"errors"
	"net/http"

	"github.com/csi515/beautyhub-backend-go/internal/domain/attendance"
	"github.com/csi515/beautyhub-backend-go/internal/domain/auth"
	"github.com/csi515/beautyhub-backend-go/internal/domain/schedule"
	"github.com/csi515/beautyhub-backend-go/internal/domain/staff"
	"github.com/csi515/beautyhub-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffInactive):
		BadRequest(w, "Staff member is inactive", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidTimeRange):
		BadRequest(w, "Start time must be before end time", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Not checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrTemplateNotFound):
		NotFound(w, "Schedule template not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
