package attendance

import (
	"strings"

	"github.com/csi515/beautyhub-backend-go/internal/pkg/validator"
)

// ========================================
// RECORD DTOs
// ========================================

type CreateRecordRequest struct {
	StaffID   string  `json:"staff_id"`
	Kind      string  `json:"kind"`
	StartTime string  `json:"start_time"` // RFC3339
	EndTime   string  `json:"end_time"`   // RFC3339
	Status    *string `json:"status,omitempty"`
	Memo      *string `json:"memo,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if !validator.IsInSlice(strings.ToLower(r.Kind), RecordKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: scheduled, actual",
		})
	}

	start, startOK := validator.IsValidDateTime(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an RFC3339 timestamp",
		})
	}

	end, endOK := validator.IsValidDateTime(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an RFC3339 timestamp",
		})
	}

	if startOK && endOK && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if r.Status != nil && !validator.IsInSlice(strings.ToLower(*r.Status), RecordStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: normal, late, early, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRecordRequest edits a single record: fixing wrong clock times,
// reclassifying a late arrival, attaching a memo.
type UpdateRecordRequest struct {
	ID        string  `json:"-"`
	StartTime *string `json:"start_time,omitempty"` // RFC3339
	EndTime   *string `json:"end_time,omitempty"`   // RFC3339
	Status    *string `json:"status,omitempty"`
	Memo      *string `json:"memo,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime != nil {
		if _, ok := validator.IsValidDateTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be an RFC3339 timestamp",
			})
		}
	}

	if r.EndTime != nil {
		if _, ok := validator.IsValidDateTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be an RFC3339 timestamp",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(strings.ToLower(*r.Status), RecordStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: normal, late, early, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordFilter struct {
	StaffID *string `json:"staff_id,omitempty"`
	From    *string `json:"from,omitempty"` // RFC3339
	To      *string `json:"to,omitempty"`   // RFC3339
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != nil {
		if _, ok := validator.IsValidDateTime(*f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be an RFC3339 timestamp",
			})
		}
	}

	if f.To != nil {
		if _, ok := validator.IsValidDateTime(*f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be an RFC3339 timestamp",
			})
		}
	}

	if f.StaffID == nil && f.From == nil && f.To == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "filter",
			Message: "at least one of staff_id, from, to is required",
		})
	}

	if (f.From == nil) != (f.To == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "filter",
			Message: "from and to must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staff_id"`
	StaffName *string `json:"staff_name,omitempty"`
	Kind      string  `json:"kind"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Status    string  `json:"status,omitempty"`
	Memo      *string `json:"memo,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type ListRecordsResponse struct {
	TotalCount int              `json:"total_count"`
	Records    []RecordResponse `json:"records"`
}

// ========================================
// CHECK-IN / CHECK-OUT DTOs
// ========================================

type CheckInRequest struct {
	StaffID string  `json:"staff_id"`
	Memo    *string `json:"memo,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	StaffID string `json:"staff_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatusResponse carries the derived attendance state for one staff member.
type StatusResponse struct {
	StaffID     string          `json:"staff_id"`
	StaffName   string          `json:"staff_name"`
	State       string          `json:"state"` // absent, checked_in, checked_out
	TodayRecord *RecordResponse `json:"today_record,omitempty"`
}

type StatusBoardResponse struct {
	TotalCount int              `json:"total_count"`
	Staff      []StatusResponse `json:"staff"`
}

// ========================================
// TIMELINE DTOs
// ========================================

const (
	ViewToday = "today"
	ViewWeek  = "week"
	ViewMonth = "month"
)

var ViewValues = []string{ViewToday, ViewWeek, ViewMonth}

type TimelineRequest struct {
	View string  `json:"view"`
	Date *string `json:"date,omitempty"` // YYYY-MM-DD, defaults to the current date
}

func (r *TimelineRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(strings.ToLower(r.View), ViewValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "view",
			Message: "view must be one of: today, week, month",
		})
	}

	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Timeline item classifications.
const (
	ClassScheduled    = "scheduled"
	ClassActualOnTime = "actual-on-time"
	ClassActualLate   = "actual-late"
)

type TimelineItem struct {
	RecordID        string  `json:"record_id"`
	Kind            string  `json:"kind"`
	Classification  string  `json:"classification"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationHours   int     `json:"duration_hours"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status,omitempty"`
	Memo            *string `json:"memo,omitempty"`
}

// TimelineResponse groups display items by staff id for the requested window.
type TimelineResponse struct {
	View         string                    `json:"view"`
	VisibleStart string                    `json:"visible_start"`
	VisibleEnd   string                    `json:"visible_end"`
	Items        map[string][]TimelineItem `json:"items"`
}
