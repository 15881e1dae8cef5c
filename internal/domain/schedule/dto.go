package schedule

import (
	"github.com/csi515/beautyhub-backend-go/internal/pkg/validator"
)

// ========================================
// SCHEDULING DTOs
// ========================================

// GenerateRecurringRequest expands a weekday selection into planned shifts
// over a fixed 4-week horizon starting at the anchor date.
type GenerateRecurringRequest struct {
	StaffIDs   []string `json:"staff_ids"`
	AnchorDate string   `json:"anchor_date"` // YYYY-MM-DD
	Weekdays   []int    `json:"weekdays"`    // 0=Sunday .. 6=Saturday; empty is a no-op
	StartTime  string   `json:"start_time"`  // HH:MM
	EndTime    string   `json:"end_time"`    // HH:MM
}

func (r *GenerateRecurringRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.StaffIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_ids",
			Message: "at least one staff member must be selected",
		})
	}

	if _, ok := validator.IsValidDate(r.AnchorDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "anchor_date",
			Message: "anchor_date must be in YYYY-MM-DD format",
		})
	}

	for _, day := range r.Weekdays {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "weekdays",
				Message: "weekdays must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	start, startOK := ParseDayTime(r.StartTime)
	if startOK != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	end, endOK := ParseDayTime(r.EndTime)
	if endOK != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if startOK == nil && endOK == nil && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplyTemplateRequest applies a named template to a staff set over the
// visible week starting at week_start.
type ApplyTemplateRequest struct {
	TemplateName string   `json:"template_name"`
	StaffIDs     []string `json:"staff_ids"`
	WeekStart    string   `json:"week_start"` // YYYY-MM-DD, first day of the visible week
}

func (r *ApplyTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TemplateName) {
		errs = append(errs, validator.ValidationError{
			Field:   "template_name",
			Message: "template_name is required",
		})
	}

	if len(r.StaffIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_ids",
			Message: "at least one staff member must be selected",
		})
	}

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkAssignRequest applies one explicit time range to every (staff, date)
// pair, typically across the 7 dates of the visible week.
type BulkAssignRequest struct {
	StaffIDs  []string `json:"staff_ids"`
	Dates     []string `json:"dates"`      // YYYY-MM-DD each
	StartTime string   `json:"start_time"` // HH:MM
	EndTime   string   `json:"end_time"`   // HH:MM
}

func (r *BulkAssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.StaffIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_ids",
			Message: "at least one staff member must be selected",
		})
	}

	if len(r.Dates) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "dates",
			Message: "at least one date is required",
		})
	}
	for _, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dates",
				Message: "dates must be in YYYY-MM-DD format",
			})
			break
		}
	}

	start, startErr := ParseDayTime(r.StartTime)
	if startErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	end, endErr := ParseDayTime(r.EndTime)
	if endErr != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if startErr == nil && endErr == nil && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BatchResponse reports the outcome of one multi-create operation. Creations
// run fail-fast: on the first store failure the remainder is aborted and
// already-created records stay in place, so CreatedCount can be partial.
type BatchResponse struct {
	CreatedCount int      `json:"created_count"`
	SkippedCount int      `json:"skipped_count"`
	RecordIDs    []string `json:"record_ids"`
}

type TemplateEntryResponse struct {
	Weekday   int    `json:"weekday"`
	DayName   string `json:"day_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type TemplateResponse struct {
	Name    string                  `json:"name"`
	Entries []TemplateEntryResponse `json:"entries"`
}

type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}
