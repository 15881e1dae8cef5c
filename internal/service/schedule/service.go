package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/csi515/beautyhub-backend-go/internal/domain/attendance"
	"github.com/csi515/beautyhub-backend-go/internal/domain/schedule"
	"github.com/csi515/beautyhub-backend-go/internal/domain/staff"
)

// Recurring generation always covers a fixed 4-week horizon, so every
// selected weekday occurs exactly four times.
const recurrenceHorizonDays = 28

type ScheduleServiceImpl struct {
	recordRepository attendance.RecordRepository
	staffRepository  staff.StaffRepository
}

func NewScheduleService(recordRepository attendance.RecordRepository, staffRepository staff.StaffRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		recordRepository: recordRepository,
		staffRepository:  staffRepository,
	}
}

// ListTemplates implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListTemplates(ctx context.Context) (schedule.ListTemplatesResponse, error) {
	catalog := schedule.Catalog()

	resp := schedule.ListTemplatesResponse{
		Templates: make([]schedule.TemplateResponse, 0, len(catalog)),
	}
	for _, tpl := range catalog {
		entries := make([]schedule.TemplateEntryResponse, 0, len(tpl.Entries))
		for _, entry := range tpl.Entries {
			entries = append(entries, schedule.TemplateEntryResponse{
				Weekday:   int(entry.Weekday),
				DayName:   entry.Weekday.String(),
				StartTime: entry.Start.String(),
				EndTime:   entry.End.String(),
			})
		}
		resp.Templates = append(resp.Templates, schedule.TemplateResponse{
			Name:    tpl.Name,
			Entries: entries,
		})
	}

	return resp, nil
}

// GenerateRecurring implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GenerateRecurring(ctx context.Context, req schedule.GenerateRecurringRequest) (schedule.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BatchResponse{}, err
	}

	if err := s.verifyStaff(ctx, req.StaffIDs); err != nil {
		return schedule.BatchResponse{}, err
	}

	// An empty weekday selection generates nothing. That is a valid no-op,
	// not an error.
	selected := make(map[time.Weekday]bool, len(req.Weekdays))
	for _, day := range req.Weekdays {
		selected[time.Weekday(day)] = true
	}

	anchor, _ := time.Parse("2006-01-02", req.AnchorDate)
	start, _ := schedule.ParseDayTime(req.StartTime)
	end, _ := schedule.ParseDayTime(req.EndTime)

	var resp schedule.BatchResponse
	for _, staffID := range req.StaffIDs {
		for offset := 0; offset < recurrenceHorizonDays; offset++ {
			day := anchor.AddDate(0, 0, offset)
			if !selected[day.Weekday()] {
				continue
			}

			created, err := s.recordRepository.Create(ctx, attendance.Record{
				StaffID:   staffID,
				Kind:      attendance.KindScheduled,
				StartTime: start.On(day),
				EndTime:   end.On(day),
			})
			if err != nil {
				return resp, fmt.Errorf("failed to create planned shift after %d records: %w", resp.CreatedCount, err)
			}

			resp.CreatedCount++
			resp.RecordIDs = append(resp.RecordIDs, created.ID)
		}
	}

	return resp, nil
}

// ApplyTemplate implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ApplyTemplate(ctx context.Context, req schedule.ApplyTemplateRequest) (schedule.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BatchResponse{}, err
	}

	tpl, ok := schedule.TemplateByName(req.TemplateName)
	if !ok {
		return schedule.BatchResponse{}, schedule.ErrTemplateNotFound
	}

	if err := s.verifyStaff(ctx, req.StaffIDs); err != nil {
		return schedule.BatchResponse{}, err
	}

	weekStart, _ := time.Parse("2006-01-02", req.WeekStart)
	weekEnd := weekStart.AddDate(0, 0, 7)

	entriesByDay := make(map[time.Weekday]schedule.TemplateEntry, len(tpl.Entries))
	for _, entry := range tpl.Entries {
		entriesByDay[entry.Weekday] = entry
	}

	// Existing planned shifts make a staff/day pair occupied; applying the
	// template again skips those pairs, so reapplication is idempotent.
	existing, err := s.recordRepository.ListByRange(ctx, weekStart, weekEnd)
	if err != nil {
		return schedule.BatchResponse{}, fmt.Errorf("failed to list existing planned shifts: %w", err)
	}
	occupied := make(map[string]bool)
	for _, r := range existing {
		if r.Kind == attendance.KindScheduled {
			occupied[r.StaffID+"/"+r.StartTime.Format("2006-01-02")] = true
		}
	}

	var resp schedule.BatchResponse
	for _, staffID := range req.StaffIDs {
		for offset := 0; offset < 7; offset++ {
			day := weekStart.AddDate(0, 0, offset)
			entry, ok := entriesByDay[day.Weekday()]
			if !ok {
				continue
			}

			if occupied[staffID+"/"+day.Format("2006-01-02")] {
				resp.SkippedCount++
				continue
			}

			created, err := s.recordRepository.Create(ctx, attendance.Record{
				StaffID:   staffID,
				Kind:      attendance.KindScheduled,
				StartTime: entry.Start.On(day),
				EndTime:   entry.End.On(day),
			})
			if err != nil {
				return resp, fmt.Errorf("failed to create planned shift after %d records: %w", resp.CreatedCount, err)
			}

			resp.CreatedCount++
			resp.RecordIDs = append(resp.RecordIDs, created.ID)
		}
	}

	return resp, nil
}

// BulkAssign implements schedule.ScheduleService.
//
// Unlike ApplyTemplate this performs no existing-record check: rerunning the
// same assignment duplicates every planned shift. Callers wanting idempotency
// should apply a template instead.
func (s *ScheduleServiceImpl) BulkAssign(ctx context.Context, req schedule.BulkAssignRequest) (schedule.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.BatchResponse{}, err
	}

	if err := s.verifyStaff(ctx, req.StaffIDs); err != nil {
		return schedule.BatchResponse{}, err
	}

	start, _ := schedule.ParseDayTime(req.StartTime)
	end, _ := schedule.ParseDayTime(req.EndTime)

	var resp schedule.BatchResponse
	for _, staffID := range req.StaffIDs {
		for _, date := range req.Dates {
			day, _ := time.Parse("2006-01-02", date)

			created, err := s.recordRepository.Create(ctx, attendance.Record{
				StaffID:   staffID,
				Kind:      attendance.KindScheduled,
				StartTime: start.On(day),
				EndTime:   end.On(day),
			})
			if err != nil {
				return resp, fmt.Errorf("failed to create planned shift after %d records: %w", resp.CreatedCount, err)
			}

			resp.CreatedCount++
			resp.RecordIDs = append(resp.RecordIDs, created.ID)
		}
	}

	return resp, nil
}

// verifyStaff checks that every selected staff member exists and is active.
// Only active staff are eligible for planned shifts.
func (s *ScheduleServiceImpl) verifyStaff(ctx context.Context, staffIDs []string) error {
	for _, id := range staffIDs {
		member, err := s.staffRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !member.Active {
			return staff.ErrStaffInactive
		}
	}
	return nil
}
