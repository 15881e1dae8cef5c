package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/csi515/beautyhub-backend-go/internal/config"
	"github.com/csi515/beautyhub-backend-go/internal/domain/attendance"
	"github.com/csi515/beautyhub-backend-go/internal/domain/staff"
)

// Timeline day view clips to opening hours.
const (
	dayViewStartHour = 9
	dayViewEndHour   = 22
)

type AttendanceServiceImpl struct {
	attendance.RecordRepository
	staffRepository    staff.StaffRepository
	defaultShiftLength time.Duration

	now func() time.Time
}

func NewAttendanceService(recordRepository attendance.RecordRepository, staffRepository staff.StaffRepository, cfg config.AttendanceConfig) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		RecordRepository:   recordRepository,
		staffRepository:    staffRepository,
		defaultShiftLength: cfg.DefaultShiftLength,
		now:                time.Now,
	}
}

// CreateRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.staffRepository.GetByID(ctx, req.StaffID); err != nil {
		return attendance.RecordResponse{}, err
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)

	record := attendance.Record{
		StaffID:   req.StaffID,
		Kind:      attendance.RecordKind(strings.ToLower(req.Kind)),
		StartTime: startTime,
		EndTime:   endTime,
		Memo:      req.Memo,
	}
	if req.Status != nil {
		record.Status = attendance.RecordStatus(strings.ToLower(*req.Status))
	}

	created, err := s.RecordRepository.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return toRecordResponse(created), nil
}

// GetRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	record, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(record), nil
}

// UpdateRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	record, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.StartTime != nil {
		record.StartTime, _ = time.Parse(time.RFC3339, *req.StartTime)
	}
	if req.EndTime != nil {
		record.EndTime, _ = time.Parse(time.RFC3339, *req.EndTime)
	}
	if req.Status != nil {
		record.Status = attendance.RecordStatus(strings.ToLower(*req.Status))
	}
	if req.Memo != nil {
		record.Memo = req.Memo
	}

	// The merged range must still be valid even when only one side changed.
	if !record.StartTime.Before(record.EndTime) {
		return attendance.RecordResponse{}, attendance.ErrInvalidTimeRange
	}

	if err := s.RecordRepository.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	record.UpdatedAt = s.now()

	return toRecordResponse(record), nil
}

// DeleteRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.RecordRepository.Delete(ctx, id)
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	var records []attendance.Record
	var err error

	if filter.From != nil && filter.To != nil {
		from, _ := time.Parse(time.RFC3339, *filter.From)
		to, _ := time.Parse(time.RFC3339, *filter.To)

		records, err = s.RecordRepository.ListByRange(ctx, from, to)
		if err != nil {
			return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
		}

		if filter.StaffID != nil {
			filtered := records[:0]
			for _, r := range records {
				if r.StaffID == *filter.StaffID {
					filtered = append(filtered, r)
				}
			}
			records = filtered
		}
	} else {
		records, err = s.RecordRepository.ListByStaff(ctx, *filter.StaffID)
		if err != nil {
			return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
		}
	}

	resp := attendance.ListRecordsResponse{
		TotalCount: len(records),
		Records:    make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, toRecordResponse(r))
	}

	return resp, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	member, err := s.staffRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !member.Active {
		return attendance.RecordResponse{}, staff.ErrStaffInactive
	}

	now := s.now()
	today, err := s.todayRecords(ctx, now)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if latestActual(today, req.StaffID) != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	// Arriving after a planned shift start marks the record late. The status
	// is display-only and never feeds the derived state.
	status := attendance.StatusNormal
	if sched := earliestScheduled(today, req.StaffID); sched != nil && now.After(sched.StartTime) {
		status = attendance.StatusLate
	}

	created, err := s.RecordRepository.Create(ctx, attendance.Record{
		StaffID:   req.StaffID,
		Kind:      attendance.KindActual,
		StartTime: now,
		EndTime:   now.Add(s.defaultShiftLength),
		Status:    status,
		Memo:      req.Memo,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check in: %w", err)
	}

	return toRecordResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.staffRepository.GetByID(ctx, req.StaffID); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.now()
	today, err := s.todayRecords(ctx, now)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	record := latestActual(today, req.StaffID)
	if record == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if !now.Before(record.EndTime) {
		// The provisional end time has passed, so the member already counts
		// as checked out.
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.EndTime = now
	if err := s.RecordRepository.Update(ctx, *record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check out: %w", err)
	}
	record.UpdatedAt = now

	return toRecordResponse(*record), nil
}

// StaffStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StaffStatus(ctx context.Context, staffID string) (attendance.StatusResponse, error) {
	member, err := s.staffRepository.GetByID(ctx, staffID)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	now := s.now()
	today, err := s.todayRecords(ctx, now)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	return s.resolveStatus(member, today, now), nil
}

// StatusBoard implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StatusBoard(ctx context.Context) (attendance.StatusBoardResponse, error) {
	roster, err := s.staffRepository.List(ctx, true)
	if err != nil {
		return attendance.StatusBoardResponse{}, fmt.Errorf("failed to list staff: %w", err)
	}

	now := s.now()
	today, err := s.todayRecords(ctx, now)
	if err != nil {
		return attendance.StatusBoardResponse{}, err
	}

	resp := attendance.StatusBoardResponse{
		TotalCount: len(roster),
		Staff:      make([]attendance.StatusResponse, 0, len(roster)),
	}
	for _, member := range roster {
		resp.Staff = append(resp.Staff, s.resolveStatus(member, today, now))
	}

	return resp, nil
}

// Timeline implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Timeline(ctx context.Context, req attendance.TimelineRequest) (attendance.TimelineResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TimelineResponse{}, err
	}

	refDate := s.now()
	if req.Date != nil && *req.Date != "" {
		refDate, _ = time.Parse("2006-01-02", *req.Date)
	}

	view := strings.ToLower(req.View)
	visibleStart, visibleEnd := viewWindow(view, refDate)

	records, err := s.RecordRepository.ListByRange(ctx, visibleStart, visibleEnd)
	if err != nil {
		return attendance.TimelineResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	items := make(map[string][]attendance.TimelineItem)
	for _, r := range records {
		items[r.StaffID] = append(items[r.StaffID], toTimelineItem(r))
	}

	return attendance.TimelineResponse{
		View:         view,
		VisibleStart: visibleStart.Format(time.RFC3339),
		VisibleEnd:   visibleEnd.Format(time.RFC3339),
		Items:        items,
	}, nil
}

// resolveStatus derives the attendance state for one staff member from the
// day's actual record and the wall clock. Nothing is read from a stored
// status column: no record means absent, a record whose end time is still
// ahead means checked in, and a passed end time means checked out, whether
// the checkout was explicit or implied by the provisional end.
func (s *AttendanceServiceImpl) resolveStatus(member staff.Staff, today []attendance.Record, now time.Time) attendance.StatusResponse {
	resp := attendance.StatusResponse{
		StaffID:   member.ID,
		StaffName: member.Name,
		State:     string(attendance.StateAbsent),
	}

	record := latestActual(today, member.ID)
	if record == nil {
		return resp
	}

	if now.Before(record.EndTime) {
		resp.State = string(attendance.StateCheckedIn)
	} else {
		resp.State = string(attendance.StateCheckedOut)
	}

	r := toRecordResponse(*record)
	resp.TodayRecord = &r

	return resp
}

// todayRecords loads every record whose start time falls on now's calendar
// day. The overlap query can also return records started the previous day,
// so those are filtered out here.
func (s *AttendanceServiceImpl) todayRecords(ctx context.Context, now time.Time) ([]attendance.Record, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	records, err := s.RecordRepository.ListByRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance records: %w", err)
	}

	filtered := records[:0]
	for _, r := range records {
		if !r.StartTime.Before(dayStart) && r.StartTime.Before(dayEnd) {
			filtered = append(filtered, r)
		}
	}

	return filtered, nil
}

// latestActual picks the actual record with the latest start time for one
// staff member, or nil when there is none.
func latestActual(records []attendance.Record, staffID string) *attendance.Record {
	var latest *attendance.Record
	for i := range records {
		r := &records[i]
		if r.StaffID != staffID || r.Kind != attendance.KindActual {
			continue
		}
		if latest == nil || r.StartTime.After(latest.StartTime) {
			latest = r
		}
	}
	return latest
}

func earliestScheduled(records []attendance.Record, staffID string) *attendance.Record {
	var earliest *attendance.Record
	for i := range records {
		r := &records[i]
		if r.StaffID != staffID || r.Kind != attendance.KindScheduled {
			continue
		}
		if earliest == nil || r.StartTime.Before(earliest.StartTime) {
			earliest = r
		}
	}
	return earliest
}

// viewWindow computes the visible time window for a timeline view:
// the day view clips to opening hours, the week view runs Monday 00:00
// through Sunday 24:00, and the month view covers the calendar month.
func viewWindow(view string, ref time.Time) (time.Time, time.Time) {
	loc := ref.Location()

	switch view {
	case attendance.ViewWeek:
		daysSinceMonday := (int(ref.Weekday()) + 6) % 7
		monday := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -daysSinceMonday)
		return monday, monday.AddDate(0, 0, 7)
	case attendance.ViewMonth:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		return first, first.AddDate(0, 1, 0)
	default: // today
		start := time.Date(ref.Year(), ref.Month(), ref.Day(), dayViewStartHour, 0, 0, 0, loc)
		end := time.Date(ref.Year(), ref.Month(), ref.Day(), dayViewEndHour, 0, 0, 0, loc)
		return start, end
	}
}

func toTimelineItem(r attendance.Record) attendance.TimelineItem {
	classification := attendance.ClassScheduled
	if r.Kind == attendance.KindActual {
		if r.Status == attendance.StatusLate {
			classification = attendance.ClassActualLate
		} else {
			classification = attendance.ClassActualOnTime
		}
	}

	duration := r.EndTime.Sub(r.StartTime)
	hours := int(duration / time.Hour)
	minutes := int(duration % time.Hour / time.Minute)

	return attendance.TimelineItem{
		RecordID:        r.ID,
		Kind:            string(r.Kind),
		Classification:  classification,
		StartTime:       r.StartTime.Format(time.RFC3339),
		EndTime:         r.EndTime.Format(time.RFC3339),
		DurationHours:   hours,
		DurationMinutes: minutes,
		Status:          string(r.Status),
		Memo:            r.Memo,
	}
}

func toRecordResponse(r attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:        r.ID,
		StaffID:   r.StaffID,
		StaffName: r.StaffName,
		Kind:      string(r.Kind),
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Status:    string(r.Status),
		Memo:      r.Memo,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}
