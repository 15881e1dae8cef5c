package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/csi515/beautyhub-backend-go/internal/domain/attendance"
	"github.com/csi515/beautyhub-backend-go/internal/domain/schedule"
	"github.com/csi515/beautyhub-backend-go/internal/domain/staff"
	"github.com/csi515/beautyhub-backend-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (schedule.ScheduleService, *fixtures.MemRecordRepository, *fixtures.MemStaffRepository) {
	recordRepo := fixtures.NewMemRecordRepository()
	staffRepo := fixtures.NewMemStaffRepository()
	return NewScheduleService(recordRepo, staffRepo), recordRepo, staffRepo
}

func TestListTemplates(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.ListTemplates(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Templates, 4)

	assert.Equal(t, "Standard", resp.Templates[0].Name)
	require.Len(t, resp.Templates[0].Entries, 5)
	assert.Equal(t, int(time.Monday), resp.Templates[0].Entries[0].Weekday)
	assert.Equal(t, "09:00", resp.Templates[0].Entries[0].StartTime)
	assert.Equal(t, "18:00", resp.Templates[0].Entries[0].EndTime)
}

func TestGenerateRecurringCreatesFourPerWeekday(t *testing.T) {
	svc, recordRepo, staffRepo := newTestService()
	member := staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})

	// 2024-03-04 is a Monday.
	resp, err := svc.GenerateRecurring(context.Background(), schedule.GenerateRecurringRequest{
		StaffIDs:   []string{member.ID},
		AnchorDate: "2024-03-04",
		Weekdays:   []int{1, 3}, // Monday, Wednesday
		StartTime:  "09:00",
		EndTime:    "18:00",
	})
	require.NoError(t, err)

	// 2 weekdays x 4 weeks
	assert.Equal(t, 8, resp.CreatedCount)
	assert.Equal(t, 0, resp.SkippedCount)
	assert.Len(t, recordRepo.Records, 8)

	for _, r := range recordRepo.Records {
		assert.Equal(t, attendance.KindScheduled, r.Kind)
		assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday}, r.StartTime.Weekday())
		assert.Equal(t, 9, r.StartTime.Hour())
		assert.Equal(t, 18, r.EndTime.Hour())
	}

	// Horizon stays inside anchor..anchor+27d.
	first, _ := time.Parse("2006-01-02", "2024-03-04")
	last := first.AddDate(0, 0, 27)
	for _, r := range recordRepo.Records {
		assert.False(t, r.StartTime.Before(first))
		assert.False(t, r.StartTime.After(last.Add(24*time.Hour)))
	}
}

func TestGenerateRecurringEmptyWeekdaysIsNoOp(t *testing.T) {
	svc, recordRepo, staffRepo := newTestService()
	member := staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})

	resp, err := svc.GenerateRecurring(context.Background(), schedule.GenerateRecurringRequest{
		StaffIDs:   []string{member.ID},
		AnchorDate: "2024-03-04",
		Weekdays:   []int{},
		StartTime:  "09:00",
		EndTime:    "18:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.CreatedCount)
	assert.Empty(t, recordRepo.Records)
}

func TestGenerateRecurringRejectsInvertedTimeRange(t *testing.T) {
	svc, _, staffRepo := newTestService()
	member := staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})

	_, err := svc.GenerateRecurring(context.Background(), schedule.GenerateRecurringRequest{
		StaffIDs:   []string{member.ID},
		AnchorDate: "2024-03-04",
		Weekdays:   []int{1},
		StartTime:  "18:00",
		EndTime:    "09:00",
	})
	require.Error(t, err)
}

func TestGenerateRecurringUnknownStaff(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GenerateRecurring(context.Background(), schedule.GenerateRecurringRequest{
		StaffIDs:   []string{"nope"},
		AnchorDate: "2024-03-04",
		Weekdays:   []int{1},
		StartTime:  "09:00",
		EndTime:    "18:00",
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestGenerateRecurringInactiveStaff(t *testing.T) {
	svc, recordRepo, staffRepo := newTestService()
	member := staffRepo.Seed(staff.Staff{Name: "Zoe", Active: false})

	_, err := svc.GenerateRecurring(context.Background(), schedule.GenerateRecurringRequest{
		StaffIDs:   []string{member.ID},
		AnchorDate: "2024-03-04",
		Weekdays:   []int{1},
		StartTime:  "09:00",
		EndTime:    "18:00",
	})
	assert.ErrorIs(t, err, staff.ErrStaffInactive)
	assert.Empty(t, recordRepo.Records)
}

func TestGenerateRecurringFailFastKeepsPartialResult(t *testing.T) {
	svc, recordRepo, staffRepo := newTestService()
	member := staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})
	recordRepo.FailAfter = 3

	resp, err := svc.GenerateRecurring(context.Background(), schedule.GenerateRecurringRequest{
		StaffIDs:   []string{member.ID},
		AnchorDate: "2024-03-04",
		Weekdays:   []int{1, 3},
		StartTime:  "09:00",
		EndTime:    "18:00",
	})
	require.Error(t, err)

	// Already-created records stay in place.
	assert.Equal(t, 3, resp.CreatedCount)
	assert.Len(t, recordRepo.Records, 3)
}

func TestApplyTemplateIsIdempotent(t *testing.T) {
	svc, recordRepo, staffRepo := newTestService()
	member := staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})

	req := schedule.ApplyTemplateRequest{
		TemplateName: "Standard",
		StaffIDs:     []string{member.ID},
		WeekStart:    "2024-03-04", // Monday
	}

	first, err := svc.ApplyTemplate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 5, first.CreatedCount)
	assert.Equal(t, 0, first.SkippedCount)
	assert.Len(t, recordRepo.Records, 5)

	second, err := svc.ApplyTemplate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.CreatedCount)
	assert.Equal(t, 5, second.SkippedCount)
	assert.Len(t, recordRepo.Records, 5)
}

func TestApplyTemplateSkipsOnlyOccupiedDays(t *testing.T) {
	svc, recordRepo, staffRepo := newTestService()
	member := staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})

	// Occupy Wednesday with a pre-existing planned shift.
	wednesday := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	_, err := recordRepo.Create(context.Background(), attendance.Record{
		StaffID:   member.ID,
		Kind:      attendance.KindScheduled,
		StartTime: wednesday,
		EndTime:   wednesday.Add(4 * time.Hour),
	})
	require.NoError(t, err)

	resp, err := svc.ApplyTemplate(context.Background(), schedule.ApplyTemplateRequest{
		TemplateName: "Standard",
		StaffIDs:     []string{member.ID},
		WeekStart:    "2024-03-04",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.CreatedCount)
	assert.Equal(t, 1, resp.SkippedCount)
	assert.Len(t, recordRepo.Records, 5)
}

func TestApplyTemplateInactiveStaff(t *testing.T) {
	svc, recordRepo, staffRepo := newTestService()
	member := staffRepo.Seed(staff.Staff{Name: "Zoe", Active: false})

	_, err := svc.ApplyTemplate(context.Background(), schedule.ApplyTemplateRequest{
		TemplateName: "Standard",
		StaffIDs:     []string{member.ID},
		WeekStart:    "2024-03-04",
	})
	assert.ErrorIs(t, err, staff.ErrStaffInactive)
	assert.Empty(t, recordRepo.Records)
}

func TestApplyTemplateUnknownTemplate(t *testing.T) {
	svc, _, staffRepo := newTestService()
	member := staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})

	_, err := svc.ApplyTemplate(context.Background(), schedule.ApplyTemplateRequest{
		TemplateName: "Night Owl",
		StaffIDs:     []string{member.ID},
		WeekStart:    "2024-03-04",
	})
	assert.ErrorIs(t, err, schedule.ErrTemplateNotFound)
}

func TestBulkAssignDuplicatesOnRerun(t *testing.T) {
	svc, recordRepo, staffRepo := newTestService()
	mina := staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})
	yuna := staffRepo.Seed(staff.Staff{Name: "Yuna", Active: true})

	req := schedule.BulkAssignRequest{
		StaffIDs:  []string{mina.ID, yuna.ID},
		Dates:     []string{"2024-03-04", "2024-03-05", "2024-03-06"},
		StartTime: "10:00",
		EndTime:   "19:00",
	}

	first, err := svc.BulkAssign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 6, first.CreatedCount)
	assert.Len(t, recordRepo.Records, 6)

	// No existing-record check: rerunning the same request doubles the
	// planned shifts instead of skipping them.
	second, err := svc.BulkAssign(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 6, second.CreatedCount)
	assert.Len(t, recordRepo.Records, 12)
}

func TestBulkAssignInactiveStaff(t *testing.T) {
	svc, recordRepo, staffRepo := newTestService()
	mina := staffRepo.Seed(staff.Staff{Name: "Mina", Active: true})
	zoe := staffRepo.Seed(staff.Staff{Name: "Zoe", Active: false})

	// One inactive member rejects the whole request before anything is created.
	_, err := svc.BulkAssign(context.Background(), schedule.BulkAssignRequest{
		StaffIDs:  []string{mina.ID, zoe.ID},
		Dates:     []string{"2024-03-04", "2024-03-05"},
		StartTime: "10:00",
		EndTime:   "19:00",
	})
	assert.ErrorIs(t, err, staff.ErrStaffInactive)
	assert.Empty(t, recordRepo.Records)
}
