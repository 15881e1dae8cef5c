package fixtures

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/csi515/beautyhub-backend-go/internal/domain/attendance"
	"github.com/csi515/beautyhub-backend-go/internal/domain/staff"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func BoolPtr(b bool) *bool    { return &b }
func StrPtr(s string) *string { return &s }

// ==========================================
// IN-MEMORY REPOSITORIES
// ==========================================

// MemStaffRepository is an in-memory staff.StaffRepository for service tests.
type MemStaffRepository struct {
	Members map[string]staff.Staff
	nextID  int
}

func NewMemStaffRepository() *MemStaffRepository {
	return &MemStaffRepository{Members: make(map[string]staff.Staff)}
}

// Seed inserts a staff member directly, bypassing Create.
func (m *MemStaffRepository) Seed(s staff.Staff) staff.Staff {
	if s.ID == "" {
		m.nextID++
		s.ID = fmt.Sprintf("staff-%d", m.nextID)
	}
	m.Members[s.ID] = s
	return s
}

func (m *MemStaffRepository) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	m.nextID++
	if s.ID == "" {
		s.ID = fmt.Sprintf("staff-%d", m.nextID)
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	m.Members[s.ID] = s
	return s, nil
}

func (m *MemStaffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	s, ok := m.Members[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return s, nil
}

func (m *MemStaffRepository) Update(ctx context.Context, s staff.Staff) error {
	if _, ok := m.Members[s.ID]; !ok {
		return staff.ErrStaffNotFound
	}
	m.Members[s.ID] = s
	return nil
}

func (m *MemStaffRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Members[id]; !ok {
		return staff.ErrStaffNotFound
	}
	delete(m.Members, id)
	return nil
}

func (m *MemStaffRepository) List(ctx context.Context, onlyActive bool) ([]staff.Staff, error) {
	var result []staff.Staff
	for _, s := range m.Members {
		if onlyActive && !s.Active {
			continue
		}
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// MemRecordRepository is an in-memory attendance.RecordRepository.
// FailAfter, when positive, makes Create fail once that many records exist,
// which exercises fail-fast batch behavior.
type MemRecordRepository struct {
	Records   map[string]attendance.Record
	FailAfter int
	nextID    int
}

func NewMemRecordRepository() *MemRecordRepository {
	return &MemRecordRepository{Records: make(map[string]attendance.Record)}
}

func (m *MemRecordRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	if m.FailAfter > 0 && len(m.Records) >= m.FailAfter {
		return attendance.Record{}, fmt.Errorf("store full")
	}
	m.nextID++
	if record.ID == "" {
		record.ID = fmt.Sprintf("rec-%d", m.nextID)
	}
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	m.Records[record.ID] = record
	return record, nil
}

func (m *MemRecordRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	r, ok := m.Records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return r, nil
}

func (m *MemRecordRepository) Update(ctx context.Context, record attendance.Record) error {
	if _, ok := m.Records[record.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	m.Records[record.ID] = record
	return nil
}

func (m *MemRecordRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Records[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(m.Records, id)
	return nil
}

func (m *MemRecordRepository) ListByStaff(ctx context.Context, staffID string) ([]attendance.Record, error) {
	var result []attendance.Record
	for _, r := range m.Records {
		if r.StaffID == staffID {
			result = append(result, r)
		}
	}
	sortRecords(result)
	return result, nil
}

func (m *MemRecordRepository) ListByRange(ctx context.Context, from, to time.Time) ([]attendance.Record, error) {
	var result []attendance.Record
	for _, r := range m.Records {
		if r.StartTime.Before(to) && r.EndTime.After(from) {
			result = append(result, r)
		}
	}
	sortRecords(result)
	return result, nil
}

func sortRecords(records []attendance.Record) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].StartTime.Equal(records[j].StartTime) {
			return records[i].ID < records[j].ID
		}
		return records[i].StartTime.Before(records[j].StartTime)
	})
}
