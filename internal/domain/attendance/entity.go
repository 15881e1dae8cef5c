package attendance

import (
	"time"
)

// RecordKind distinguishes planned shifts from real clock-in/clock-out windows.
type RecordKind string

const (
	KindScheduled RecordKind = "scheduled"
	KindActual    RecordKind = "actual"
)

var RecordKindValues = []string{
	string(KindScheduled),
	string(KindActual),
}

// RecordStatus is a presentation-only classification for actual records
// (e.g. coloring late arrivals). It never feeds the derived attendance state.
type RecordStatus string

const (
	StatusNormal RecordStatus = "normal"
	StatusLate   RecordStatus = "late"
	StatusEarly  RecordStatus = "early"
	StatusAbsent RecordStatus = "absent"
)

var RecordStatusValues = []string{
	string(StatusNormal),
	string(StatusLate),
	string(StatusEarly),
	string(StatusAbsent),
}

type Record struct {
	ID        string
	StaffID   string
	Kind      RecordKind
	StartTime time.Time
	EndTime   time.Time
	Status    RecordStatus // empty when unset
	Memo      *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	StaffName *string
}

// State is the derived attendance state of a staff member for a calendar day.
// It is never stored: it is computed from the day's actual record and the
// wall clock (see the resolver in the attendance service).
type State string

const (
	StateAbsent     State = "absent"
	StateCheckedIn  State = "checked_in"
	StateCheckedOut State = "checked_out"
)
