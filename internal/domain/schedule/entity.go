package schedule

import (
	"fmt"
	"time"

	"github.com/csi515/beautyhub-backend-go/internal/pkg/validator"
)

// DayTime is a wall-clock time of day, independent of any date.
type DayTime struct {
	Hour   int
	Minute int
}

// ParseDayTime parses "HH:MM" into a DayTime.
func ParseDayTime(s string) (DayTime, error) {
	t, ok := validator.IsValidClockTime(s)
	if !ok {
		return DayTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	return DayTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// On anchors the time of day onto a concrete date.
func (d DayTime) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), d.Hour, d.Minute, 0, 0, date.Location())
}

func (d DayTime) String() string {
	return time.Date(0, 1, 1, d.Hour, d.Minute, 0, 0, time.UTC).Format("15:04")
}

// Before reports whether d is earlier in the day than u.
func (d DayTime) Before(u DayTime) bool {
	return d.Hour < u.Hour || (d.Hour == u.Hour && d.Minute < u.Minute)
}

// TemplateEntry maps one weekday to a shift time range.
type TemplateEntry struct {
	Weekday time.Weekday
	Start   DayTime
	End     DayTime
}

// Template is a named, reusable weekday-to-time-range mapping used to
// bulk-create planned shifts over a visible week.
type Template struct {
	Name    string
	Entries []TemplateEntry
}
