package schedule

import "time"

// builtinTemplates is the shop's fixed template catalog. Templates are static:
// there is no template CRUD, only application over a visible week.
var builtinTemplates = []Template{
	{
		Name: "Standard",
		Entries: weekdayEntries(
			[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
			DayTime{Hour: 9}, DayTime{Hour: 18},
		),
	},
	{
		Name: "Weekend",
		Entries: weekdayEntries(
			[]time.Weekday{time.Saturday, time.Sunday},
			DayTime{Hour: 10}, DayTime{Hour: 16},
		),
	},
	{
		Name: "Early Shift",
		Entries: weekdayEntries(
			[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
			DayTime{Hour: 7}, DayTime{Hour: 15},
		),
	},
	{
		Name: "Late Shift",
		Entries: weekdayEntries(
			[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday},
			DayTime{Hour: 13}, DayTime{Hour: 21},
		),
	},
}

func weekdayEntries(days []time.Weekday, start, end DayTime) []TemplateEntry {
	entries := make([]TemplateEntry, 0, len(days))
	for _, day := range days {
		entries = append(entries, TemplateEntry{Weekday: day, Start: start, End: end})
	}
	return entries
}

// Catalog returns a copy of the built-in template list.
func Catalog() []Template {
	out := make([]Template, len(builtinTemplates))
	copy(out, builtinTemplates)
	return out
}

// TemplateByName looks a template up by its exact name.
func TemplateByName(name string) (Template, bool) {
	for _, t := range builtinTemplates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
