package scoring

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

const day = 24 * time.Hour

var eventZone atomic.Pointer[time.Location]

// SetEventZone sets the zone in which event calendar days are counted.
// A nil loc restores the default, UTC.
func SetEventZone(loc *time.Location) {
	eventZone.Store(loc)
}

// EventZone returns the zone set by SetEventZone.
func EventZone() *time.Location {
	if loc := eventZone.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// DateOnly drops the time of day, keeping the calendar date of t in the
// event zone. The result is midnight UTC of that date, so the same instant
// gives the same date whatever location t carries.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.In(EventZone()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(math.Round(DateOnly(to).Sub(DateOnly(from)).Hours() / 24))
}

// DayCount is the inclusive number of calendar days spanned by an event.
// Inverted or empty ranges count as one day.
func DayCount(start, end time.Time) int {
	n := daysBetween(start, end) + 1
	if n < 1 {
		return 1
	}
	return n
}

// DayNumber maps a date to its 1-based position in an event starting at
// eventStart. Dates outside the event still get a number.
func DayNumber(date, eventStart time.Time) int {
	return daysBetween(eventStart, date) + 1
}

func IsMultiDay(e domain.Event) bool {
	return DayCount(e.StartDateTime, e.EndDateTime) > 1
}

// Days returns one date per event day, starting with the start date.
func Days(start, end time.Time) []time.Time {
	n := DayCount(start, end)
	first := DateOnly(start)
	days := make([]time.Time, n)
	for i := range days {
		days[i] = first.Add(time.Duration(i) * day)
	}
	return days
}

// DateLabel formats the event date range the way certificates print it.
func DateLabel(e domain.Event) string {
	const layout = "2006-01-02"
	start, end := DateOnly(e.StartDateTime), DateOnly(e.EndDateTime)
	if !IsMultiDay(e) {
		return start.Format(layout)
	}
	return fmt.Sprintf("%s - %s", start.Format(layout), end.Format(layout))
}

// ValidateAttendance checks that marks has exactly one valid entry per event
// day.
func ValidateAttendance(marks []domain.AttendanceMark, start, end time.Time) error {
	want := DayCount(start, end)
	if len(marks) != want {
		return domain.NewValidationError("attendance", "expected %d entries, one per event day, got %d", want, len(marks))
	}
	for i, m := range marks {
		if !m.IsValid() {
			return domain.NewValidationError(fmt.Sprintf("attendance[%d]", i), "must be %q or %q", domain.Present, domain.Absent)
		}
	}
	return nil
}

// FullAttendance marks every event day as present.
func FullAttendance(start, end time.Time) []domain.AttendanceMark {
	marks := make([]domain.AttendanceMark, DayCount(start, end))
	for i := range marks {
		marks[i] = domain.Present
	}
	return marks
}

// AbsentDates returns the date of each day marked absent, counted from the
// event start in the event zone.
func AbsentDates(marks []domain.AttendanceMark, start time.Time) []time.Time {
	var dates []time.Time
	local := start.In(EventZone())
	for i, m := range marks {
		if m == domain.Absent {
			dates = append(dates, local.AddDate(0, 0, i))
		}
	}
	return dates
}

type dayFilterKind int

const (
	filterSpecificDay dayFilterKind = iota
	filterAllDays
	filterAllDaysExclusive
)

// DayFilter selects attendance records for reporting.
type DayFilter struct {
	kind dayFilterKind
	day  int
}

var (
	// AllDays keeps members who attended at least one day.
	AllDays = DayFilter{kind: filterAllDays}
	// AllDaysExclusive keeps members who attended every day.
	AllDaysExclusive = DayFilter{kind: filterAllDaysExclusive}
)

func SpecificDay(n int) DayFilter {
	return DayFilter{kind: filterSpecificDay, day: n}
}

func ParseDayFilter(s string) (DayFilter, error) {
	switch s {
	case "", "all":
		return AllDays, nil
	case "exclusive_all":
		return AllDaysExclusive, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return DayFilter{}, domain.NewValidationError("day", "must be a day number, %q or %q", "all", "exclusive_all")
	}
	return SpecificDay(n), nil
}

func (f DayFilter) String() string {
	switch f.kind {
	case filterAllDays:
		return "all"
	case filterAllDaysExclusive:
		return "exclusive_all"
	}
	return strconv.Itoa(f.day)
}

func (f DayFilter) Validate(dayCount int) error {
	if f.kind == filterSpecificDay && (f.day < 1 || f.day > dayCount) {
		return domain.NewValidationError("day", "Day %d is out of range. Event has %d day(s).", f.day, dayCount)
	}
	return nil
}

// FilterAttendance resolves which members match f for an event spanning
// start..end. Scans outside the span and repeated scans on the same day are
// ignored. AllDaysExclusive is the intersection of the per-day attendance
// sets. A specific day keeps only that day's date on each record.
func FilterAttendance(start, end time.Time, records []domain.AttendanceRecord, f DayFilter) ([]domain.AttendanceRecord, error) {
	n := DayCount(start, end)
	if err := f.Validate(n); err != nil {
		return nil, err
	}

	perDay := make([]map[int]bool, n+1)
	for d := 1; d <= n; d++ {
		perDay[d] = make(map[int]bool)
	}

	type attendee struct {
		member domain.Member
		dates  map[int]time.Time
	}
	attendees := make([]attendee, 0, len(records))

	for i, r := range records {
		a := attendee{member: r.Member, dates: make(map[int]time.Time)}
		for _, date := range r.Dates {
			d := DayNumber(date, start)
			if d < 1 || d > n {
				continue
			}
			if _, seen := a.dates[d]; !seen {
				a.dates[d] = date
			}
			perDay[d][i] = true
		}
		attendees = append(attendees, a)
	}

	var keep map[int]bool
	switch f.kind {
	case filterSpecificDay:
		keep = perDay[f.day]
	case filterAllDays:
		keep = make(map[int]bool)
		for d := 1; d <= n; d++ {
			for i := range perDay[d] {
				keep[i] = true
			}
		}
	case filterAllDaysExclusive:
		keep = make(map[int]bool)
		for i := range perDay[1] {
			keep[i] = true
		}
		for d := 2; d <= n; d++ {
			for i := range keep {
				if !perDay[d][i] {
					delete(keep, i)
				}
			}
		}
	}

	result := make([]domain.AttendanceRecord, 0, len(keep))
	for i, a := range attendees {
		if !keep[i] {
			continue
		}

		days := make([]int, 0, len(a.dates))
		for d := range a.dates {
			if f.kind == filterSpecificDay && d != f.day {
				continue
			}
			days = append(days, d)
		}
		sort.Ints(days)

		dates := make([]time.Time, len(days))
		for j, d := range days {
			dates[j] = a.dates[d]
		}

		result = append(result, domain.AttendanceRecord{Member: a.member, Dates: dates, Days: days})
	}

	return result, nil
}
