// Package detect decides when a camera looks for motion, and where in the
// frame it looks. Schedules and zones are plain values; every edit returns
// a new value and leaves its input untouched, and nothing in this package
// reads the system clock.
package detect

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/clambin/go-common/set"
)

// Day numbers the days of the week with Monday as 0, the numbering used in
// camera settings.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Day) String() string {
	if d < Monday || d > Sunday {
		return "Day(" + strconv.Itoa(int(d)) + ")"
	}
	return dayNames[d]
}

// DayOf converts the weekday of t to a Day. Go numbers weekdays from
// Sunday; this is the only place the two numberings meet.
func DayOf(t time.Time) Day {
	return Day((int(t.Weekday()) + 6) % 7)
}

// Status is the activation state of a camera's motion detection.
type Status int

const (
	Inactive Status = iota
	Active
	AlwaysActive
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case AlwaysActive:
		return "always active"
	default:
		return "inactive"
	}
}

// Armed reports whether detection is running, regardless of why.
func (s Status) Armed() bool {
	return s == Active || s == AlwaysActive
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "active":
		*s = Active
	case "always active":
		*s = AlwaysActive
	case "inactive":
		*s = Inactive
	default:
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("invalid status %q", string(text))}
	}
	return nil
}

// Schedule restricts motion detection to a set of days and up to MaxRanges
// time windows per day. A camera without a schedule, or with its schedule
// disabled, detects around the clock.
type Schedule struct {
	Enabled bool        `json:"enabled" yaml:"enabled"`
	Days    []Day       `json:"days" yaml:"days"`
	Ranges  []TimeRange `json:"time_ranges" yaml:"time_ranges"`

	// Single-window form used before schedules carried multiple ranges.
	// Migrate folds these into Ranges.
	LegacyStart *ClockTime `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	LegacyEnd   *ClockTime `json:"end_time,omitempty" yaml:"end_time,omitempty"`
}

// Migrate promotes a schedule from the legacy single-window form to the
// multi-range form and drops the legacy fields. Schedules that already
// carry ranges keep them. Migrate is idempotent and never modifies its
// argument; a nil schedule stays nil.
func Migrate(s *Schedule) *Schedule {
	if s == nil {
		return nil
	}
	migrated := Schedule{
		Enabled: s.Enabled,
		Days:    slices.Clone(s.Days),
		Ranges:  slices.Clone(s.Ranges),
	}
	if len(migrated.Ranges) == 0 && s.LegacyStart != nil && s.LegacyEnd != nil {
		migrated.Ranges = []TimeRange{{Start: *s.LegacyStart, End: *s.LegacyEnd}}
	}
	return &migrated
}

// Evaluation is the outcome of evaluating a schedule at one instant.
type Evaluation struct {
	Status Status `json:"status"`
	Reason string `json:"reason"`
}

func (e Evaluation) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("status", e.Status.String()),
		slog.String("reason", e.Reason),
	)
}

// Evaluate decides whether detection is armed at now, and why. now comes
// from the caller: the runtime passes the current time in the camera's
// location, tests pass whatever instant they need.
func Evaluate(s *Schedule, now time.Time) Evaluation {
	if s == nil {
		return Evaluation{Status: AlwaysActive, Reason: "no schedule"}
	}
	if !s.Enabled {
		return Evaluation{Status: AlwaysActive, Reason: "schedule disabled"}
	}
	day := DayOf(now)
	if !set.New(s.Days...).Contains(day) {
		return Evaluation{Status: Inactive, Reason: day.String() + " is not a scheduled day"}
	}
	at := ClockTimeOf(now)
	for _, r := range s.Ranges {
		if r.Contains(at) {
			return Evaluation{Status: Active, Reason: "inside window " + r.String()}
		}
	}
	return Evaluation{Status: Inactive, Reason: "outside scheduled windows"}
}

// IsActive is shorthand for Evaluate(s, now).Status. It is valid on a nil
// schedule.
func (s *Schedule) IsActive(now time.Time) Status {
	return Evaluate(s, now).Status
}

// Validate checks an enabled schedule: at least one day, all days in
// Monday..Sunday, and MinRanges to MaxRanges time ranges. Disabled and nil
// schedules are always valid.
func (s *Schedule) Validate() error {
	if s == nil || !s.Enabled {
		return nil
	}
	if len(s.Days) == 0 {
		return &ValidationError{Field: "days", Reason: "an enabled schedule needs at least one day"}
	}
	for _, d := range s.Days {
		if d < Monday || d > Sunday {
			return &ValidationError{Field: "days", Reason: fmt.Sprintf("invalid day %d", int(d))}
		}
	}
	if len(s.Ranges) < MinRanges || len(s.Ranges) > MaxRanges {
		limit := MaxRanges
		if len(s.Ranges) < MinRanges {
			limit = MinRanges
		}
		return &CapacityError{Kind: "time ranges", Limit: limit}
	}
	return nil
}

// NextTransition returns the first instant after now at which Evaluate
// changes its answer, looking at range boundaries and day changes over the
// coming week. ok is false when the status never changes, as for a nil or
// disabled schedule.
func NextTransition(s *Schedule, now time.Time) (_ time.Time, ok bool) {
	if s == nil || !s.Enabled {
		return time.Time{}, false
	}
	current := Evaluate(s, now).Status

	minutes := make([]int, 0, 1+2*len(s.Ranges))
	minutes = append(minutes, 0)
	for _, r := range s.Ranges {
		minutes = append(minutes, r.Start.MinuteOfDay(), r.End.MinuteOfDay())
	}
	slices.Sort(minutes)

	year, month, day := now.Date()
	for offset := 0; offset <= 7; offset++ {
		for _, m := range minutes {
			at := time.Date(year, month, day+offset, m/60, m%60, 0, 0, now.Location())
			if at.After(now) && Evaluate(s, at).Status != current {
				return at, true
			}
		}
	}
	return time.Time{}, false
}
