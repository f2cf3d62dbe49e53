package detect

// TimeRange is a daily detection window, covering [Start, End) to the
// minute. A range whose start lies after its end wraps past midnight, so
// 22:00-06:00 covers late evening and early morning. A range whose start
// equals its end is zero width and never matches.
type TimeRange struct {
	Start ClockTime `json:"start_time" yaml:"start_time"`
	End   ClockTime `json:"end_time" yaml:"end_time"`
}

// NewTimeRange builds a range from two "HH:MM" strings.
func NewTimeRange(start, end string) (TimeRange, error) {
	var r TimeRange
	var err error
	if r.Start, err = ParseClockTime(start); err != nil {
		return TimeRange{}, &ValidationError{Field: "start_time", Reason: `invalid clock time "` + start + `"`}
	}
	if r.End, err = ParseClockTime(end); err != nil {
		return TimeRange{}, &ValidationError{Field: "end_time", Reason: `invalid clock time "` + end + `"`}
	}
	return r, nil
}

// Contains reports whether the range covers the given wall clock reading.
// The end itself is excluded.
func (r TimeRange) Contains(at ClockTime) bool {
	m, start, end := at.MinuteOfDay(), r.Start.MinuteOfDay(), r.End.MinuteOfDay()
	switch {
	case start == end:
		return false
	case start < end:
		return m >= start && m < end
	default:
		return m >= start || m < end
	}
}

// Overnight reports whether the range wraps past midnight.
func (r TimeRange) Overnight() bool {
	return r.Start.After(r.End)
}

func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
