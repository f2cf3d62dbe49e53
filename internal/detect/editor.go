package detect

import (
	"fmt"
	"slices"
)

// Limits on the number of time ranges a schedule carries.
const (
	MinRanges = 1
	MaxRanges = 4
)

// RangeField names the two editable fields of a time range.
type RangeField string

const (
	RangeStart RangeField = "start_time"
	RangeEnd   RangeField = "end_time"
)

// AddRange appends a new range and returns the grown list. The new range
// follows the last one where there is room: it starts one hour after that
// range ends and runs for three hours, with both hours clamped to 23 so
// the window never spills into the next day. When the list is empty, or
// the last range already ends at 20:00 or later, the new range is the
// 09:00-17:00 default.
func AddRange(ranges []TimeRange) ([]TimeRange, error) {
	if len(ranges) >= MaxRanges {
		return ranges, &CapacityError{Kind: "time ranges", Limit: MaxRanges}
	}
	next := TimeRange{Start: ClockTime{Hour: 9}, End: ClockTime{Hour: 17}}
	if len(ranges) > 0 {
		if last := ranges[len(ranges)-1]; last.End.Before(ClockTime{Hour: 20}) {
			next.Start = addHours(last.End, 1)
			next.End = addHours(next.Start, 3)
		}
	}
	out := make([]TimeRange, len(ranges), len(ranges)+1)
	copy(out, ranges)
	return append(out, next), nil
}

func addHours(t ClockTime, hours int) ClockTime {
	t.Hour = min(t.Hour+hours, 23)
	return t
}

// RemoveRange deletes the range at index. An enabled schedule keeps at
// least one range, so removing the last one is refused.
func RemoveRange(ranges []TimeRange, index int) ([]TimeRange, error) {
	if index < 0 || index >= len(ranges) {
		return ranges, &ValidationError{Field: "index", Reason: fmt.Sprintf("no time range at index %d", index)}
	}
	if len(ranges) <= MinRanges {
		return ranges, &CapacityError{Kind: "time ranges", Limit: MinRanges}
	}
	out := make([]TimeRange, 0, len(ranges)-1)
	out = append(out, ranges[:index]...)
	return append(out, ranges[index+1:]...), nil
}

// UpdateRange sets one field of the range at index to the given "HH:MM"
// value. Fields update independently: a form may transiently hold a start
// after its end while the user is still typing, and an overnight range is
// a legitimate end state.
func UpdateRange(ranges []TimeRange, index int, field RangeField, value string) ([]TimeRange, error) {
	if index < 0 || index >= len(ranges) {
		return ranges, &ValidationError{Field: "index", Reason: fmt.Sprintf("no time range at index %d", index)}
	}
	if field != RangeStart && field != RangeEnd {
		return ranges, &ValidationError{Field: "field", Reason: fmt.Sprintf("unknown field %q", string(field))}
	}
	t, err := ParseClockTime(value)
	if err != nil {
		return ranges, &ValidationError{Field: string(field), Reason: fmt.Sprintf("invalid clock time %q", value)}
	}
	out := slices.Clone(ranges)
	if field == RangeStart {
		out[index].Start = t
	} else {
		out[index].End = t
	}
	return out, nil
}
