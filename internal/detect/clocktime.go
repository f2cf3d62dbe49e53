package detect

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ClockTime is a time of day without a date or location. It travels as an
// "HH:MM" string in configuration files and API payloads.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses an "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, &ValidationError{Field: "time", Reason: fmt.Sprintf("invalid clock time %q", s)}
	}
	return ClockTime{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

// ClockTimeOf returns the wall clock reading of t, in t's location.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MinuteOfDay returns the number of minutes since midnight.
func (c ClockTime) MinuteOfDay() int {
	return 60*c.Hour + c.Minute
}

func (c ClockTime) Before(other ClockTime) bool {
	return c.MinuteOfDay() < other.MinuteOfDay()
}

func (c ClockTime) After(other ClockTime) bool {
	return c.MinuteOfDay() > other.MinuteOfDay()
}

func (c *ClockTime) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseClockTime(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ClockTime) MarshalYAML() (any, error) {
	return c.String(), nil
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
