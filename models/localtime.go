package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalTime is a zone-less timestamp with minute precision, matching what a
// datetime-local form input produces ("2025-01-01T10:00"). RFC3339 input is
// accepted too; the zone is dropped on output.
type LocalTime struct {
	time.Time
}

const localTimeFormat = "2006-01-02T15:04"

var localTimeLayouts = []string{
	localTimeFormat,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: t.Truncate(time.Minute)}
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + lt.Time.Format(localTimeFormat) + `"`), nil
}

func (lt *LocalTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range localTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			lt.Time = t.Truncate(time.Minute)
			return nil
		}
	}
	return fmt.Errorf("invalid due date %q", s)
}

func (lt LocalTime) Value() (driver.Value, error) {
	return lt.Time, nil
}

func (lt *LocalTime) Scan(v interface{}) error {
	switch t := v.(type) {
	case time.Time:
		lt.Time = t
		return nil
	case []byte:
		return lt.parseDB(string(t))
	case string:
		return lt.parseDB(t)
	default:
		return fmt.Errorf("cannot scan %T into LocalTime", v)
	}
}

func (lt *LocalTime) parseDB(s string) error {
	t, err := time.Parse("2006-01-02 15:04:05", strings.TrimSuffix(s, "Z"))
	if err != nil {
		return fmt.Errorf("invalid datetime column value %q", s)
	}
	lt.Time = t
	return nil
}

func (lt LocalTime) String() string {
	return lt.Time.Format(localTimeFormat)
}
