package types

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-module/carbon/v2"
)

var _ Value = NewTimestampValue(time.Time{})

// TimestampValue is an instant. The wire format stores whole
// milliseconds since the Unix epoch, so the constructor truncates to
// millisecond precision.
type TimestampValue time.Time

// NewTimestampValue returns a timestamp value, in UTC, truncated to
// millisecond precision.
func NewTimestampValue(x time.Time) TimestampValue {
	return TimestampValue(x.UTC().Truncate(time.Millisecond))
}

// NewTimestampValueFromMillis returns a timestamp value from a number
// of milliseconds since the Unix epoch.
func NewTimestampValueFromMillis(ms int64) TimestampValue {
	return TimestampValue(time.UnixMilli(ms).UTC())
}

func (v TimestampValue) V() any {
	return time.Time(v)
}

func (v TimestampValue) Type() Type {
	return TypeTimestamp
}

// UnixMilli returns the instant as milliseconds since the Unix epoch.
func (v TimestampValue) UnixMilli() int64 {
	return time.Time(v).UnixMilli()
}

func (v TimestampValue) String() string {
	return time.Time(v).Format(time.RFC3339Nano)
}

func (v TimestampValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.String())), nil
}

// ParseTimestamp parses s into a timestamp value. It accepts any layout
// carbon understands (RFC 3339, SQL datetime, date-only, ...).
func ParseTimestamp(s string) (TimestampValue, error) {
	c := carbon.Parse(s, "UTC")
	if c.Error != nil {
		return TimestampValue{}, errors.Errorf("invalid timestamp %q", s)
	}

	return NewTimestampValue(c.ToStdTime()), nil
}
