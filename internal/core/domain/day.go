package domain

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
)

// DayFormat is the canonical ISO-8601 representation of a Day.
const DayFormat = "2006-01-02"

// readLayouts are tried in order when parsing a Day from a string.
var readLayouts = []string{
	"2006-1-2",
	time.RFC3339Nano,
	"02-Jan-2006",
	"2-Jan-2006",
}

// Day is a calendar date with day granularity and no time zone.
type Day struct {
	y int
	m time.Month
	d int
}

// NewDay returns a normalized Day, so NewDay(2025, 1, 32) is 2025-02-01.
func NewDay(year int, month time.Month, day int) Day {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Day{t.Year(), t.Month(), t.Day()}
}

// DayOf returns the UTC calendar day of t. Timestamps from the store, the
// clock and imported {seconds, nanoseconds} objects all go through here, so
// they agree on where a day starts.
func DayOf(t time.Time) Day { return NewDay(t.UTC().Date()) }

// Today returns the current UTC day.
func Today() Day { return DayOf(time.Now()) }

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Day) Year() int         { return d.y }
func (d Day) Month() time.Month { return d.m }
func (d Day) Day() int          { return d.d }
func (d Day) IsZero() bool      { return d == Day{} }

func (d Day) Before(x Day) bool { return d.Time().Before(x.Time()) }
func (d Day) After(x Day) bool  { return d.Time().After(x.Time()) }

// AddDays returns the day n days later (n may be negative).
func (d Day) AddDays(n int) Day { return NewDay(d.y, d.m, d.d+n) }

// AddMonths moves n calendar months, clamping to the last day of the target month.
func (d Day) AddMonths(n int) Day {
	first := NewDay(d.y, d.m+time.Month(n), 1)
	last := NewDay(first.y, first.m+1, 0).d
	return Day{first.y, first.m, min(d.d, last)}
}

// MonthsUntil returns the number of whole calendar months from d to later,
// counting only year and month. It is negative when later is in an earlier month.
func (d Day) MonthsUntil(later Day) int {
	return (later.y-d.y)*12 + int(later.m) - int(d.m)
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DayFormat)
}

// ParseDay parses a Day from an ISO date, an RFC3339 timestamp or a DD-MMM-YYYY string.
func ParseDay(str string) (Day, error) {
	for _, layout := range readLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return DayOf(t), nil
		}
	}
	return Day{}, fmt.Errorf("%w: invalid date %q, want format %q", apperrors.ErrValidation, str, DayFormat)
}

// MustParseDay is like ParseDay but panics on error.
func MustParseDay(str string) Day {
	d, err := ParseDay(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// timestampObject is the serialized form some document stores use for instants.
type timestampObject struct {
	Seconds        *int64 `json:"seconds"`
	Nanoseconds    int64  `json:"nanoseconds"`
	LegacySeconds  *int64 `json:"_seconds"`
	LegacyNanosecs int64  `json:"_nanoseconds"`
}

// UnmarshalJSON accepts a date string or a {seconds, nanoseconds} timestamp object.
func (d *Day) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*d = Day{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		parsed, err := ParseDay(str)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case len(data) > 0 && data[0] == '{':
		var ts timestampObject
		if err := json.Unmarshal(data, &ts); err != nil {
			return fmt.Errorf("%w: invalid timestamp object: %v", apperrors.ErrValidation, err)
		}
		secs, nanos := ts.Seconds, ts.Nanoseconds
		if secs == nil {
			secs, nanos = ts.LegacySeconds, ts.LegacyNanosecs
		}
		if secs == nil {
			return fmt.Errorf("%w: timestamp object without seconds", apperrors.ErrValidation)
		}
		*d = DayOf(time.Unix(*secs, nanos))
		return nil
	default:
		return fmt.Errorf("%w: date must be a string or a timestamp object, got %s", apperrors.ErrValidation, data)
	}
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// Scan implements sql.Scanner for DATE columns.
func (d *Day) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Day{}
	case time.Time:
		*d = NewDay(v.Date())
	case string:
		parsed, err := ParseDay(v)
		if err != nil {
			return err
		}
		*d = parsed
	default:
		return fmt.Errorf("cannot scan %T into Day", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (d Day) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time(), nil
}

var (
	_ json.Marshaler   = Day{}
	_ json.Unmarshaler = (*Day)(nil)
	_ sql.Scanner      = (*Day)(nil)
	_ driver.Valuer    = Day{}
)
