package wealth

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the day-first format used to represent dates as strings
// on the wire ("dd/mm/yyyy"). It is the format the ledger has always
// persisted, so it is kept for compatibility with existing exports.
const DateFormat = "02/01/2006"

// DatetimeFormat is used for creation timestamps.
const DatetimeFormat = time.RFC3339

// Date represents a calendar date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// ParseDate parses a day-first date string ("dd/mm/yyyy", single digit
// day and month accepted).
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: want dd/mm/yyyy", s)
	}
	t, err := time.Parse("2/1/2006", strings.Join(parts, "/"))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}

// MustParseDate parses a day-first date string and panics on error. For tests.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// String formats the date in the day-first wire format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// AddMonths returns the date shifted by n calendar months, normalized the
// way time.AddDate normalizes (e.g. Jan 31 + 1 month = Mar 2/3).
func (d Date) AddMonths(n int) Date {
	return NewDate(d.time().AddDate(0, n, 0).Date())
}

// SameMonth reports whether d and x fall in the same calendar month and year.
func (d Date) SameMonth(x Date) bool { return d.y == x.y && d.m == x.m }

// spanish short month names, used for chart point labels.
var spanishMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// MonthLabel returns the short Spanish label for the date's month,
// e.g. "jul 24". It is the label the dashboard chart has always used.
func (d Date) MonthLabel() string {
	return fmt.Sprintf("%s %02d", spanishMonths[d.m-1], d.y%100)
}

// MarshalJSON implements json.Marshaler, writing the day-first string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler, reading the day-first string form.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
