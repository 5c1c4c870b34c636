package common

import (
	"strings"
	"time"
)

// DefaultDateLayout is day/month/year, the grid's default date format.
const DefaultDateLayout = "02/01/2006"

// Date is a calendar day without a time of day.
type Date struct {
	Year  int32
	Month int32
	Day   int32
}

func (d *Date) ToDate() time.Time {
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
}

// ParseTime converts a date cell into a time. Strings are parsed with layout,
// DefaultDateLayout when empty. The second result is false for anything that
// is not a valid date.
func ParseTime(value any, layout string) (time.Time, bool) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case Date:
		return v.ToDate(), true
	case *Date:
		if v == nil {
			return time.Time{}, false
		}
		return v.ToDate(), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}
