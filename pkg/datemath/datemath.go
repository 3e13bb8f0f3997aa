package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Calendar answers the clock questions relative to its time source.
type Calendar struct {
	now func() time.Time
}

// New creates a Calendar backed by the system clock.
func New() *Calendar {
	return &Calendar{now: time.Now}
}

// NewWithClock creates a Calendar that reads the current instant from now.
func NewWithClock(now func() time.Time) *Calendar {
	if now == nil {
		now = time.Now
	}
	return &Calendar{now: now}
}

// Now returns the current instant according to the calendar's clock.
func (c *Calendar) Now() time.Time {
	return c.now()
}

// Today returns today's date as MM/DD/YYYY.
func (c *Calendar) Today() string {
	return c.now().Format(DateLayout)
}

// Offset looks up the UTC offset in hours for location.
func Offset(location string) (float64, bool) {
	offset, ok := timeZoneOffsets[normalize(location)]
	return offset, ok
}

// WeekdayIndex returns the Monday-based index of a weekday name.
func WeekdayIndex(name string) (int, bool) {
	idx, ok := weekdays[normalize(name)]
	return idx, ok
}

// MondayIndex converts t's weekday to the Monday=0 numbering.
func MondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// FormatClock renders t as H:MM on a 24-hour clock.
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

// TimeAt returns the current time at location, shifted from UTC by the table offset.
func (c *Calendar) TimeAt(location string) string {
	offset, ok := Offset(location)
	if !ok {
		return fmt.Sprintf(MsgUnknownLocation, location)
	}

	shifted := c.now().UTC().Add(time.Duration(offset * float64(time.Hour)))
	return FormatClock(shifted)
}

// DateOfWeekdayThisWeek returns the date of day within the current Monday-based week.
// A day that has already passed resolves to its earlier date, not next week's.
func (c *Calendar) DateOfWeekdayThisWeek(day string) string {
	today := c.now()

	if normalize(day) == Today {
		return today.Format(DateLayout)
	}

	idx, ok := WeekdayIndex(day)
	if !ok {
		return MsgUnknownWeekday
	}

	offset := idx - MondayIndex(today)
	return today.AddDate(0, 0, offset).Format(DateLayout)
}

// WeekdayOfDate returns the English weekday name for an MM/DD/YYYY date.
func WeekdayOfDate(date string) string {
	t, err := time.Parse(dateInputLayout, date)
	if err != nil {
		return MsgInvalidDate
	}
	return t.Weekday().String()
}

// normalize folds case and drops surrounding whitespace from a table lookup key.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
