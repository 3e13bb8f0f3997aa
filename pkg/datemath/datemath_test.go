package datemath_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"language-assistant/pkg/datemath"
)

// Wednesday, May 1, 2024
var baseTime = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTimeAt(t *testing.T) {
	cal := datemath.NewWithClock(fixedClock(baseTime))

	tests := []struct {
		location string
		want     string
	}{
		{"local", "15:30"},
		{"London", "15:30"},
		{"new york", "10:30"},
		{"NAIROBI", "18:30"},
		{"delhi", "21:00"},
		{"tokyo", "0:30"},
		{"sydney", "2:30"},
		{"  Tokyo ", "0:30"},
		{"Paris", "I don't know the time in Paris."},
		{"", "I don't know the time in ."},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := cal.TimeAt(tt.location); got != tt.want {
				t.Errorf("TimeAt(%q) = %q, want %q", tt.location, got, tt.want)
			}
		})
	}
}

func TestTimeAt_MatchesOffsetForEveryLocation(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 5, 0, 0, time.UTC)
	cal := datemath.NewWithClock(fixedClock(now))

	for _, name := range datemath.Locations() {
		offset, ok := datemath.Offset(name)
		if !ok {
			t.Fatalf("Offset(%q) not found", name)
		}
		want := datemath.FormatClock(now.Add(time.Duration(offset * float64(time.Hour))))
		if got := cal.TimeAt(name); got != want {
			t.Errorf("TimeAt(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestTimeAt_NoLeadingZeroOnHour(t *testing.T) {
	cal := datemath.NewWithClock(fixedClock(time.Date(2024, 1, 1, 7, 4, 0, 0, time.UTC)))
	if got := cal.TimeAt("london"); got != "7:04" {
		t.Errorf("TimeAt(london) = %q, want 7:04", got)
	}
}

func TestDateOfWeekdayThisWeek(t *testing.T) {
	cal := datemath.NewWithClock(fixedClock(baseTime))

	tests := []struct {
		day  string
		want string
	}{
		{"today", "05/01/2024"},
		{"Today", "05/01/2024"},
		{"monday", "04/29/2024"}, // earlier in the same week, not next Monday
		{"Tuesday", "04/30/2024"},
		{"wednesday", "05/01/2024"},
		{"friday", "05/03/2024"},
		{"SUNDAY", "05/05/2024"},
		{" friday\t", "05/03/2024"},
		{"tomorrow", datemath.MsgUnknownWeekday},
		{"funday", datemath.MsgUnknownWeekday},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			if got := cal.DateOfWeekdayThisWeek(tt.day); got != tt.want {
				t.Errorf("DateOfWeekdayThisWeek(%q) = %q, want %q", tt.day, got, tt.want)
			}
		})
	}
}

func TestDateOfWeekdayThisWeek_RoundTrip(t *testing.T) {
	// One reference day for every weekday, Monday Apr 29 to Sunday May 5 2024.
	for i := 0; i < 7; i++ {
		today := time.Date(2024, 4, 29+i, 9, 0, 0, 0, time.UTC)
		cal := datemath.NewWithClock(fixedClock(today))

		for _, day := range datemath.Weekdays() {
			t.Run(fmt.Sprintf("%s/%s", today.Weekday(), day), func(t *testing.T) {
				date := cal.DateOfWeekdayThisWeek(day)

				parsed, err := time.Parse(datemath.DateLayout, date)
				if err != nil {
					t.Fatalf("result %q is not MM/DD/YYYY: %v", date, err)
				}
				startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
				diff := int(parsed.Sub(startOfToday).Hours() / 24)
				if diff < -6 || diff > 6 {
					t.Errorf("offset %d outside [-6, 6]", diff)
				}

				name := datemath.WeekdayOfDate(date)
				if !strings.EqualFold(name, day) {
					t.Errorf("WeekdayOfDate(%q) = %q, want %q", date, name, day)
				}
			})
		}
	}
}

func TestDateOfWeekdayThisWeek_TodayUsesSystemClock(t *testing.T) {
	cal := datemath.New()
	want := time.Now().Format(datemath.DateLayout)
	if got := cal.DateOfWeekdayThisWeek("today"); got != want {
		t.Errorf("DateOfWeekdayThisWeek(today) = %q, want %q", got, want)
	}
	if got := cal.Today(); got != want {
		t.Errorf("Today() = %q, want %q", got, want)
	}
}

func TestWeekdayOfDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"Padded", "05/01/2024", "Wednesday"},
		{"Unpadded", "5/1/2024", "Wednesday"},
		{"Leap day", "02/29/2024", "Thursday"},
		{"Not a leap year", "02/29/2023", datemath.MsgInvalidDate},
		{"Out of range", "13/40/2024", datemath.MsgInvalidDate},
		{"ISO format", "2024-05-01", datemath.MsgInvalidDate},
		{"Words", "next friday", datemath.MsgInvalidDate},
		{"Two digit year", "05/01/24", datemath.MsgInvalidDate},
		{"Empty", "", datemath.MsgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.WeekdayOfDate(tt.date); got != tt.want {
				t.Errorf("WeekdayOfDate(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestWeekdayIndex(t *testing.T) {
	for i, name := range datemath.Weekdays() {
		idx, ok := datemath.WeekdayIndex(strings.ToUpper(name))
		if !ok || idx != i {
			t.Errorf("WeekdayIndex(%q) = %d, %v; want %d, true", name, idx, ok, i)
		}
	}
	if datemath.MondayIndex(baseTime) != 2 {
		t.Errorf("MondayIndex(Wednesday) = %d, want 2", datemath.MondayIndex(baseTime))
	}
}
