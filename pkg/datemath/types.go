package datemath

// timeZoneOffsets maps a lower-cased location to its UTC offset in hours.
var timeZoneOffsets = map[string]float64{
	"local":    0,
	"london":   0,
	"sydney":   11,
	"new york": -5,
	"nairobi":  3,
	"tokyo":    9,
	"delhi":    5.5,
}

// weekdays maps a lower-cased weekday name to its Monday-based index.
var weekdays = map[string]int{
	"monday":    0,
	"tuesday":   1,
	"wednesday": 2,
	"thursday":  3,
	"friday":    4,
	"saturday":  5,
	"sunday":    6,
}

// Locations returns the names the time lookup understands.
func Locations() []string {
	out := make([]string, 0, len(timeZoneOffsets))
	for name := range timeZoneOffsets {
		out = append(out, name)
	}
	return out
}

// Weekdays returns the lower-cased weekday names, Monday first.
func Weekdays() []string {
	out := make([]string, len(weekdays))
	for name, idx := range weekdays {
		out[idx] = name
	}
	return out
}
