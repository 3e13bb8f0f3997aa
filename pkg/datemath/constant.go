package datemath

// Layouts
const (
	// DateLayout is the MM/DD/YYYY form every date is rendered in.
	DateLayout = "01/02/2006"

	// dateInputLayout accepts MM/DD/YYYY with or without leading zeros on month and day.
	dateInputLayout = "1/2/2006"
)

// Defaults used when the classifier supplies no entity.
const (
	DefaultLocation = "local"
	Today           = "today"
)

// User-facing messages
const (
	MsgUnknownLocation = "I don't know the time in %s."
	MsgInvalidDate     = "Enter a valid date in MM/DD/YYYY format."
	MsgUnknownWeekday  = "I can only determine dates for today or named days of the week."
)
