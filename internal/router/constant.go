package router

// Reply labels, printed before the answer ("Time: 14:05").
const (
	LabelTime = "Time"
	LabelDay  = "Day"
	LabelDate = "Date"
)

// MsgFallback is returned for any intent the router has no handler for.
const MsgFallback = "Try asking for the time, day, or date."
