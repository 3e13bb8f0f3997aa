package router

// Intent is the classified goal of a user turn.
type Intent string

const (
	IntentGetTime Intent = "GetTime"
	IntentGetDay  Intent = "GetDay"
	IntentGetDate Intent = "GetDate"
	IntentUnknown Intent = "Unknown"
)

// ParseIntent maps a classifier label onto a known Intent. Labels are case-sensitive,
// matching the project's intent names exactly; anything else is IntentUnknown.
func ParseIntent(label string) Intent {
	switch Intent(label) {
	case IntentGetTime, IntentGetDay, IntentGetDate:
		return Intent(label)
	}
	return IntentUnknown
}

// Category is the type of an extracted entity.
type Category string

const (
	CategoryLocation Category = "Location"
	CategoryDate     Category = "Date"
	CategoryWeekday  Category = "Weekday"
)

// Entity is a typed span extracted from the user's text.
type Entity struct {
	Category   Category `json:"category"`
	Text       string   `json:"text"`
	Confidence float64  `json:"confidence"` // 0-1
}

// ClassificationResult is what a classifier returns for one utterance.
type ClassificationResult struct {
	TopIntent  Intent   `json:"top_intent"`
	RawIntent  string   `json:"raw_intent"` // label as returned by the service
	Confidence float64  `json:"confidence"`
	Entities   []Entity `json:"entities"`
}

// Reply is a routed answer together with the label it is displayed under.
type Reply struct {
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
}

// String renders the reply the way the CLI prints it.
func (r Reply) String() string {
	if r.Label == "" {
		return r.Text
	}
	return r.Label + ": " + r.Text
}
