package router

import "language-assistant/pkg/datemath"

// Route returns the answer for intent, taking its argument from the first entity
// of the matching category.
func (r *IntentRouter) Route(intent Intent, entities []Entity) string {
	return r.Dispatch(ClassificationResult{TopIntent: intent, Entities: entities}).Text
}

// Dispatch routes a classification result and labels the answer.
func (r *IntentRouter) Dispatch(result ClassificationResult) Reply {
	switch result.TopIntent {
	case IntentGetTime:
		location := firstEntity(result.Entities, CategoryLocation, datemath.DefaultLocation)
		return Reply{Label: LabelTime, Text: r.cal.TimeAt(location)}

	case IntentGetDay:
		date := firstEntity(result.Entities, CategoryDate, r.cal.Today())
		return Reply{Label: LabelDay, Text: datemath.WeekdayOfDate(date)}

	case IntentGetDate:
		day := firstEntity(result.Entities, CategoryWeekday, datemath.Today)
		return Reply{Label: LabelDate, Text: r.cal.DateOfWeekdayThisWeek(day)}
	}

	return Reply{Text: MsgFallback}
}

func firstEntity(entities []Entity, category Category, fallback string) string {
	for _, e := range entities {
		if e.Category == category {
			return e.Text
		}
	}
	return fallback
}
