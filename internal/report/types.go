package report

// RevenueBucket is one calendar-month slice of revenue.
type RevenueBucket struct {
	Month       string  `json:"month"`
	Revenue     float64 `json:"revenue"`
	EventsCount int     `json:"events_count"`
}

// EventTypeStats summarizes one event type across the considered events.
type EventTypeStats struct {
	EventType  string  `json:"event_type"`
	Count      int     `json:"count"`
	Revenue    float64 `json:"revenue"`
	Percentage float64 `json:"percentage"`
	AvgBudget  float64 `json:"avg_budget"`
}
