package analytics

import (
	"banquetpro/internal/model"
	"banquetpro/internal/report"
)

// SummaryInput narrows the reporting window. Both bounds are optional ISO
// dates; the window defaults to the trailing twelve months.
type SummaryInput struct {
	StartDate string
	EndDate   string
}

// Summary is the business overview built from completed events.
type Summary struct {
	MonthlyRevenue      []report.RevenueBucket  `json:"monthly_revenue"`
	EventTypes          []report.EventTypeStats `json:"event_types"`
	TotalEvents         int                     `json:"total_events"`
	TotalRevenue        float64                 `json:"total_revenue"`
	AverageSatisfaction float64                 `json:"average_satisfaction"`
}

// Dashboard is the landing-page snapshot combining upcoming workload with
// stock health and staff standing.
type Dashboard struct {
	UpcomingEvents     []model.Event       `json:"upcoming_events"`
	CriticalItems      int                 `json:"critical_items"`
	InventoryValue     float64             `json:"inventory_value"`
	MonthToDateRevenue float64             `json:"month_to_date_revenue"`
	StaffLeaderboard   []model.StaffMember `json:"staff_leaderboard"`
}
