// Package report computes the read-only view models behind the analytics
// and dashboard screens. Every function is a pure transformation of
// already-fetched slices: the reference time is always an explicit asOf
// parameter, empty input yields empty output, and records with unparseable
// dates are skipped rather than failing the whole aggregation.
package report

import (
	"sort"
	"time"

	"banquetpro/internal/model"
	"banquetpro/pkg/dateutil"
)

// MonthlyRevenue partitions events into monthsBack consecutive
// calendar-month buckets ending at asOf's month, oldest first. A bucket
// holds the budget sum and event count of events dated inside
// [monthStart, monthEnd] inclusive.
func MonthlyRevenue(events []model.Event, monthsBack int, asOf time.Time) []RevenueBucket {
	if monthsBack <= 0 {
		return []RevenueBucket{}
	}

	firstMonth := dateutil.StartOfMonth(asOf).AddDate(0, -(monthsBack - 1), 0)

	buckets := make([]RevenueBucket, monthsBack)
	for i := range buckets {
		buckets[i].Month = dateutil.MonthLabel(firstMonth.AddDate(0, i, 0))
	}

	for _, ev := range events {
		date, err := dateutil.Parse(ev.Date)
		if err != nil {
			continue // malformed record: skip, never fail the aggregation
		}

		idx := monthsBetween(firstMonth, date)
		if idx < 0 || idx >= monthsBack {
			continue
		}

		buckets[idx].Revenue += ev.Budget
		buckets[idx].EventsCount++
	}

	return buckets
}

// monthsBetween counts whole calendar months from the month of a to the
// month of b. Negative when b's month precedes a's.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// EventTypeDistribution groups events by type and reports count, revenue,
// share of the considered events, and average budget per type. Output is
// sorted by revenue descending; ties keep first-occurrence order.
func EventTypeDistribution(events []model.Event) []EventTypeStats {
	stats := make([]EventTypeStats, 0)
	index := make(map[string]int)

	for _, ev := range events {
		i, ok := index[ev.EventType]
		if !ok {
			i = len(stats)
			index[ev.EventType] = i
			stats = append(stats, EventTypeStats{EventType: ev.EventType})
		}
		stats[i].Count++
		stats[i].Revenue += ev.Budget
	}

	total := len(events)
	for i := range stats {
		if total > 0 {
			stats[i].Percentage = float64(stats[i].Count) / float64(total) * 100
		}
		if stats[i].Count > 0 {
			stats[i].AvgBudget = stats[i].Revenue / float64(stats[i].Count)
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Revenue > stats[j].Revenue
	})

	return stats
}

// StaffLeaderboard returns the topN staff members by rating, descending.
// Members with zero events stay eligible: rating is independent of event
// count. The sort is stable so equal ratings keep input order.
func StaffLeaderboard(staff []model.StaffMember, topN int) []model.StaffMember {
	if topN <= 0 {
		return []model.StaffMember{}
	}

	ranked := make([]model.StaffMember, len(staff))
	copy(ranked, staff)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})

	if topN > len(ranked) {
		topN = len(ranked)
	}
	return ranked[:topN]
}

// UpcomingEvents returns events dated within [asOf, asOf+horizonDays],
// sorted ascending by date. Page sizing is the caller's concern.
func UpcomingEvents(events []model.Event, asOf time.Time, horizonDays int) []model.Event {
	horizon := dateutil.EndOfDay(asOf.AddDate(0, 0, horizonDays))

	type dated struct {
		ev   model.Event
		date time.Time
	}

	upcoming := make([]dated, 0)
	for _, ev := range events {
		date, err := dateutil.Parse(ev.Date)
		if err != nil {
			continue
		}
		if date.Before(asOf) || date.After(horizon) {
			continue
		}
		upcoming = append(upcoming, dated{ev: ev, date: date})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].date.Before(upcoming[j].date)
	})

	result := make([]model.Event, 0, len(upcoming))
	for _, d := range upcoming {
		result = append(result, d.ev)
	}
	return result
}

// TotalRevenue sums event budgets.
func TotalRevenue(events []model.Event) float64 {
	total := 0.0
	for _, ev := range events {
		total += ev.Budget
	}
	return total
}

// AverageBudget returns the mean event budget, 0 for empty input.
func AverageBudget(events []model.Event) float64 {
	if len(events) == 0 {
		return 0
	}
	return TotalRevenue(events) / float64(len(events))
}

// AverageRating returns the mean staff rating, 0 for an empty roster.
func AverageRating(staff []model.StaffMember) float64 {
	if len(staff) == 0 {
		return 0
	}

	total := 0.0
	for _, member := range staff {
		total += member.Rating
	}
	return total / float64(len(staff))
}

// FilterByStatus returns the events whose status matches.
func FilterByStatus(events []model.Event, status model.EventStatus) []model.Event {
	filtered := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.Status == status {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// FilterByDateRange returns events dated inside [from, to] inclusive,
// skipping records with unparseable dates.
func FilterByDateRange(events []model.Event, from, to time.Time) []model.Event {
	filtered := make([]model.Event, 0, len(events))
	for _, ev := range events {
		date, err := dateutil.Parse(ev.Date)
		if err != nil {
			continue
		}
		if date.Before(from) || date.After(to) {
			continue
		}
		filtered = append(filtered, ev)
	}
	return filtered
}
