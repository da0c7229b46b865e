package report_test

import (
	"reflect"
	"testing"
	"time"

	"banquetpro/internal/model"
	"banquetpro/internal/report"
)

func TestMonthlyRevenue(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Two Buckets Oldest First", func(t *testing.T) {
		events := []model.Event{
			{Date: "2024-05-10", Budget: 1000},
			{Date: "2024-06-01", Budget: 2000},
		}

		got := report.MonthlyRevenue(events, 2, asOf)
		if len(got) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(got))
		}
		if got[0].Month != "May 2024" || got[0].Revenue != 1000 || got[0].EventsCount != 1 {
			t.Errorf("unexpected first bucket: %+v", got[0])
		}
		if got[1].Month != "June 2024" || got[1].Revenue != 2000 || got[1].EventsCount != 1 {
			t.Errorf("unexpected second bucket: %+v", got[1])
		}
	})

	t.Run("Month Boundaries Inclusive", func(t *testing.T) {
		events := []model.Event{
			{Date: "2024-06-01", Budget: 100},
			{Date: "2024-06-30T23:00:00Z", Budget: 200},
		}

		got := report.MonthlyRevenue(events, 1, asOf)
		if got[0].Revenue != 300 || got[0].EventsCount != 2 {
			t.Errorf("boundary events not bucketed: %+v", got[0])
		}
	})

	t.Run("Outside Window Excluded", func(t *testing.T) {
		events := []model.Event{
			{Date: "2024-03-10", Budget: 999},
			{Date: "2024-07-01", Budget: 999},
		}

		got := report.MonthlyRevenue(events, 2, asOf)
		for _, b := range got {
			if b.Revenue != 0 || b.EventsCount != 0 {
				t.Errorf("event leaked into bucket %+v", b)
			}
		}
	})

	t.Run("Malformed Date Skipped", func(t *testing.T) {
		events := []model.Event{
			{Date: "not-a-date", Budget: 500},
			{Date: "2024-06-05", Budget: 700},
		}

		got := report.MonthlyRevenue(events, 1, asOf)
		if got[0].Revenue != 700 || got[0].EventsCount != 1 {
			t.Errorf("malformed record not skipped cleanly: %+v", got[0])
		}
	})

	t.Run("Empty Events", func(t *testing.T) {
		got := report.MonthlyRevenue(nil, 3, asOf)
		if len(got) != 3 {
			t.Fatalf("expected 3 empty buckets, got %d", len(got))
		}
		for _, b := range got {
			if b.Revenue != 0 || b.EventsCount != 0 {
				t.Errorf("expected empty bucket, got %+v", b)
			}
		}
	})

	t.Run("Non Positive MonthsBack", func(t *testing.T) {
		if got := report.MonthlyRevenue(nil, 0, asOf); len(got) != 0 {
			t.Errorf("expected no buckets, got %v", got)
		}
	})
}

func TestEventTypeDistribution(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		got := report.EventTypeDistribution(nil)
		if len(got) != 0 {
			t.Errorf("expected empty distribution, got %v", got)
		}
	})

	t.Run("Groups And Sorts By Revenue", func(t *testing.T) {
		events := []model.Event{
			{EventType: "corporate", Budget: 1000},
			{EventType: "wedding", Budget: 3000},
			{EventType: "wedding", Budget: 5000},
			{EventType: "graduation", Budget: 2000},
		}

		got := report.EventTypeDistribution(events)
		if len(got) != 3 {
			t.Fatalf("expected 3 types, got %d", len(got))
		}
		if got[0].EventType != "wedding" || got[0].Revenue != 8000 || got[0].Count != 2 {
			t.Errorf("unexpected top type: %+v", got[0])
		}
		if got[0].Percentage != 50 {
			t.Errorf("expected 50%%, got %v", got[0].Percentage)
		}
		if got[0].AvgBudget != 4000 {
			t.Errorf("expected avg budget 4000, got %v", got[0].AvgBudget)
		}
		if got[1].EventType != "graduation" || got[2].EventType != "corporate" {
			t.Errorf("unexpected order: %+v", got)
		}
	})

	t.Run("Revenue Ties Keep First Occurrence Order", func(t *testing.T) {
		events := []model.Event{
			{EventType: "birthday", Budget: 100},
			{EventType: "anniversary", Budget: 100},
		}

		got := report.EventTypeDistribution(events)
		if got[0].EventType != "birthday" || got[1].EventType != "anniversary" {
			t.Errorf("tie broke insertion order: %+v", got)
		}
	})
}

func TestStaffLeaderboard(t *testing.T) {
	staff := []model.StaffMember{
		{ID: 1, Name: "Ana", Rating: 4.2, TotalEvents: 12},
		{ID: 2, Name: "Luis", Rating: 4.9, TotalEvents: 0},
		{ID: 3, Name: "Marta", Rating: 4.5, TotalEvents: 30},
		{ID: 4, Name: "Pedro", Rating: 3.1, TotalEvents: 2},
	}

	t.Run("Top N By Rating", func(t *testing.T) {
		got := report.StaffLeaderboard(staff, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2, got %d", len(got))
		}
		// Zero-event staff are still eligible.
		if got[0].ID != 2 || got[1].ID != 3 {
			t.Errorf("unexpected leaderboard: %+v", got)
		}
	})

	t.Run("TopN Larger Than Roster", func(t *testing.T) {
		if got := report.StaffLeaderboard(staff, 10); len(got) != 4 {
			t.Errorf("expected full roster, got %d", len(got))
		}
	})

	t.Run("Input Not Mutated", func(t *testing.T) {
		report.StaffLeaderboard(staff, 4)
		if staff[0].ID != 1 || staff[3].ID != 4 {
			t.Errorf("input slice reordered: %+v", staff)
		}
	})

	t.Run("Zero TopN", func(t *testing.T) {
		if got := report.StaffLeaderboard(staff, 0); len(got) != 0 {
			t.Errorf("expected empty, got %v", got)
		}
	})
}

func TestUpcomingEvents(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	events := []model.Event{
		{ID: 1, Date: "2024-06-20"},
		{ID: 2, Date: "2024-06-16"},
		{ID: 3, Date: "2024-06-10"},      // past
		{ID: 4, Date: "2024-08-01"},      // beyond horizon
		{ID: 5, Date: "garbage"},         // malformed
		{ID: 6, Date: "2024-06-30"},      // last day of horizon
	}

	t.Run("Window And Ascending Order", func(t *testing.T) {
		got := report.UpcomingEvents(events, asOf, 15)
		want := []int64{2, 1, 6}
		if len(got) != len(want) {
			t.Fatalf("expected %d events, got %d: %+v", len(want), len(got), got)
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d: expected event %d, got %d", i, id, got[i].ID)
			}
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if got := report.UpcomingEvents(nil, asOf, 30); len(got) != 0 {
			t.Errorf("expected empty, got %v", got)
		}
	})
}

func TestTotalsAndAverages(t *testing.T) {
	t.Run("TotalRevenue Empty", func(t *testing.T) {
		if got := report.TotalRevenue(nil); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("AverageBudget Empty Is Zero Not NaN", func(t *testing.T) {
		got := report.AverageBudget(nil)
		if got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("AverageRating", func(t *testing.T) {
		staff := []model.StaffMember{{Rating: 4}, {Rating: 5}}
		if got := report.AverageRating(staff); got != 4.5 {
			t.Errorf("expected 4.5, got %v", got)
		}
		if got := report.AverageRating(nil); got != 0 {
			t.Errorf("expected 0 on empty roster, got %v", got)
		}
	})
}

func TestFilters(t *testing.T) {
	events := []model.Event{
		{ID: 1, Status: model.EventStatusCompleted, Date: "2024-05-01"},
		{ID: 2, Status: model.EventStatusPlanning, Date: "2024-05-02"},
		{ID: 3, Status: model.EventStatusCompleted, Date: "bad-date"},
	}

	t.Run("FilterByStatus", func(t *testing.T) {
		got := report.FilterByStatus(events, model.EventStatusCompleted)
		if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
			t.Errorf("unexpected filtered events: %+v", got)
		}
	})

	t.Run("FilterByDateRange Skips Malformed", func(t *testing.T) {
		from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
		got := report.FilterByDateRange(events, from, to)
		if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
			t.Errorf("unexpected filtered events: %+v", got)
		}
	})
}

func TestAggregationIdempotence(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	events := []model.Event{
		{ID: 1, EventType: "wedding", Date: "2024-05-10", Budget: 1000},
		{ID: 2, EventType: "corporate", Date: "2024-06-01", Budget: 2000},
		{ID: 3, EventType: "wedding", Date: "oops", Budget: 3000},
	}

	if !reflect.DeepEqual(report.MonthlyRevenue(events, 2, asOf), report.MonthlyRevenue(events, 2, asOf)) {
		t.Error("MonthlyRevenue not idempotent")
	}
	if !reflect.DeepEqual(report.EventTypeDistribution(events), report.EventTypeDistribution(events)) {
		t.Error("EventTypeDistribution not idempotent")
	}
	if !reflect.DeepEqual(report.UpcomingEvents(events, asOf, 30), report.UpcomingEvents(events, asOf, 30)) {
		t.Error("UpcomingEvents not idempotent")
	}
}
