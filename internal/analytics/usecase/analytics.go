package usecase

import (
	"context"
	"time"

	"banquetpro/internal/analytics"
	eventRepo "banquetpro/internal/event/repository"
	inventoryRepo "banquetpro/internal/inventory/repository"
	"banquetpro/internal/model"
	"banquetpro/internal/report"
	staffRepo "banquetpro/internal/staff/repository"
	"banquetpro/pkg/dateutil"
)

// Summary aggregates completed events over the requested window. Missing
// bounds fall back to the trailing cfg.MonthsBack months ending today;
// malformed bounds are treated the same as absent ones.
func (uc *implUseCase) Summary(ctx context.Context, input analytics.SummaryInput) (analytics.Summary, error) {
	start, end := uc.summaryWindow(input)

	events, err := uc.events.ListEvents(ctx, eventRepo.ListEventsOptions{
		Status: model.EventStatusCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analytics usecase: failed to list completed events: %v", err)
		return analytics.Summary{}, err
	}
	completed := report.FilterByDateRange(events, start, end)

	staff, err := uc.staff.ListStaff(ctx, staffRepo.ListStaffOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "analytics usecase: failed to list staff: %v", err)
		return analytics.Summary{}, err
	}

	months := monthsSpan(start, end)

	return analytics.Summary{
		MonthlyRevenue:      report.MonthlyRevenue(completed, months, end),
		EventTypes:          report.EventTypeDistribution(completed),
		TotalEvents:         len(completed),
		TotalRevenue:        report.TotalRevenue(completed),
		AverageSatisfaction: report.AverageRating(staff),
	}, nil
}

// Dashboard builds the landing-page snapshot: the upcoming workload, how
// healthy the stock is, month-to-date revenue, and the staff leaderboard.
func (uc *implUseCase) Dashboard(ctx context.Context) (analytics.Dashboard, error) {
	now := uc.now()

	events, err := uc.events.ListEvents(ctx, eventRepo.ListEventsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "analytics usecase: failed to list events: %v", err)
		return analytics.Dashboard{}, err
	}

	items, err := uc.inventory.ListItems(ctx, inventoryRepo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "analytics usecase: failed to list inventory: %v", err)
		return analytics.Dashboard{}, err
	}

	staff, err := uc.staff.ListStaff(ctx, staffRepo.ListStaffOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "analytics usecase: failed to list staff: %v", err)
		return analytics.Dashboard{}, err
	}

	completed := report.FilterByStatus(events, model.EventStatusCompleted)
	monthToDate := report.FilterByDateRange(completed, dateutil.StartOfMonth(now), dateutil.EndOfDay(now))

	// Bare event dates parse to midnight, so the upcoming window must open
	// at the start of today or events later today fall out.
	return analytics.Dashboard{
		UpcomingEvents:     report.UpcomingEvents(events, dateutil.StartOfDay(now), uc.cfg.UpcomingHorizonDays),
		CriticalItems:      uc.stock.CriticalCount(items),
		InventoryValue:     uc.stock.TotalValue(items),
		MonthToDateRevenue: report.TotalRevenue(monthToDate),
		StaffLeaderboard:   report.StaffLeaderboard(staff, uc.cfg.LeaderboardSize),
	}, nil
}

// summaryWindow resolves the inclusive reporting bounds. The end anchors
// the window: absent a start, the window stretches back cfg.MonthsBack
// months so the monthly buckets line up with the default view.
func (uc *implUseCase) summaryWindow(input analytics.SummaryInput) (time.Time, time.Time) {
	end := dateutil.EndOfDay(uc.now())
	if input.EndDate != "" {
		if parsed, err := dateutil.Parse(input.EndDate); err == nil {
			end = dateutil.EndOfDay(parsed)
		}
	}

	start := dateutil.StartOfMonth(end).AddDate(0, -(uc.cfg.MonthsBack - 1), 0)
	if input.StartDate != "" {
		if parsed, err := dateutil.Parse(input.StartDate); err == nil {
			start = dateutil.StartOfDay(parsed)
		}
	}

	return start, end
}

// monthsSpan counts the calendar months covered by [start, end] inclusive.
func monthsSpan(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if months < 1 {
		months = 1
	}
	return months
}
