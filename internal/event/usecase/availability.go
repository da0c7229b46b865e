package usecase

import (
	"context"
	"fmt"

	"banquetpro/internal/event"
	inventoryRepo "banquetpro/internal/inventory/repository"
	"banquetpro/internal/model"
	staffRepo "banquetpro/internal/staff/repository"
	"banquetpro/pkg/dateutil"
	"banquetpro/pkg/gcalendar"
)

// Availability computes the resource snapshot for an event from live data:
// the venue is free when no other non-cancelled event holds it that date,
// staff is available when at least one member has status available, and
// inventory is sufficient when nothing is out of stock. Recommendations
// also flag past-dated events and, when a calendar is configured, other
// bookings the calendar shows that day.
func (uc *implUseCase) Availability(ctx context.Context, id int64) (event.Availability, error) {
	e, err := uc.Get(ctx, id)
	if err != nil {
		return event.Availability{}, err
	}

	venueFree, err := uc.venueFree(ctx, e.Venue, e.Date, e.ID)
	if err != nil {
		return event.Availability{}, err
	}

	members, err := uc.staff.ListStaff(ctx, staffRepo.ListStaffOptions{Status: model.StaffStatusAvailable, Limit: 1})
	if err != nil {
		return event.Availability{}, fmt.Errorf("failed to check staff availability: %w", err)
	}
	staffAvailable := len(members) > 0

	items, err := uc.inventory.ListItems(ctx, inventoryRepo.ListItemsOptions{})
	if err != nil {
		return event.Availability{}, fmt.Errorf("failed to check inventory: %w", err)
	}
	inventoryOK := true
	for _, item := range items {
		if uc.stock.Status(item) == model.StockStatusOutOfStock {
			inventoryOK = false
			break
		}
	}

	recs := []string{}
	if !venueFree {
		recs = append(recs, fmt.Sprintf("venue %q is booked by another event on %s", e.Venue, e.Date))
	}
	if !staffAvailable {
		recs = append(recs, "no staff members are currently available")
	}
	if !inventoryOK {
		recs = append(recs, "some inventory items are out of stock")
	}
	if date, err := dateutil.Parse(e.Date); err == nil && date.Before(dateutil.StartOfDay(uc.now())) {
		recs = append(recs, fmt.Sprintf("event date %s is in the past", e.Date))
	}
	if rec, ok := uc.calendarBookings(ctx, e); ok {
		recs = append(recs, rec)
	}

	return event.Availability{
		EventID:             e.ID,
		VenueAvailable:      venueFree,
		StaffAvailable:      staffAvailable,
		InventorySufficient: inventoryOK,
		Recommendations:     recs,
	}, nil
}

// calendarBookings cross-checks the banquet calendar for other entries on
// the event's date. Advisory only: the store stays the source of truth for
// venue conflicts, and calendar failures are logged, never surfaced.
func (uc *implUseCase) calendarBookings(ctx context.Context, e model.Event) (string, bool) {
	if uc.cal == nil {
		return "", false
	}

	date, err := dateutil.Parse(e.Date)
	if err != nil {
		return "", false
	}

	entries, err := uc.cal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calCfg.CalendarID,
		TimeMin:    dateutil.StartOfDay(date),
		TimeMax:    dateutil.EndOfDay(date),
	})
	if err != nil {
		uc.l.Warnf(ctx, "event usecase: calendar availability check failed for event %d: %v", e.ID, err)
		return "", false
	}

	others := 0
	for _, entry := range entries {
		if entry.Summary != e.Name {
			others++
		}
	}
	if others == 0 {
		return "", false
	}
	return fmt.Sprintf("calendar shows %d other booking(s) on %s", others, e.Date), true
}
