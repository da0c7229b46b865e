package usecase

import (
	"context"
	"fmt"
	"time"

	"banquetpro/internal/model"
	"banquetpro/pkg/dateutil"
	"banquetpro/pkg/gcalendar"
)

const calendarSyncTimeout = 10 * time.Second

// syncCalendar inserts the event into the banquet calendar in the
// background. Failures are logged and never surface to the caller.
func (uc *implUseCase) syncCalendar(e model.Event) {
	if uc.cal == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), calendarSyncTimeout)
		defer cancel()

		start, end, ok := eventWindow(e)
		if !ok {
			uc.l.Warnf(ctx, "calendar sync: event %d has unparseable dates, skipping", e.ID)
			return
		}

		_, err := uc.cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calCfg.CalendarID,
			Summary:     e.Name,
			Description: fmt.Sprintf("%s for %d guests, budget %.2f", e.EventType, e.GuestsCount, e.Budget),
			Location:    e.Venue,
			StartTime:   start,
			EndTime:     end,
			Timezone:    uc.calCfg.Timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "calendar sync: failed to sync event %d: %v", e.ID, err)
			return
		}
		uc.l.Infof(ctx, "calendar sync: event %d synced", e.ID)
	}()
}

// eventWindow derives the calendar slot from the event's temporal fields.
// Start/end times win when parseable; otherwise the whole day is blocked.
func eventWindow(e model.Event) (time.Time, time.Time, bool) {
	date, err := dateutil.Parse(e.Date)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	start, errS := dateutil.Parse(e.StartTime)
	end, errE := dateutil.Parse(e.EndTime)
	if errS != nil || errE != nil || !end.After(start) {
		return dateutil.StartOfDay(date), dateutil.EndOfDay(date), true
	}
	return start, end, true
}
