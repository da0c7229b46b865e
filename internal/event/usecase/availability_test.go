package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"banquetpro/internal/event"
	"banquetpro/internal/event/repository"
	inventoryRepo "banquetpro/internal/inventory/repository"
	"banquetpro/internal/model"
	staffRepo "banquetpro/internal/staff/repository"
	"banquetpro/internal/store"
	"banquetpro/pkg/gcalendar"
)

func TestAvailability(t *testing.T) {
	ctx := context.Background()

	theEvent := model.Event{
		ID: 4, Name: "Corporate Retreat", Venue: "Garden Terrace",
		Date: "2024-08-02", Status: model.EventStatusPlanning,
	}

	t.Run("All Clear", func(t *testing.T) {
		repo := &mockRepo{
			getFunc:  func(id int64) (model.Event, error) { return theEvent, nil },
			listFunc: func(opt repository.ListEventsOptions) ([]model.Event, error) { return []model.Event{theEvent}, nil },
		}
		staff := &mockStaffRepo{listFunc: func(opt staffRepo.ListStaffOptions) ([]model.StaffMember, error) {
			return []model.StaffMember{{ID: 1, Status: model.StaffStatusAvailable}}, nil
		}}
		inv := &mockInventoryRepo{listFunc: func(opt inventoryRepo.ListItemsOptions) ([]model.InventoryItem, error) {
			return []model.InventoryItem{{ID: 1, CurrentStock: 10, MinimumStock: 5, MaximumStock: 20}}, nil
		}}
		uc := newUseCase(repo, &mockClientRepo{}, staff, inv, nil)

		got, err := uc.Availability(ctx, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.VenueAvailable || !got.StaffAvailable || !got.InventorySufficient {
			t.Errorf("expected all clear, got %+v", got)
		}
		if len(got.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %v", got.Recommendations)
		}
	})

	t.Run("Own Booking Does Not Block The Venue", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(id int64) (model.Event, error) { return theEvent, nil },
			listFunc: func(opt repository.ListEventsOptions) ([]model.Event, error) {
				confirmed := theEvent
				confirmed.Status = model.EventStatusConfirmed
				return []model.Event{confirmed}, nil
			},
		}
		uc := newUseCase(repo, &mockClientRepo{}, &mockStaffRepo{}, &mockInventoryRepo{}, nil)

		got, err := uc.Availability(ctx, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.VenueAvailable {
			t.Error("the event's own booking must not count as a conflict")
		}
	})

	t.Run("Degraded Resources", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(id int64) (model.Event, error) { return theEvent, nil },
			listFunc: func(opt repository.ListEventsOptions) ([]model.Event, error) {
				return []model.Event{{ID: 77, Venue: theEvent.Venue, Date: theEvent.Date, Status: model.EventStatusConfirmed}}, nil
			},
		}
		staff := &mockStaffRepo{listFunc: func(opt staffRepo.ListStaffOptions) ([]model.StaffMember, error) {
			return nil, nil
		}}
		inv := &mockInventoryRepo{listFunc: func(opt inventoryRepo.ListItemsOptions) ([]model.InventoryItem, error) {
			return []model.InventoryItem{{ID: 1, CurrentStock: 0, MinimumStock: 5, MaximumStock: 20}}, nil
		}}
		uc := newUseCase(repo, &mockClientRepo{}, staff, inv, nil)

		got, err := uc.Availability(ctx, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VenueAvailable || got.StaffAvailable || got.InventorySufficient {
			t.Errorf("expected everything degraded, got %+v", got)
		}
		if len(got.Recommendations) != 3 {
			t.Errorf("expected 3 recommendations, got %v", got.Recommendations)
		}
	})

	t.Run("Flags A Past Event Date", func(t *testing.T) {
		// fixedNow is 2024-06-15; the event happened two weeks earlier
		past := theEvent
		past.Date = "2024-06-01"
		repo := &mockRepo{
			getFunc:  func(id int64) (model.Event, error) { return past, nil },
			listFunc: func(opt repository.ListEventsOptions) ([]model.Event, error) { return []model.Event{past}, nil },
		}
		staff := &mockStaffRepo{listFunc: func(opt staffRepo.ListStaffOptions) ([]model.StaffMember, error) {
			return []model.StaffMember{{ID: 1, Status: model.StaffStatusAvailable}}, nil
		}}
		inv := &mockInventoryRepo{listFunc: func(opt inventoryRepo.ListItemsOptions) ([]model.InventoryItem, error) {
			return []model.InventoryItem{{ID: 1, CurrentStock: 10, MinimumStock: 5, MaximumStock: 20}}, nil
		}}
		uc := newUseCase(repo, &mockClientRepo{}, staff, inv, nil)

		got, err := uc.Availability(ctx, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Recommendations) != 1 || !strings.Contains(got.Recommendations[0], "in the past") {
			t.Errorf("expected a past-date recommendation, got %v", got.Recommendations)
		}
	})

	t.Run("Calendar Cross-Check Reports Other Bookings", func(t *testing.T) {
		repo := &mockRepo{
			getFunc:  func(id int64) (model.Event, error) { return theEvent, nil },
			listFunc: func(opt repository.ListEventsOptions) ([]model.Event, error) { return []model.Event{theEvent}, nil },
		}
		staff := &mockStaffRepo{listFunc: func(opt staffRepo.ListStaffOptions) ([]model.StaffMember, error) {
			return []model.StaffMember{{ID: 1, Status: model.StaffStatusAvailable}}, nil
		}}
		inv := &mockInventoryRepo{listFunc: func(opt inventoryRepo.ListItemsOptions) ([]model.InventoryItem, error) {
			return []model.InventoryItem{{ID: 1, CurrentStock: 10, MinimumStock: 5, MaximumStock: 20}}, nil
		}}
		cal := newMockCalendar()
		var listed gcalendar.ListEventsRequest
		cal.listFunc = func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
			listed = req
			return []gcalendar.Event{
				{ID: "cal-1", Summary: theEvent.Name},
				{ID: "cal-2", Summary: "Jones Anniversary"},
			}, nil
		}
		uc := newUseCase(repo, &mockClientRepo{}, staff, inv, cal)

		got, err := uc.Availability(ctx, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if listed.CalendarID != "banquets" {
			t.Errorf("listed calendar %q, want banquets", listed.CalendarID)
		}
		// the event's own synced entry must not count
		if len(got.Recommendations) != 1 || !strings.Contains(got.Recommendations[0], "1 other booking") {
			t.Errorf("expected one other-booking recommendation, got %v", got.Recommendations)
		}
	})

	t.Run("Calendar Failure Stays Advisory", func(t *testing.T) {
		repo := &mockRepo{
			getFunc:  func(id int64) (model.Event, error) { return theEvent, nil },
			listFunc: func(opt repository.ListEventsOptions) ([]model.Event, error) { return []model.Event{theEvent}, nil },
		}
		staff := &mockStaffRepo{listFunc: func(opt staffRepo.ListStaffOptions) ([]model.StaffMember, error) {
			return []model.StaffMember{{ID: 1, Status: model.StaffStatusAvailable}}, nil
		}}
		inv := &mockInventoryRepo{listFunc: func(opt inventoryRepo.ListItemsOptions) ([]model.InventoryItem, error) {
			return []model.InventoryItem{{ID: 1, CurrentStock: 10, MinimumStock: 5, MaximumStock: 20}}, nil
		}}
		cal := newMockCalendar()
		cal.listFunc = func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
			return nil, errors.New("calendar unreachable")
		}
		uc := newUseCase(repo, &mockClientRepo{}, staff, inv, cal)

		got, err := uc.Availability(ctx, 4)
		if err != nil {
			t.Fatalf("calendar failure must not fail the snapshot: %v", err)
		}
		if len(got.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %v", got.Recommendations)
		}
	})

	t.Run("Unknown Event", func(t *testing.T) {
		repo := &mockRepo{getFunc: func(id int64) (model.Event, error) {
			return model.Event{}, store.ErrNotFound
		}}
		uc := newUseCase(repo, &mockClientRepo{}, &mockStaffRepo{}, &mockInventoryRepo{}, nil)

		if _, err := uc.Availability(ctx, 404); !errors.Is(err, event.ErrEventNotFound) {
			t.Errorf("expected ErrEventNotFound, got %v", err)
		}
	})
}
