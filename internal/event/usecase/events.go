package usecase

import (
	"context"
	"errors"
	"fmt"

	"banquetpro/internal/event"
	"banquetpro/internal/event/repository"
	"banquetpro/internal/model"
	"banquetpro/internal/store"
)

func (uc *implUseCase) List(ctx context.Context, input event.ListInput) (event.ListOutput, error) {
	if input.Status != "" && !model.ValidEventStatus(input.Status) {
		return event.ListOutput{}, event.ErrInvalidStatus
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		Status: input.Status,
		Skip:   input.Skip,
		Limit:  input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event usecase: failed to list events: %v", err)
		return event.ListOutput{}, fmt.Errorf("failed to list events: %w", err)
	}
	return event.ListOutput{Events: events, Count: len(events)}, nil
}

func (uc *implUseCase) Get(ctx context.Context, id int64) (model.Event, error) {
	e, err := uc.repo.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Event{}, event.ErrEventNotFound
		}
		return model.Event{}, fmt.Errorf("failed to get event: %w", err)
	}
	return e, nil
}

func (uc *implUseCase) Create(ctx context.Context, input event.CreateEventInput) (model.Event, error) {
	if input.Name == "" {
		return model.Event{}, event.ErrNameRequired
	}
	status := input.Status
	if status == "" {
		status = model.EventStatusPlanning
	}
	if !model.ValidEventStatus(status) {
		return model.Event{}, event.ErrInvalidStatus
	}

	if _, err := uc.clients.GetClient(ctx, input.ClientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Event{}, event.ErrClientNotFound
		}
		return model.Event{}, fmt.Errorf("failed to check client: %w", err)
	}

	free, err := uc.venueFree(ctx, input.Venue, input.Date, 0)
	if err != nil {
		return model.Event{}, err
	}
	if !free {
		return model.Event{}, event.ErrVenueTaken
	}

	e, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		Name:        input.Name,
		ClientID:    input.ClientID,
		EventType:   input.EventType,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Venue:       input.Venue,
		GuestsCount: input.GuestsCount,
		Budget:      input.Budget,
		Status:      status,
		Notes:       input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event usecase: failed to create event: %v", err)
		return model.Event{}, fmt.Errorf("failed to create event: %w", err)
	}

	uc.l.Infof(ctx, "event usecase: created event %d (%s at %s on %s)", e.ID, e.Name, e.Venue, e.Date)
	uc.syncCalendar(e)
	return e, nil
}

func (uc *implUseCase) Update(ctx context.Context, id int64, input event.UpdateEventInput) (model.Event, error) {
	if input.Status != nil && !model.ValidEventStatus(*input.Status) {
		return model.Event{}, event.ErrInvalidStatus
	}

	current, err := uc.Get(ctx, id)
	if err != nil {
		return model.Event{}, err
	}

	if input.ClientID != nil && *input.ClientID != current.ClientID {
		if _, err := uc.clients.GetClient(ctx, *input.ClientID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return model.Event{}, event.ErrClientNotFound
			}
			return model.Event{}, fmt.Errorf("failed to check client: %w", err)
		}
	}

	e, err := uc.repo.UpdateEvent(ctx, id, repository.UpdateEventOptions{
		Name:        input.Name,
		ClientID:    input.ClientID,
		EventType:   input.EventType,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Venue:       input.Venue,
		GuestsCount: input.GuestsCount,
		Budget:      input.Budget,
		Status:      input.Status,
		Notes:       input.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Event{}, event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "event usecase: failed to update event %d: %v", id, err)
		return model.Event{}, fmt.Errorf("failed to update event: %w", err)
	}

	// Confirmation is the moment the booking becomes real for the venue.
	if input.Status != nil && *input.Status == model.EventStatusConfirmed &&
		current.Status != model.EventStatusConfirmed {
		uc.syncCalendar(e)
	}
	return e, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "event usecase: failed to delete event %d: %v", id, err)
		return fmt.Errorf("failed to delete event: %w", err)
	}

	uc.l.Infof(ctx, "event usecase: deleted event %d", id)
	return nil
}

// venueFree reports whether no non-cancelled event other than selfID holds
// the venue on that date.
func (uc *implUseCase) venueFree(ctx context.Context, venue, date string, selfID int64) (bool, error) {
	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{Venue: venue, Date: date})
	if err != nil {
		return false, fmt.Errorf("failed to check venue availability: %w", err)
	}
	for _, e := range events {
		if e.ID == selfID {
			continue
		}
		if e.Status != model.EventStatusCancelled {
			return false, nil
		}
	}
	return true, nil
}
