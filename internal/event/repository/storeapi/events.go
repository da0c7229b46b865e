package storeapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"banquetpro/internal/event/repository"
	"banquetpro/internal/model"
	"banquetpro/internal/store"
	pkgLog "banquetpro/pkg/log"
)

const basePath = "/api/v1/events"

type implRepository struct {
	client *store.Client
	l      pkgLog.Logger
}

// New creates an event repository backed by the external data store.
func New(client *store.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = 100
	}

	q := url.Values{}
	q.Set("skip", strconv.Itoa(opt.Skip))
	q.Set("limit", strconv.Itoa(limit))
	if opt.Status != "" {
		q.Set("status_filter", string(opt.Status))
	}
	if opt.ClientID != 0 {
		q.Set("client_id", strconv.FormatInt(opt.ClientID, 10))
	}
	if opt.Venue != "" {
		q.Set("venue", opt.Venue)
	}
	if opt.Date != "" {
		q.Set("date", opt.Date)
	}

	var events []model.Event
	if err := r.client.Get(ctx, basePath, q, &events); err != nil {
		r.l.Errorf(ctx, "event repository: failed to list events: %v", err)
		return nil, err
	}
	return events, nil
}

func (r *implRepository) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	var e model.Event
	if err := r.client.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), nil, &e); err != nil {
		return model.Event{}, err
	}
	return e, nil
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	body := map[string]any{
		"name":         opt.Name,
		"client_id":    opt.ClientID,
		"event_type":   opt.EventType,
		"date":         opt.Date,
		"start_time":   opt.StartTime,
		"end_time":     opt.EndTime,
		"venue":        opt.Venue,
		"guests_count": opt.GuestsCount,
		"budget":       opt.Budget,
		"status":       opt.Status,
		"notes":        opt.Notes,
	}

	var e model.Event
	if err := r.client.Post(ctx, basePath, body, &e); err != nil {
		r.l.Errorf(ctx, "event repository: failed to create event: %v", err)
		return model.Event{}, err
	}
	return e, nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, id int64, opt repository.UpdateEventOptions) (model.Event, error) {
	body := map[string]any{}
	setIf(body, "name", opt.Name)
	setIf(body, "event_type", opt.EventType)
	setIf(body, "date", opt.Date)
	setIf(body, "start_time", opt.StartTime)
	setIf(body, "end_time", opt.EndTime)
	setIf(body, "venue", opt.Venue)
	setIf(body, "notes", opt.Notes)
	if opt.ClientID != nil {
		body["client_id"] = *opt.ClientID
	}
	if opt.GuestsCount != nil {
		body["guests_count"] = *opt.GuestsCount
	}
	if opt.Budget != nil {
		body["budget"] = *opt.Budget
	}
	if opt.Status != nil {
		body["status"] = *opt.Status
	}

	var e model.Event
	if err := r.client.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), body, &e); err != nil {
		r.l.Errorf(ctx, "event repository: failed to update event %d: %v", id, err)
		return model.Event{}, err
	}
	return e, nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("%s/%d", basePath, id)); err != nil {
		r.l.Errorf(ctx, "event repository: failed to delete event %d: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) ListAssignments(ctx context.Context, eventID int64) ([]model.StaffAssignment, error) {
	var assignments []model.StaffAssignment
	if err := r.client.Get(ctx, fmt.Sprintf("%s/%d/assignments", basePath, eventID), nil, &assignments); err != nil {
		r.l.Errorf(ctx, "event repository: failed to list assignments for event %d: %v", eventID, err)
		return nil, err
	}
	return assignments, nil
}

func (r *implRepository) CreateAssignment(ctx context.Context, opt repository.CreateAssignmentOptions) (model.StaffAssignment, error) {
	body := map[string]any{
		"staff_id": opt.StaffID,
		"notes":    opt.Notes,
	}

	var a model.StaffAssignment
	if err := r.client.Post(ctx, fmt.Sprintf("%s/%d/assignments", basePath, opt.EventID), body, &a); err != nil {
		r.l.Errorf(ctx, "event repository: failed to assign staff %d to event %d: %v", opt.StaffID, opt.EventID, err)
		return model.StaffAssignment{}, err
	}
	return a, nil
}

func setIf(body map[string]any, key string, v *string) {
	if v != nil {
		body[key] = *v
	}
}
