package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"banquetpro/internal/model"
)

// cachedRepository is a read-through cache in front of a Repository.
// Event listings feed the dashboard and the analytics summary, so reads are
// cached briefly; any write purges everything. Assignments are low-volume
// and pass through uncached.
type cachedRepository struct {
	next   Repository
	events *expirable.LRU[int64, model.Event]
	lists  *expirable.LRU[string, []model.Event]
}

// NewCached wraps next with an expirable LRU cache.
func NewCached(next Repository, ttl time.Duration) Repository {
	return &cachedRepository{
		next:   next,
		events: expirable.NewLRU[int64, model.Event](1024, nil, ttl),
		lists:  expirable.NewLRU[string, []model.Event](64, nil, ttl),
	}
}

func (r *cachedRepository) ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error) {
	key := fmt.Sprintf("%s|%d|%s|%s|%d|%d", opt.Status, opt.ClientID, opt.Venue, opt.Date, opt.Skip, opt.Limit)
	if events, ok := r.lists.Get(key); ok {
		return events, nil
	}

	events, err := r.next.ListEvents(ctx, opt)
	if err != nil {
		return nil, err
	}
	r.lists.Add(key, events)
	return events, nil
}

func (r *cachedRepository) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	if e, ok := r.events.Get(id); ok {
		return e, nil
	}

	e, err := r.next.GetEvent(ctx, id)
	if err != nil {
		return model.Event{}, err
	}
	r.events.Add(id, e)
	return e, nil
}

func (r *cachedRepository) CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error) {
	e, err := r.next.CreateEvent(ctx, opt)
	if err != nil {
		return model.Event{}, err
	}
	r.purge()
	return e, nil
}

func (r *cachedRepository) UpdateEvent(ctx context.Context, id int64, opt UpdateEventOptions) (model.Event, error) {
	e, err := r.next.UpdateEvent(ctx, id, opt)
	if err != nil {
		return model.Event{}, err
	}
	r.purge()
	return e, nil
}

func (r *cachedRepository) DeleteEvent(ctx context.Context, id int64) error {
	if err := r.next.DeleteEvent(ctx, id); err != nil {
		return err
	}
	r.purge()
	return nil
}

func (r *cachedRepository) ListAssignments(ctx context.Context, eventID int64) ([]model.StaffAssignment, error) {
	return r.next.ListAssignments(ctx, eventID)
}

func (r *cachedRepository) CreateAssignment(ctx context.Context, opt CreateAssignmentOptions) (model.StaffAssignment, error) {
	return r.next.CreateAssignment(ctx, opt)
}

func (r *cachedRepository) purge() {
	r.events.Purge()
	r.lists.Purge()
}
