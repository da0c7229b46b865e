package http

import (
	"banquetpro/internal/event"
	"banquetpro/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name        string  `json:"name"         binding:"required,min=1,max=255"`
	ClientID    int64   `json:"client_id"    binding:"required,min=1"`
	EventType   string  `json:"event_type"   binding:"required,max=100"`
	Date        string  `json:"date"         binding:"required"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Venue       string  `json:"venue"        binding:"required,max=255"`
	GuestsCount int     `json:"guests_count" binding:"min=0"`
	Budget      float64 `json:"budget"       binding:"min=0"`
	Status      string  `json:"status"       binding:"omitempty,oneof=planning confirmed in_preparation completed cancelled"`
	Notes       string  `json:"notes"        binding:"max=2000"`
}

func (r createReq) toInput() event.CreateEventInput {
	return event.CreateEventInput{
		Name:        r.Name,
		ClientID:    r.ClientID,
		EventType:   r.EventType,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Venue:       r.Venue,
		GuestsCount: r.GuestsCount,
		Budget:      r.Budget,
		Status:      model.EventStatus(r.Status),
		Notes:       r.Notes,
	}
}

// ---

type updateReq struct {
	Name        *string  `json:"name"         binding:"omitempty,min=1,max=255"`
	ClientID    *int64   `json:"client_id"    binding:"omitempty,min=1"`
	EventType   *string  `json:"event_type"   binding:"omitempty,max=100"`
	Date        *string  `json:"date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Venue       *string  `json:"venue"        binding:"omitempty,max=255"`
	GuestsCount *int     `json:"guests_count" binding:"omitempty,min=0"`
	Budget      *float64 `json:"budget"       binding:"omitempty,min=0"`
	Status      *string  `json:"status"       binding:"omitempty,oneof=planning confirmed in_preparation completed cancelled"`
	Notes       *string  `json:"notes"        binding:"omitempty,max=2000"`
}

func (r updateReq) toInput() event.UpdateEventInput {
	input := event.UpdateEventInput{
		Name:        r.Name,
		ClientID:    r.ClientID,
		EventType:   r.EventType,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Venue:       r.Venue,
		GuestsCount: r.GuestsCount,
		Budget:      r.Budget,
		Notes:       r.Notes,
	}
	if r.Status != nil {
		status := model.EventStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// ---

type listReq struct {
	Status string `form:"status_filter"`
	Skip   int    `form:"skip"`
	Limit  int    `form:"limit"`
}

func (r listReq) toInput() event.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	skip := r.Skip
	if skip < 0 {
		skip = 0
	}
	return event.ListInput{
		Status: model.EventStatus(r.Status),
		Skip:   skip,
		Limit:  limit,
	}
}

type assignReq struct {
	StaffID int64  `json:"staff_id" binding:"required,min=1"`
	Notes   string `json:"notes"    binding:"max=2000"`
}

func (r assignReq) toInput() event.AssignStaffInput {
	return event.AssignStaffInput{StaffID: r.StaffID, Notes: r.Notes}
}

// --- Response DTOs ---

type eventResp struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ClientID    int64   `json:"client_id"`
	EventType   string  `json:"event_type"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time,omitempty"`
	EndTime     string  `json:"end_time,omitempty"`
	Venue       string  `json:"venue"`
	GuestsCount int     `json:"guests_count"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:          e.ID,
		Name:        e.Name,
		ClientID:    e.ClientID,
		EventType:   e.EventType,
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Venue:       e.Venue,
		GuestsCount: e.GuestsCount,
		Budget:      e.Budget,
		Status:      string(e.Status),
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Count  int         `json:"count"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	return listResp{Events: events, Count: out.Count}
}

type assignmentResp struct {
	ID         int64  `json:"id"`
	EventID    int64  `json:"event_id"`
	StaffID    int64  `json:"staff_id"`
	AssignedAt string `json:"assigned_at,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func newAssignmentResp(a model.StaffAssignment) assignmentResp {
	return assignmentResp{
		ID:         a.ID,
		EventID:    a.EventID,
		StaffID:    a.StaffID,
		AssignedAt: a.AssignedAt,
		Notes:      a.Notes,
	}
}
