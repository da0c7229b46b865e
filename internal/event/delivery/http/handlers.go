package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/pkg/response"
)

// List godoc
// @Summary     List events
// @Description Returns events with an optional lifecycle status filter.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       status_filter query string false "Filter by status (planning/confirmed/in_preparation/completed/cancelled)"
// @Param       skip          query int    false "Page offset (default: 0)"
// @Param       limit         query int    false "Page size (default: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondErr(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event
// @Description Returns a single event by ID.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {object} eventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := eventID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Get(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		h.respondErr(c, err)
		return
	}

	response.OK(c, newEventResp(output))
}

// Create godoc
// @Summary     Create event
// @Description Books a new event. The client must exist and the venue must be free of other non-cancelled events on the same date.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     201 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondErr(c, err)
		return
	}

	response.Created(c, newEventResp(output))
}

// Update godoc
// @Summary     Update event
// @Description Applies a partial update; omitted fields keep their stored values.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Event ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := eventID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondErr(c, err)
		return
	}

	response.OK(c, newEventResp(output))
}

// Delete godoc
// @Summary     Delete event
// @Description Permanently removes an event.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := eventID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondErr(c, err)
		return
	}

	response.OK(c, nil)
}

// Availability godoc
// @Summary     Check event resource availability
// @Description Computes the venue, staff, and inventory snapshot for an event from live data.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {object} event.Availability
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id}/availability [GET]
func (h *handler) Availability(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := eventID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Availability(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Availability: %v", err)
		h.respondErr(c, err)
		return
	}

	response.OK(c, output)
}

// AssignStaff godoc
// @Summary     Assign staff to event
// @Description Links an existing staff member to the event. Duplicates are rejected.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Event ID"
// @Param       body body assignReq true "Assignment data"
// @Success     201 {object} assignmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id}/assignments [POST]
func (h *handler) AssignStaff(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := eventID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AssignStaff(ctx, id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AssignStaff: %v", err)
		h.respondErr(c, err)
		return
	}

	response.Created(c, newAssignmentResp(output))
}

// ListAssignments godoc
// @Summary     List event staff assignments
// @Description Returns the staff members assigned to the event.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {array} assignmentResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id}/assignments [GET]
func (h *handler) ListAssignments(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := eventID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListAssignments(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAssignments: %v", err)
		h.respondErr(c, err)
		return
	}

	assignments := make([]assignmentResp, len(output))
	for i, a := range output {
		assignments[i] = newAssignmentResp(a)
	}
	response.OK(c, assignments)
}
