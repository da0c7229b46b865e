package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/internal/model"
	"banquetpro/pkg/response"
)

// List godoc
// @Summary     List staff members
// @Description Returns staff members with an optional availability filter.
// @Tags        Staff
// @Accept      json
// @Produce     json
// @Param       status_filter query string false "Filter by status (available/busy/on_event/unavailable)"
// @Param       skip          query int    false "Page offset (default: 0)"
// @Param       limit         query int    false "Page size (default: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/staff [GET]
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
// @Summary     Get staff member
// @Description Returns a single staff member by ID.
// @Tags        Staff
// @Accept      json
// @Produce     json
// @Param       id path int true "Staff ID"
// @Success     200 {object} staffResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/staff/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := staffID(c)
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

	response.OK(c, newStaffResp(output))
}

// Create godoc
// @Summary     Create staff member
// @Description Registers a new staff member. The email must not be in use.
// @Tags        Staff
// @Accept      json
// @Produce     json
// @Param       body body staffReq true "Staff data"
// @Success     201 {object} staffResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/staff [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req staffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondErr(c, err)
		return
	}

	response.Created(c, newStaffResp(output))
}

// Update godoc
// @Summary     Update staff member
// @Description Replaces a staff member's fields. Email changes are conflict-checked.
// @Tags        Staff
// @Accept      json
// @Produce     json
// @Param       id   path int      true "Staff ID"
// @Param       body body staffReq true "Staff data"
// @Success     200 {object} staffResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/staff/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := staffID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req staffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, id, req.toUpdateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondErr(c, err)
		return
	}

	response.OK(c, newStaffResp(output))
}

// UpdateStatus godoc
// @Summary     Update staff status
// @Description Sets a staff member's availability status.
// @Tags        Staff
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Staff ID"
// @Param       body body statusReq true "New status"
// @Success     200 {object} staffResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/staff/{id}/status [PUT]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := staffID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateStatus(ctx, id, model.StaffStatus(req.Status))
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		h.respondErr(c, err)
		return
	}

	response.OK(c, newStaffResp(output))
}
