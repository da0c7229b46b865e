package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/pkg/response"
)

// List godoc
// @Summary     List clients
// @Description Returns a paginated list of clients.
// @Tags        Clients
// @Accept      json
// @Produce     json
// @Param       skip  query int false "Page offset (default: 0)"
// @Param       limit query int false "Page size (default: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/clients [GET]
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
// @Summary     Get client
// @Description Returns a single client by ID.
// @Tags        Clients
// @Accept      json
// @Produce     json
// @Param       id path int true "Client ID"
// @Success     200 {object} clientResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/clients/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := clientID(c)
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

	response.OK(c, newClientResp(output))
}

// Create godoc
// @Summary     Create client
// @Description Registers a new client. The email must not be in use.
// @Tags        Clients
// @Accept      json
// @Produce     json
// @Param       body body clientReq true "Client data"
// @Success     201 {object} clientResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/clients [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req clientReq
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

	response.Created(c, newClientResp(output))
}

// Update godoc
// @Summary     Update client
// @Description Replaces a client's fields. Email changes are conflict-checked.
// @Tags        Clients
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Client ID"
// @Param       body body clientReq true "Client data"
// @Success     200 {object} clientResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/clients/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := clientID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req clientReq
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

	response.OK(c, newClientResp(output))
}

// Delete godoc
// @Summary     Delete client
// @Description Removes a client. Rejected while events still reference it.
// @Tags        Clients
// @Accept      json
// @Produce     json
// @Param       id path int true "Client ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/clients/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := clientID(c)
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
