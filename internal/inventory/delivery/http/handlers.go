package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/pkg/response"
)

// List godoc
// @Summary     List inventory items
// @Description Returns inventory items with derived stock status and fill percentage.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       category  query string false "Filter by category"
// @Param       low_stock query bool   false "Only items at or below their minimum stock"
// @Param       skip      query int    false "Page offset (default: 0)"
// @Param       limit     query int    false "Page size (default: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventory [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
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
// @Summary     Get inventory item
// @Description Returns a single inventory item with derived stock health.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventory/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := itemID(c)
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

	response.OK(c, newItemResp(output))
}

// Create godoc
// @Summary     Create inventory item
// @Description Creates a new inventory item after validating stock bounds.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventory [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondErr(c, err)
		return
	}

	response.Created(c, newItemResp(output))
}

// Update godoc
// @Summary     Update inventory item
// @Description Replaces an inventory item's fields after validating stock bounds.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Item ID"
// @Param       body body updateReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventory/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := itemID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondErr(c, err)
		return
	}

	response.OK(c, newItemResp(output))
}

// Restock godoc
// @Summary     Restock inventory item
// @Description Adds a positive quantity to the item's current stock and stamps the restock time. The result may exceed maximum_stock.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id   path int        true "Item ID"
// @Param       body body restockReq true "Restock quantity"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventory/{id}/restock [PUT]
func (h *handler) Restock(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := itemID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processRestockReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Restock(ctx, id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Restock: %v", err)
		h.respondErr(c, err)
		return
	}

	response.OK(c, newItemResp(output))
}
