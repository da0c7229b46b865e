package http

import (
	"github.com/gin-gonic/gin"

	"banquetpro/pkg/response"
)

// Summary godoc
// @Summary     Business summary
// @Description Aggregates completed events over the requested window: monthly revenue, event-type distribution, totals, and average staff satisfaction. The window defaults to the trailing twelve months.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Param       start_date query string false "Window start (YYYY-MM-DD)"
// @Param       end_date   query string false "Window end (YYYY-MM-DD)"
// @Success     200 {object} analytics.Summary
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummaryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	summary, err := h.uc.Summary(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, summary)
}

// Dashboard godoc
// @Summary     Dashboard snapshot
// @Description Returns the landing-page snapshot: upcoming events, stock health, month-to-date revenue, and the staff leaderboard.
// @Tags        Analytics
// @Accept      json
// @Produce     json
// @Success     200 {object} analytics.Dashboard
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	dashboard, err := h.uc.Dashboard(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, dashboard)
}
