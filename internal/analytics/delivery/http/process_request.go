package http

import "github.com/gin-gonic/gin"

func (h *handler) processSummaryReq(c *gin.Context) (summaryReq, error) {
	var req summaryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
