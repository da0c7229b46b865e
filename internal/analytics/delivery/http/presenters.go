package http

import "banquetpro/internal/analytics"

// summaryReq narrows the reporting window. Both bounds are optional ISO
// dates (YYYY-MM-DD).
type summaryReq struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (req summaryReq) toInput() analytics.SummaryInput {
	return analytics.SummaryInput{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
}
