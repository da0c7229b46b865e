package http

import (
	"banquetpro/internal/model"
	"banquetpro/internal/staff"
)

// --- Request DTOs ---

type staffReq struct {
	Name       string  `json:"name"        binding:"required,min=1,max=255"`
	Email      string  `json:"email"       binding:"required,email"`
	Phone      string  `json:"phone"       binding:"max=50"`
	Role       string  `json:"role"        binding:"max=100"`
	Specialty  string  `json:"specialty"   binding:"max=255"`
	HourlyRate float64 `json:"hourly_rate" binding:"min=0"`
	Status     string  `json:"status"      binding:"omitempty,oneof=available busy on_event unavailable"`
	Rating     float64 `json:"rating"      binding:"min=0,max=5"`
}

func (r staffReq) toCreateInput() staff.CreateStaffInput {
	return staff.CreateStaffInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Role:       r.Role,
		Specialty:  r.Specialty,
		HourlyRate: r.HourlyRate,
		Status:     model.StaffStatus(r.Status),
		Rating:     r.Rating,
	}
}

func (r staffReq) toUpdateInput() staff.UpdateStaffInput {
	return staff.UpdateStaffInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Role:       r.Role,
		Specialty:  r.Specialty,
		HourlyRate: r.HourlyRate,
		Status:     model.StaffStatus(r.Status),
		Rating:     r.Rating,
	}
}

type listReq struct {
	Status string `form:"status_filter"`
	Skip   int    `form:"skip"`
	Limit  int    `form:"limit"`
}

func (r listReq) toInput() staff.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	skip := r.Skip
	if skip < 0 {
		skip = 0
	}
	return staff.ListInput{
		Status: model.StaffStatus(r.Status),
		Skip:   skip,
		Limit:  limit,
	}
}

type statusReq struct {
	Status string `json:"status" binding:"required"`
}

// --- Response DTOs ---

type staffResp struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone,omitempty"`
	Role        string  `json:"role"`
	Specialty   string  `json:"specialty,omitempty"`
	HourlyRate  float64 `json:"hourly_rate,omitempty"`
	Status      string  `json:"status"`
	Rating      float64 `json:"rating"`
	TotalEvents int     `json:"total_events"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

func newStaffResp(m model.StaffMember) staffResp {
	return staffResp{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Role:        m.Role,
		Specialty:   m.Specialty,
		HourlyRate:  m.HourlyRate,
		Status:      string(m.Status),
		Rating:      m.Rating,
		TotalEvents: m.TotalEvents,
		CreatedAt:   m.CreatedAt,
	}
}

type listResp struct {
	Staff []staffResp `json:"staff"`
	Count int         `json:"count"`
}

func (h *handler) newListResp(out staff.ListOutput) listResp {
	members := make([]staffResp, len(out.Staff))
	for i, m := range out.Staff {
		members[i] = newStaffResp(m)
	}
	return listResp{Staff: members, Count: out.Count}
}
