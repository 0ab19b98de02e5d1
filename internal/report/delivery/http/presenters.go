package http

import (
	"uxo-chatbot/internal/report"
	"uxo-chatbot/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Latitude    *float64 `json:"latitude"    binding:"required"`
	Longitude   *float64 `json:"longitude"   binding:"required"`
	Description string   `json:"description" binding:"max=2000"`
}

func (r createReq) toInput() report.CreateInput {
	return report.CreateInput{Latitude: *r.Latitude, Longitude: *r.Longitude, Description: r.Description}
}

type listReq struct {
	Status string `form:"status"`
}

func (r listReq) toInput() report.ListInput {
	return report.ListInput{Status: r.Status}
}

type updateStatusReq struct {
	ID     uint   `json:"-"`
	Status string `json:"status" binding:"required"`
}

func (r updateStatusReq) toInput() report.UpdateStatusInput {
	return report.UpdateStatusInput{ID: r.ID, Status: r.Status}
}

// --- Response DTOs ---

type reportResp struct {
	ID          uint              `json:"id"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newReportResp(r report.Report) reportResp {
	return reportResp{
		ID:          r.ID,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   response.DateTime(r.CreatedAt),
		UpdatedAt:   response.DateTime(r.UpdatedAt),
	}
}

type listResp struct {
	Reports []reportResp `json:"reports"`
	Total   int          `json:"total"`
}

func newListResp(reports []report.Report) listResp {
	out := make([]reportResp, len(reports))
	for i, r := range reports {
		out[i] = newReportResp(r)
	}
	return listResp{Reports: out, Total: len(out)}
}
