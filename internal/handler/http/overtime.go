package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/overtime"
	"github.com/cmlabs-hris/payroll-engine-go/internal/handler/http/response"
)

type OvertimeHandler interface {
	SubmitOvertime(w http.ResponseWriter, r *http.Request)
	ListOvertime(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{overtimeService: overtimeService}
}

func (h *overtimeHandlerImpl) SubmitOvertime(w http.ResponseWriter, r *http.Request) {
	var req overtime.SubmitOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.overtimeService.SubmitOvertime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", created)
}

func (h *overtimeHandlerImpl) ListOvertime(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	if employeeID == "" || startDate == "" || endDate == "" {
		response.BadRequest(w, "employee_id, start_date and end_date are required", nil)
		return
	}

	intervals, err := h.overtimeService.ListOvertime(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, intervals)
}
