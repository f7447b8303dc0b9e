package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	RunPayroll(w http.ResponseWriter, r *http.Request)
	GetResult(w http.ResponseWriter, r *http.Request)
	ListResults(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	payPeriodID := chi.URLParam(r, "periodID")

	var req payroll.ComputePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	outcomes, err := h.payrollService.RunPayroll(r.Context(), payPeriodID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, outcomes)
}

func (h *payrollHandlerImpl) GetResult(w http.ResponseWriter, r *http.Request) {
	payPeriodID := chi.URLParam(r, "periodID")
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.payrollService.GetResult(r.Context(), employeeID, payPeriodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListResults(w http.ResponseWriter, r *http.Request) {
	payPeriodID := chi.URLParam(r, "periodID")

	results, err := h.payrollService.ListResults(r.Context(), payPeriodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
