package http

import (
	"net/http"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/dashboard"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/report"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyOvertime(w http.ResponseWriter, r *http.Request)
	MonthlyOvertimeCSV(w http.ResponseWriter, r *http.Request)
	MonthlyOvertimePDF(w http.ResponseWriter, r *http.Request)

	CompanyDashboard(w http.ResponseWriter, r *http.Request)
	EmployeeDashboard(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService    report.Service
	dashboardService dashboard.Service
}

func NewReportHandler(reportService report.Service, dashboardService dashboard.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService:    reportService,
		dashboardService: dashboardService,
	}
}

func reportRequestFromQuery(r *http.Request) report.MonthlyOvertimeReportRequest {
	now := time.Now()
	return report.MonthlyOvertimeReportRequest{
		Month: getIntQueryParam(r, "month", int(now.Month())),
		Year:  getIntQueryParam(r, "year", now.Year()),
	}
}

// MonthlyOvertime implements ReportHandler.
func (h *reportHandlerImpl) MonthlyOvertime(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GenerateMonthlyOvertimeReport(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MonthlyOvertimeCSV implements ReportHandler. The response body is the
// CSV attachment, not the JSON envelope.
func (h *reportHandlerImpl) MonthlyOvertimeCSV(w http.ResponseWriter, r *http.Request) {
	if err := h.reportService.ExportMonthlyOvertimeCSV(r.Context(), w, reportRequestFromQuery(r)); err != nil {
		response.HandleError(w, err)
	}
}

// MonthlyOvertimePDF implements ReportHandler.
func (h *reportHandlerImpl) MonthlyOvertimePDF(w http.ResponseWriter, r *http.Request) {
	if err := h.reportService.ExportMonthlyOvertimePDF(r.Context(), w, reportRequestFromQuery(r)); err != nil {
		response.HandleError(w, err)
	}
}

// CompanyDashboard implements ReportHandler.
func (h *reportHandlerImpl) CompanyDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.CompanySummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// EmployeeDashboard implements ReportHandler.
func (h *reportHandlerImpl) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.EmployeeSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
