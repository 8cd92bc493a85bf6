package report

import (
	"context"
	"net/http"
)

// Service defines report generation and export
type Service interface {
	GenerateMonthlyOvertimeReport(ctx context.Context, req MonthlyOvertimeReportRequest) (MonthlyOvertimeReport, error)
	ExportMonthlyOvertimeCSV(ctx context.Context, w http.ResponseWriter, req MonthlyOvertimeReportRequest) error
	ExportMonthlyOvertimePDF(ctx context.Context, w http.ResponseWriter, req MonthlyOvertimeReportRequest) error
}
