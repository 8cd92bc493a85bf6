package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/report"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/export"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/format"
)

type ReportServiceImpl struct {
	reportRepository report.Repository
}

func NewReportService(reportRepository report.Repository) report.Service {
	return &ReportServiceImpl{reportRepository: reportRepository}
}

// GenerateMonthlyOvertimeReport implements report.Service.
func (s *ReportServiceImpl) GenerateMonthlyOvertimeReport(ctx context.Context, req report.MonthlyOvertimeReportRequest) (report.MonthlyOvertimeReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyOvertimeReport{}, err
	}

	rows, err := s.reportRepository.MonthlyOvertimeRows(ctx, req.Month, req.Year)
	if err != nil {
		return report.MonthlyOvertimeReport{}, fmt.Errorf("failed to load report rows: %w", err)
	}

	groups := GroupByCompany(rows)

	return report.MonthlyOvertimeReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Groups:      groups,
		Stats:       CalculateOverallStats(groups),
	}, nil
}

var exportHeaders = []export.Header{
	{Key: "employee_name", Label: "Employee Name"},
	{Key: "employee_code", Label: "Employee Code"},
	{Key: "company", Label: "Company"},
	{Key: "department", Label: "Department"},
	{Key: "position", Label: "Position"},
	{Key: "total_hours", Label: "Total OT Hours"},
	{Key: "amount", Label: "Amount (RM)"},
	{Key: "requests", Label: "Requests"},
}

func periodLabel(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month), year)
}

func (s *ReportServiceImpl) exportRows(ctx context.Context, req report.MonthlyOvertimeReportRequest) ([]map[string]interface{}, *export.Metadata, error) {
	generated, err := s.GenerateMonthlyOvertimeReport(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	var rows []map[string]interface{}
	for _, group := range generated.Groups {
		for _, row := range group.Employees {
			rows = append(rows, map[string]interface{}{
				"employee_name": row.EmployeeName,
				"employee_code": row.EmployeeCode,
				"company":       group.CompanyName,
				"department":    row.Department,
				"position":      row.Position,
				"total_hours":   format.Hours(row.TotalOTHours),
				"amount":        format.Currency(row.Amount),
				"requests":      fmt.Sprintf("%d", row.RequestCount),
			})
		}
	}

	meta := &export.Metadata{
		ReportName:    "Monthly Overtime Report",
		Period:        periodLabel(req.Month, req.Year),
		GeneratedDate: time.Now().Format("2006-01-02 15:04"),
	}
	return rows, meta, nil
}

func exportFilename(month, year int) string {
	return fmt.Sprintf("overtime_report_%04d-%02d", year, month)
}

// ExportMonthlyOvertimeCSV implements report.Service.
func (s *ReportServiceImpl) ExportMonthlyOvertimeCSV(ctx context.Context, w http.ResponseWriter, req report.MonthlyOvertimeReportRequest) error {
	rows, meta, err := s.exportRows(ctx, req)
	if err != nil {
		return err
	}
	return export.ServeCSV(w, exportFilename(req.Month, req.Year), rows, exportHeaders, meta)
}

// ExportMonthlyOvertimePDF implements report.Service.
func (s *ReportServiceImpl) ExportMonthlyOvertimePDF(ctx context.Context, w http.ResponseWriter, req report.MonthlyOvertimeReportRequest) error {
	rows, meta, err := s.exportRows(ctx, req)
	if err != nil {
		return err
	}
	return export.WritePDF(w, exportFilename(req.Month, req.Year), rows, exportHeaders, meta)
}
