package report

import (
	"sort"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/report"
)

// Rows for employees without a resolvable company land in a shared
// fallback bucket so they still show up in the report.
const (
	unknownCompanyID   = "unknown"
	unknownCompanyName = "Unknown Company"
	unknownCompanyCode = "N/A"
)

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func derefZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// GroupByCompany buckets report rows per company and computes per-group
// totals. Groups come back sorted ascending by company name.
func GroupByCompany(rows []report.ReportRow) []report.CompanyReportGroup {
	byCompany := make(map[string]*report.CompanyReportGroup)

	for _, row := range rows {
		key := derefOr(row.CompanyID, unknownCompanyID)

		group, ok := byCompany[key]
		if !ok {
			group = &report.CompanyReportGroup{
				CompanyID:   key,
				CompanyName: derefOr(row.CompanyName, unknownCompanyName),
				CompanyCode: derefOr(row.CompanyCode, unknownCompanyCode),
			}
			byCompany[key] = group
		}

		group.Employees = append(group.Employees, row)
		group.Stats.TotalEmployees++
		group.Stats.TotalHours += derefZero(row.TotalOTHours)
		group.Stats.TotalCost += derefZero(row.Amount)
	}

	groups := make([]report.CompanyReportGroup, 0, len(byCompany))
	for _, group := range byCompany {
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].CompanyName < groups[j].CompanyName
	})
	return groups
}

// CalculateOverallStats sums group totals into the report-wide summary
func CalculateOverallStats(groups []report.CompanyReportGroup) report.OverallStats {
	var stats report.OverallStats
	stats.TotalCompanies = len(groups)
	for _, group := range groups {
		stats.TotalEmployees += group.Stats.TotalEmployees
		stats.TotalHours += group.Stats.TotalHours
		stats.TotalCost += group.Stats.TotalCost
	}
	return stats
}
