package report

import (
	"testing"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func row(name string, companyID, companyName, companyCode *string, hours, amount *float64) report.ReportRow {
	return report.ReportRow{
		EmployeeID:   "emp-" + name,
		EmployeeName: name,
		EmployeeCode: "ENG-0001",
		CompanyID:    companyID,
		CompanyName:  companyName,
		CompanyCode:  companyCode,
		TotalOTHours: hours,
		Amount:       amount,
		RequestCount: 1,
	}
}

func TestGroupByCompany(t *testing.T) {
	alphaID, alphaName, alphaCode := strPtr("co-alpha"), strPtr("Alpha Sdn Bhd"), strPtr("ALPHA")
	betaID, betaName, betaCode := strPtr("co-beta"), strPtr("Beta Sdn Bhd"), strPtr("BETA")

	rows := []report.ReportRow{
		row("Wei Jie", betaID, betaName, betaCode, floatPtr(10), floatPtr(250)),
		row("Aisyah", alphaID, alphaName, alphaCode, floatPtr(8), floatPtr(180)),
		row("Kumar", alphaID, alphaName, alphaCode, floatPtr(4.5), floatPtr(101.25)),
	}

	groups := GroupByCompany(rows)
	require.Len(t, groups, 2)

	alpha := groups[0]
	assert.Equal(t, "co-alpha", alpha.CompanyID)
	assert.Equal(t, "Alpha Sdn Bhd", alpha.CompanyName)
	assert.Equal(t, "ALPHA", alpha.CompanyCode)
	assert.Len(t, alpha.Employees, 2)
	assert.Equal(t, 2, alpha.Stats.TotalEmployees)
	assert.InDelta(t, 12.5, alpha.Stats.TotalHours, 0.0001)
	assert.InDelta(t, 281.25, alpha.Stats.TotalCost, 0.0001)

	beta := groups[1]
	assert.Equal(t, "co-beta", beta.CompanyID)
	assert.Equal(t, 1, beta.Stats.TotalEmployees)
	assert.InDelta(t, 10, beta.Stats.TotalHours, 0.0001)
}

func TestGroupByCompanySortsByName(t *testing.T) {
	rows := []report.ReportRow{
		row("a", strPtr("c3"), strPtr("Zulu"), strPtr("Z"), nil, nil),
		row("b", strPtr("c1"), strPtr("Alpha"), strPtr("A"), nil, nil),
		row("c", strPtr("c2"), strPtr("Mike"), strPtr("M"), nil, nil),
	}

	groups := GroupByCompany(rows)
	require.Len(t, groups, 3)
	assert.Equal(t, "Alpha", groups[0].CompanyName)
	assert.Equal(t, "Mike", groups[1].CompanyName)
	assert.Equal(t, "Zulu", groups[2].CompanyName)
}

func TestGroupByCompanyUnknownBucket(t *testing.T) {
	rows := []report.ReportRow{
		row("no company", nil, nil, nil, floatPtr(3), floatPtr(67.5)),
		row("empty company", strPtr(""), strPtr(""), strPtr(""), floatPtr(2), floatPtr(45)),
	}

	groups := GroupByCompany(rows)
	require.Len(t, groups, 1)

	unknown := groups[0]
	assert.Equal(t, "unknown", unknown.CompanyID)
	assert.Equal(t, "Unknown Company", unknown.CompanyName)
	assert.Equal(t, "N/A", unknown.CompanyCode)
	assert.Equal(t, 2, unknown.Stats.TotalEmployees)
	assert.InDelta(t, 5, unknown.Stats.TotalHours, 0.0001)
	assert.InDelta(t, 112.5, unknown.Stats.TotalCost, 0.0001)
}

func TestGroupByCompanyNilTotalsCountAsZero(t *testing.T) {
	rows := []report.ReportRow{
		row("idle", strPtr("c1"), strPtr("Alpha"), strPtr("A"), nil, nil),
	}

	groups := GroupByCompany(rows)
	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Stats.TotalEmployees)
	assert.Zero(t, groups[0].Stats.TotalHours)
	assert.Zero(t, groups[0].Stats.TotalCost)
}

func TestGroupByCompanyEmptyInput(t *testing.T) {
	assert.Empty(t, GroupByCompany(nil))
}

func TestCalculateOverallStats(t *testing.T) {
	groups := []report.CompanyReportGroup{
		{Stats: report.GroupStats{TotalEmployees: 2, TotalHours: 12.5, TotalCost: 281.25}},
		{Stats: report.GroupStats{TotalEmployees: 1, TotalHours: 10, TotalCost: 250}},
	}

	stats := CalculateOverallStats(groups)
	assert.Equal(t, 2, stats.TotalCompanies)
	assert.Equal(t, 3, stats.TotalEmployees)
	assert.InDelta(t, 22.5, stats.TotalHours, 0.0001)
	assert.InDelta(t, 531.25, stats.TotalCost, 0.0001)
}

func TestCalculateOverallStatsEmpty(t *testing.T) {
	stats := CalculateOverallStats(nil)
	assert.Zero(t, stats.TotalCompanies)
	assert.Zero(t, stats.TotalEmployees)
	assert.Zero(t, stats.TotalHours)
	assert.Zero(t, stats.TotalCost)
}
