package dashboard

import (
	"context"
	"fmt"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/dashboard"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/claims"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/format"
)

type DashboardServiceImpl struct {
	dashboardRepository dashboard.Repository
}

func NewDashboardService(dashboardRepository dashboard.Repository) dashboard.Service {
	return &DashboardServiceImpl{dashboardRepository: dashboardRepository}
}

// CompanySummary implements dashboard.Service.
func (s *DashboardServiceImpl) CompanySummary(ctx context.Context) (dashboard.CompanySummary, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return dashboard.CompanySummary{}, err
	}
	companyID, err := actor.MustCompanyID()
	if err != nil {
		return dashboard.CompanySummary{}, err
	}

	summary, err := s.dashboardRepository.CompanySummary(ctx, companyID)
	if err != nil {
		return dashboard.CompanySummary{}, fmt.Errorf("failed to load company summary: %w", err)
	}
	summary.MTDCostText = format.Currency(&summary.MTDCost)
	return summary, nil
}

// EmployeeSummary implements dashboard.Service.
func (s *DashboardServiceImpl) EmployeeSummary(ctx context.Context) (dashboard.EmployeeSummary, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return dashboard.EmployeeSummary{}, err
	}
	employeeID, err := actor.MustEmployeeID()
	if err != nil {
		return dashboard.EmployeeSummary{}, err
	}

	summary, err := s.dashboardRepository.EmployeeSummary(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeSummary{}, fmt.Errorf("failed to load employee summary: %w", err)
	}
	summary.MTDHoursText = format.Hours(&summary.MTDHours)
	summary.MTDText = format.Currency(&summary.MTDAmount)
	return summary, nil
}
