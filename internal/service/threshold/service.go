package threshold

import (
	"context"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/threshold"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/claims"
)

type ThresholdServiceImpl struct {
	thresholdRepository threshold.Repository
}

func NewThresholdService(thresholdRepository threshold.Repository) threshold.Service {
	return &ThresholdServiceImpl{thresholdRepository: thresholdRepository}
}

// Get implements threshold.Service.
func (s *ThresholdServiceImpl) Get(ctx context.Context) (threshold.ThresholdResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return threshold.ThresholdResponse{}, err
	}

	t, err := s.thresholdRepository.GetActiveByCompany(ctx, companyID)
	if err != nil {
		return threshold.ThresholdResponse{}, err
	}
	return threshold.ToThresholdResponse(t), nil
}

// Upsert implements threshold.Service.
func (s *ThresholdServiceImpl) Upsert(ctx context.Context, req threshold.UpsertThresholdRequest) (threshold.ThresholdResponse, error) {
	if err := req.Validate(); err != nil {
		return threshold.ThresholdResponse{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return threshold.ThresholdResponse{}, err
	}

	saved, err := s.thresholdRepository.Upsert(ctx, threshold.Threshold{
		CompanyID:       companyID,
		MaxMonthlyHours: req.MaxMonthlyHours,
		MaxRequestHours: req.MaxRequestHours,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return threshold.ThresholdResponse{}, err
	}
	return threshold.ToThresholdResponse(saved), nil
}

// History implements threshold.Service.
func (s *ThresholdServiceImpl) History(ctx context.Context) ([]threshold.ThresholdResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	thresholds, err := s.thresholdRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]threshold.ThresholdResponse, 0, len(thresholds))
	for _, t := range thresholds {
		responses = append(responses, threshold.ToThresholdResponse(t))
	}
	return responses, nil
}

func companyFromContext(ctx context.Context) (string, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return "", err
	}
	return actor.MustCompanyID()
}
