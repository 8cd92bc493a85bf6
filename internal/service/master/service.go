package master

import (
	"context"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/master/department"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/master/position"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/claims"
)

type DepartmentServiceImpl struct {
	departmentRepository department.Repository
}

func NewDepartmentService(departmentRepository department.Repository) department.Service {
	return &DepartmentServiceImpl{departmentRepository: departmentRepository}
}

// Create implements department.Service.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepository.Create(ctx, department.Department{
		CompanyID: companyID,
		Name:      req.Name,
		Code:      req.Code,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToDepartmentResponse(created), nil
}

// List implements department.Service.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.departmentRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.ToDepartmentResponse(d))
	}
	return responses, nil
}

// Update implements department.Service.
func (s *DepartmentServiceImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	existing, err := s.ownedDepartment(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Code != nil {
		existing.Code = *req.Code
	}

	updated, err := s.departmentRepository.Update(ctx, existing)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToDepartmentResponse(updated), nil
}

// Delete implements department.Service.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.ownedDepartment(ctx, id); err != nil {
		return err
	}
	return s.departmentRepository.Delete(ctx, id)
}

func (s *DepartmentServiceImpl) ownedDepartment(ctx context.Context, id string) (department.Department, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return department.Department{}, err
	}

	existing, err := s.departmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.Department{}, err
	}
	if existing.CompanyID != companyID {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return existing, nil
}

type PositionServiceImpl struct {
	positionRepository position.Repository
}

func NewPositionService(positionRepository position.Repository) position.Service {
	return &PositionServiceImpl{positionRepository: positionRepository}
}

// Create implements position.Service.
func (s *PositionServiceImpl) Create(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return position.PositionResponse{}, err
	}

	created, err := s.positionRepository.Create(ctx, position.Position{
		CompanyID:  companyID,
		Name:       req.Name,
		Grade:      req.Grade,
		OTEligible: req.OTEligible,
	})
	if err != nil {
		return position.PositionResponse{}, err
	}
	return position.ToPositionResponse(created), nil
}

// List implements position.Service.
func (s *PositionServiceImpl) List(ctx context.Context) ([]position.PositionResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	positions, err := s.positionRepository.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, position.ToPositionResponse(p))
	}
	return responses, nil
}

// Update implements position.Service.
func (s *PositionServiceImpl) Update(ctx context.Context, id string, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	existing, err := s.ownedPosition(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Grade != nil {
		existing.Grade = req.Grade
	}
	if req.OTEligible != nil {
		existing.OTEligible = *req.OTEligible
	}

	updated, err := s.positionRepository.Update(ctx, existing)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return position.ToPositionResponse(updated), nil
}

// Delete implements position.Service.
func (s *PositionServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.ownedPosition(ctx, id); err != nil {
		return err
	}
	return s.positionRepository.Delete(ctx, id)
}

func (s *PositionServiceImpl) ownedPosition(ctx context.Context, id string) (position.Position, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return position.Position{}, err
	}

	existing, err := s.positionRepository.GetByID(ctx, id)
	if err != nil {
		return position.Position{}, err
	}
	if existing.CompanyID != companyID {
		return position.Position{}, position.ErrPositionNotFound
	}
	return existing, nil
}

func companyFromContext(ctx context.Context) (string, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return "", err
	}
	return actor.MustCompanyID()
}
