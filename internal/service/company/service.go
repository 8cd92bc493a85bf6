package company

import (
	"context"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/company"
)

type CompanyServiceImpl struct {
	companyRepository company.Repository
}

func NewCompanyService(companyRepository company.Repository) company.Service {
	return &CompanyServiceImpl{companyRepository: companyRepository}
}

// Create implements company.Service.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.companyRepository.Create(ctx, company.Company{
		Name:  req.Name,
		Code:  req.Code,
		State: req.State,
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToCompanyResponse(created), nil
}

// GetByID implements company.Service.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	c, err := s.companyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToCompanyResponse(c), nil
}

// List implements company.Service.
func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, company.ToCompanyResponse(c))
	}
	return responses, nil
}

// Update implements company.Service.
func (s *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	existing, err := s.companyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Code != nil {
		existing.Code = *req.Code
	}
	if req.State != nil {
		existing.State = *req.State
	}

	updated, err := s.companyRepository.Update(ctx, existing)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToCompanyResponse(updated), nil
}

// Delete implements company.Service.
func (s *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	return s.companyRepository.Delete(ctx, id)
}
