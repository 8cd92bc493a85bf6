package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/company"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/employee"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/user"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/claims"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/email"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/repository/postgresql"
)

const activationTokenTTL = 72 * time.Hour

type EmployeeServiceImpl struct {
	db                 *database.DB
	employeeRepository employee.Repository
	userRepository     user.Repository
	tokenRepository    postgresql.TokenRepository
	companyRepository  company.Repository
	emailService       email.EmailService
	frontendURL        string
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.Repository,
	userRepository user.Repository,
	tokenRepository postgresql.TokenRepository,
	companyRepository company.Repository,
	emailService email.EmailService,
	frontendURL string,
) employee.Service {
	return &EmployeeServiceImpl{
		db:                 db,
		employeeRepository: employeeRepository,
		userRepository:     userRepository,
		tokenRepository:    tokenRepository,
		companyRepository:  companyRepository,
		emailService:       emailService,
		frontendURL:        frontendURL,
	}
}

// Create implements employee.Service. The employee record, the inactive
// user account and the activation token are written in one transaction;
// the activation email goes out after commit.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	actor, err := claims.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	companyID, err := actor.MustCompanyID()
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepository.CodeExists(ctx, companyID, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	if _, err := s.employeeRepository.GetByEmail(ctx, companyID, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, err
	}

	if req.SupervisorID != nil {
		if _, err := s.employeeRepository.GetByID(ctx, *req.SupervisorID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrSupervisorNotFound
			}
			return employee.EmployeeResponse{}, err
		}
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	var created employee.Employee
	var activationToken string

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.employeeRepository.Create(txCtx, employee.Employee{
			CompanyID:      companyID,
			DepartmentID:   req.DepartmentID,
			PositionID:     req.PositionID,
			SupervisorID:   req.SupervisorID,
			EmployeeCode:   req.EmployeeCode,
			FullName:       req.FullName,
			Email:          req.Email,
			Phone:          req.Phone,
			MonthlySalary:  req.MonthlySalary,
			EmploymentType: req.EmploymentType,
			Status:         employee.StatusActive,
			HireDate:       hireDate,
		})
		if err != nil {
			return err
		}

		account, err := s.userRepository.Create(txCtx, user.User{
			Email:      created.Email,
			Role:       user.RoleEmployee,
			EmployeeID: &created.ID,
			CompanyID:  &companyID,
			IsActive:   false,
		})
		if err != nil {
			return err
		}

		activationToken, err = s.tokenRepository.CreateActivationToken(txCtx, account.ID, time.Now().Add(activationTokenTTL))
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.sendActivationEmail(ctx, created, activationToken)

	return employee.ToEmployeeResponse(created), nil
}

// GetByID implements employee.Service.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if actor.CompanyID != nil && emp.CompanyID != *actor.CompanyID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return employee.ToEmployeeResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, int64, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	companyID, err := actor.MustCompanyID()
	if err != nil {
		return nil, 0, err
	}
	filter.CompanyID = companyID

	employees, total, err := s.employeeRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToEmployeeResponse(emp))
	}
	return responses, total, nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	actor, err := claims.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if actor.CompanyID != nil && existing.CompanyID != *actor.CompanyID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.DepartmentID != nil {
		existing.DepartmentID = req.DepartmentID
	}
	if req.PositionID != nil {
		existing.PositionID = req.PositionID
	}
	if req.SupervisorID != nil {
		if _, err := s.employeeRepository.GetByID(ctx, *req.SupervisorID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrSupervisorNotFound
			}
			return employee.EmployeeResponse{}, err
		}
		existing.SupervisorID = req.SupervisorID
	}
	if req.MonthlySalary != nil {
		existing.MonthlySalary = *req.MonthlySalary
	}
	if req.EmploymentType != nil {
		existing.EmploymentType = *req.EmploymentType
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}

	updated, err := s.employeeRepository.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(updated), nil
}

// Delete implements employee.Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.CompanyID != nil && existing.CompanyID != *actor.CompanyID {
		return employee.ErrEmployeeNotFound
	}
	return s.employeeRepository.SoftDelete(ctx, id)
}

func (s *EmployeeServiceImpl) sendActivationEmail(ctx context.Context, emp employee.Employee, token string) {
	companyName := ""
	if c, err := s.companyRepository.GetByID(ctx, emp.CompanyID); err == nil {
		companyName = c.Name
	}

	link := fmt.Sprintf("%s/activate?token=%s", s.frontendURL, token)
	expiresAt := time.Now().Add(activationTokenTTL).Format("2006-01-02 15:04")

	if err := s.emailService.SendActivation(emp.Email, emp.FullName, companyName, link, expiresAt); err != nil {
		slog.Warn("failed to send activation email",
			slog.String("to", emp.Email),
			slog.Any("error", err),
		)
	}
}
