package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/restolab/staffpoint-backend-go/internal/domain/employee"
)

type Service interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
	List(ctx context.Context) (employee.ListEmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type ServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) Service {
	return &ServiceImpl{employeeRepo: employeeRepo}
}

// Create implements Service.
func (s *ServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FullName: req.FullName,
		Position: req.Position,
		IsActive: true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// Update implements Service.
func (s *ServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Position != nil {
		emp.Position = req.Position
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Get implements Service.
func (s *ServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// List implements Service.
func (s *ServiceImpl) List(ctx context.Context) (employee.ListEmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{Employees: responses}, nil
}

// Deactivate implements Service.
func (s *ServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:       emp.ID,
		FullName: emp.FullName,
		Position: emp.Position,
		IsActive: emp.IsActive,
	}
}
