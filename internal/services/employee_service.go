package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/DimitriNjila/shiftcraft-api/internal/models"
	"github.com/DimitriNjila/shiftcraft-api/internal/repositories"
	"github.com/DimitriNjila/shiftcraft-api/pkg/utils"
)

// --- Custom Service Errors for Employees ---
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeValidation = errors.New("employee data validation error")
)

// --- Employee DTOs ---
type CreateEmployeeRequest struct {
	Name         string  `json:"name" binding:"required"`
	Role         string  `json:"role" binding:"required"`
	RestaurantID string  `json:"restaurant_id" binding:"required"`
	IsActive     *bool   `json:"is_active"` // defaults to true
	Email        *string `json:"email"`
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
	Email    *string `json:"email"`
}

// --- EmployeeService Interface ---
type EmployeeService interface {
	GetEmployees(restaurantID *string, isActive *bool) ([]models.Employee, error)
	GetEmployeeByID(employeeID int64) (*models.Employee, error)
	CreateEmployee(req CreateEmployeeRequest) (*models.Employee, error)
	UpdateEmployee(employeeID int64, req UpdateEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(employeeID int64) error
	DeactivateEmployee(employeeID int64) (*models.Employee, error)
}

// --- employeeService Implementation ---
type employeeService struct {
	employeeRepo repositories.EmployeeRepository
	db           *sql.DB
}

// NewEmployeeService creates a new instance of EmployeeService.
func NewEmployeeService(er repositories.EmployeeRepository, db *sql.DB) EmployeeService {
	return &employeeService{
		employeeRepo: er,
		db:           db,
	}
}

func (s *employeeService) GetEmployees(restaurantID *string, isActive *bool) ([]models.Employee, error) {
	filter := repositories.EmployeeFilter{
		RestaurantID: restaurantID,
		IsActive:     isActive,
	}
	employees, err := s.employeeRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) GetEmployeeByID(employeeID int64) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return employee, nil
}

func (s *employeeService) CreateEmployee(req CreateEmployeeRequest) (*models.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrEmployeeValidation)
	}
	role := strings.TrimSpace(req.Role)
	if role == "" {
		return nil, fmt.Errorf("%w: role cannot be empty", ErrEmployeeValidation)
	}

	restaurantID := strings.TrimSpace(req.RestaurantID)
	if restaurantID == "" {
		return nil, fmt.Errorf("%w: restaurant_id is required", ErrEmployeeValidation)
	}
	if _, err := uuid.Parse(restaurantID); err != nil {
		return nil, fmt.Errorf("%w: restaurant_id must be a valid UUID", ErrEmployeeValidation)
	}

	var email *string
	if req.Email != nil {
		email = utils.NewNullString(*req.Email)
		if email != nil && !utils.IsValidEmail(*email) {
			return nil, fmt.Errorf("%w: invalid email format", ErrEmployeeValidation)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	employee := &models.Employee{
		Name:         name,
		Role:         role,
		RestaurantID: restaurantID,
		IsActive:     isActive,
		Email:        email,
	}

	created, err := s.employeeRepo.Create(s.db, employee)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee in repository: %w", err)
	}
	return created, nil
}

// UpdateEmployee merges only the supplied fields into the existing record.
// The merge is a single conditional write; soft-deleted records are not found.
func (s *employeeService) UpdateEmployee(employeeID int64, req UpdateEmployeeRequest) (*models.Employee, error) {
	update := repositories.EmployeeUpdate{
		IsActive: req.IsActive,
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty if provided", ErrEmployeeValidation)
		}
		update.Name = &name
	}
	if req.Role != nil {
		role := strings.TrimSpace(*req.Role)
		if role == "" {
			return nil, fmt.Errorf("%w: role cannot be empty if provided", ErrEmployeeValidation)
		}
		update.Role = &role
	}
	if req.Email != nil {
		email := utils.NewNullString(*req.Email)
		if email != nil && !utils.IsValidEmail(*email) {
			return nil, fmt.Errorf("%w: invalid email format", ErrEmployeeValidation)
		}
		update.Email = email
	}

	updated, err := s.employeeRepo.Update(s.db, employeeID, update)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to update employee in repository: %w", err)
	}
	return updated, nil
}

func (s *employeeService) DeleteEmployee(employeeID int64) error {
	err := s.employeeRepo.Delete(s.db, employeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// DeactivateEmployee is an idempotent soft delete: an already-inactive employee
// is returned unchanged without issuing a write.
func (s *employeeService) DeactivateEmployee(employeeID int64) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee for deactivation: %w", err)
	}

	if !employee.IsActive {
		return employee, nil
	}

	deactivated, err := s.employeeRepo.Deactivate(s.db, employeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to deactivate employee: %w", err)
	}
	return deactivated, nil
}
