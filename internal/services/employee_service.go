package services

import (
	"fmt"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repositories"
)

// EmployeeService handles business logic related to employee records.
type EmployeeService struct {
	repo repositories.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo: repo,
	}
}

// GetAllEmployees retrieves all employees.
func (s *EmployeeService) GetAllEmployees() ([]models.Employee, error) {
	return s.repo.GetAll()
}

// GetEmployee retrieves a single employee by ID.
func (s *EmployeeService) GetEmployee(id string) (*models.Employee, error) {
	return s.repo.GetByID(id)
}

// UpdateAvatar records a newly stored avatar filename on the employee row. The
// previous file, if any, stays on disk; nothing references it afterwards.
func (s *EmployeeService) UpdateAvatar(id string, storedImage string) error {
	if err := s.repo.UpdateImage(id, storedImage); err != nil {
		return fmt.Errorf("failed to update avatar for employee %s: %w", id, err)
	}
	return nil
}
