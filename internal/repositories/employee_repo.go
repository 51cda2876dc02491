package repositories

import "shrimpfarm/internal/models"

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	Create(employee *models.Employee) error
	GetByUsername(username string) (*models.Employee, error)
	GetByID(id string) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
	// UpdateImage replaces the stored avatar filename for the employee.
	UpdateImage(id string, image string) error
}
