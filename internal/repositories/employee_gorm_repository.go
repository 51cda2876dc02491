package repositories

import (
	"errors"
	"fmt"

	"shrimpfarm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEmployeeRepository is a GORM implementation of EmployeeRepository.
type GORMEmployeeRepository struct {
	db *gorm.DB
}

// NewGORMEmployeeRepository creates a new instance of GORMEmployeeRepository.
func NewGORMEmployeeRepository(db *gorm.DB) *GORMEmployeeRepository {
	return &GORMEmployeeRepository{
		db: db,
	}
}

// Create inserts a new employee, generating an ID when none is set.
func (r *GORMEmployeeRepository) Create(employee *models.Employee) error {
	if employee.EmployeeID == "" {
		employee.EmployeeID = uuid.New().String()
	}
	if err := r.db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// GetByUsername retrieves an employee by their login username.
func (r *GORMEmployeeRepository) GetByUsername(username string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee with username %s: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee by username %s: %w", username, err)
	}
	return &employee, nil
}

// GetByID retrieves an employee by their ID.
func (r *GORMEmployeeRepository) GetByID(id string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "employee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return &employee, nil
}

// GetAll retrieves all employees.
func (r *GORMEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to get all employees: %w", err)
	}
	return employees, nil
}

// UpdateImage replaces the stored avatar filename for the employee.
func (r *GORMEmployeeRepository) UpdateImage(id string, image string) error {
	res := r.db.Model(&models.Employee{}).Where("employee_id = ?", id).Update("employee_image", image)
	if res.Error != nil {
		return fmt.Errorf("failed to update employee image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	return nil
}
