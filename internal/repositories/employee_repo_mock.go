package repositories

import (
	"fmt"
	"sync"

	"shrimpfarm/internal/models"

	"github.com/google/uuid"
)

// MockEmployeeRepository is an in-memory implementation of EmployeeRepository.
type MockEmployeeRepository struct {
	employees map[string]models.Employee
	mu        sync.RWMutex
}

// NewMockEmployeeRepository creates a new instance of MockEmployeeRepository.
func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{
		employees: make(map[string]models.Employee),
	}
}

// Create adds a new employee, generating an ID when none is set.
func (r *MockEmployeeRepository) Create(employee *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if employee.EmployeeID == "" {
		employee.EmployeeID = uuid.New().String()
	}
	for _, e := range r.employees {
		if e.Username == employee.Username {
			return fmt.Errorf("username %s already taken", employee.Username)
		}
	}
	r.employees[employee.EmployeeID] = *employee
	return nil
}

// GetByUsername returns an employee by their login username.
func (r *MockEmployeeRepository) GetByUsername(username string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.Username == username {
			employee := e
			return &employee, nil
		}
	}
	return nil, fmt.Errorf("employee with username %s: %w", username, ErrNotFound)
}

// GetByID returns an employee by their ID.
func (r *MockEmployeeRepository) GetByID(id string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employee, ok := r.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	return &employee, nil
}

// GetAll returns all employees.
func (r *MockEmployeeRepository) GetAll() ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	employees := make([]models.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		employees = append(employees, e)
	}
	return employees, nil
}

// UpdateImage replaces the stored avatar filename for the employee.
func (r *MockEmployeeRepository) UpdateImage(id string, image string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee, ok := r.employees[id]
	if !ok {
		return fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	employee.EmployeeImage = image
	r.employees[id] = employee
	return nil
}
