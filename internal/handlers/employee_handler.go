package handlers

import (
	"errors"
	"log"

	"shrimpfarm/internal/repositories"
	"shrimpfarm/internal/services"
	"shrimpfarm/pkg/upload"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles HTTP requests for employee records, including avatar
// upload through the same store mechanism products use.
type EmployeeHandler struct {
	service *services.EmployeeService
	avatars *upload.Store
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service *services.EmployeeService, avatars *upload.Store) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		avatars: avatars,
	}
}

// RegisterRoutes registers read routes on the public router and mutation
// routes on the protected one.
func (h *EmployeeHandler) RegisterRoutes(public fiber.Router, protected fiber.Router) {
	public.Get("/employees", h.HandleGetEmployees)
	public.Get("/employees/:employee_id", h.HandleGetEmployee)
	protected.Put("/employees/:employee_id/avatar", h.HandleUpdateAvatar)
}

// HandleGetEmployees retrieves all employees.
func (h *EmployeeHandler) HandleGetEmployees(c *fiber.Ctx) error {
	employees, err := h.service.GetAllEmployees()
	if err != nil {
		log.Printf("Error getting all employees: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve employees",
		})
	}
	if len(employees) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No employees found",
		})
	}
	return c.JSON(employees)
}

// HandleGetEmployee retrieves a single employee by ID.
func (h *EmployeeHandler) HandleGetEmployee(c *fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	employee, err := h.service.GetEmployee(employeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Employee not found",
			})
		}
		log.Printf("Error getting employee %s: %v", employeeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve employee",
		})
	}
	return c.JSON(employee)
}

// HandleUpdateAvatar stores a new avatar image and records its filename on the
// employee row. The old file is left on disk.
func (h *EmployeeHandler) HandleUpdateAvatar(c *fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	fileHeader, err := c.FormFile("employee_image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded avatar: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update avatar",
		})
	}
	defer file.Close()

	storedName, err := h.avatars.Save(fileHeader.Filename, file)
	if err != nil {
		log.Printf("Error storing avatar: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update avatar",
		})
	}

	if err := h.service.UpdateAvatar(employeeID, storedName); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Employee not found",
			})
		}
		log.Printf("Error updating avatar for employee %s: %v", employeeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update avatar",
		})
	}
	return c.JSON(fiber.Map{
		"message":        "Avatar updated successfully",
		"employee_image": storedName,
	})
}
