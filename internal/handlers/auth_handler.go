package handlers

import (
	"fmt"
	"log"
	"strings"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for employee authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// registerRequest is the register payload. The Employee model keeps its
// password out of JSON entirely, so the handler binds a dedicated struct.
type registerRequest struct {
	EmployeeFname string `json:"employee_fname" validate:"required,min=1,max=100"`
	EmployeeLname string `json:"employee_lname" validate:"required,min=1,max=100"`
	Username      string `json:"username" validate:"required,min=3,max=100"`
	Password      string `json:"password" validate:"required,min=6"`
}

// HandleRegister creates a new employee account.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": errorMessages,
		})
	}

	employee := models.Employee{
		EmployeeFname: req.EmployeeFname,
		EmployeeLname: req.EmployeeLname,
		Username:      req.Username,
		Password:      req.Password,
	}
	if err := h.authService.RegisterEmployee(&employee); err != nil {
		log.Printf("Error registering employee: %v", err)
		if strings.Contains(err.Error(), "already taken") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not register employee",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Employee registered successfully",
		"employee_id": employee.EmployeeID,
	})
}

// HandleLogin authenticates an employee and returns a JWT.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}
	return c.JSON(fiber.Map{
		"token": token,
	})
}
