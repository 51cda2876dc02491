package services

import (
	"fmt"
	"log"
	"time"

	"shrimpfarm/internal/models"
	"shrimpfarm/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles employee registration and login. Access control is an
// addition on top of the inventory core: the read/write inventory routes stay
// public, and only employee-management mutations sit behind tokens.
type AuthService struct {
	employeeRepo repositories.EmployeeRepository
	jwtSecret    []byte
	tokenDurat   time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(employeeRepo repositories.EmployeeRepository, jwtSecret string) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenDurat:   24 * time.Hour,
	}
}

// RegisterEmployee hashes the password and saves the employee.
func (s *AuthService) RegisterEmployee(employee *models.Employee) error {
	if existing, err := s.employeeRepo.GetByUsername(employee.Username); err == nil && existing != nil {
		return fmt.Errorf("username '%s' already taken", employee.Username)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(employee.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	employee.Password = string(hashedPassword)

	if err := s.employeeRepo.Create(employee); err != nil {
		return fmt.Errorf("failed to register employee: %w", err)
	}
	return nil
}

// Login authenticates an employee and returns a signed JWT on success.
func (s *AuthService) Login(username, password string) (string, error) {
	employee, err := s.employeeRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"employee_id": employee.EmployeeID,
		"username":    employee.Username,
		"exp":         time.Now().Add(s.tokenDurat).Unix(),
		"iat":         time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token claims")
}
