package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"pos-backend/internal/domain"
	"pos-backend/internal/repository"
	"pos-backend/internal/security"
)

type authService struct {
	employeeRepo repository.EmployeeRepository
	tokens       security.TokenManager
}

func NewAuthService(employeeRepo repository.EmployeeRepository, tokens security.TokenManager) AuthService {
	return &authService{employeeRepo: employeeRepo, tokens: tokens}
}

// Login verifies credentials against the stored bcrypt hash. Plaintext
// legacy hashes are not accepted; migrated accounts must be rehashed
// before they can sign in.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Employee, error) {
	employee, err := s.employeeRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(employee.ID, employee.Username, employee.Position)
	if err != nil {
		return "", nil, err
	}
	return token, employee, nil
}
