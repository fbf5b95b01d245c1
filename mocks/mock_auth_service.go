package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"testpro/internal/domain"
	"testpro/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) GenerateToken(userID uuid.UUID, name string, role domain.UserRole) (*service.IssuedToken, error) {
	args := m.Called(userID, name, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.IssuedToken), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}
