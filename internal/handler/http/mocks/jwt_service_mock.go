package mocks

import (
	"errors"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/usecase"
)

// MockJWTService accepts the access tokens listed in Tokens.
type MockJWTService struct {
	Tokens map[string]*entity.Claims
}

var _ usecase.JWTService = (*MockJWTService)(nil)

func NewMockJWTService() *MockJWTService {
	return &MockJWTService{Tokens: map[string]*entity.Claims{
		"user-token":  {UserID: "mock-user-id", Username: "testuser", Email: "test@example.com", Role: entity.UserRoleUser},
		"admin-token": {UserID: "mock-admin-id", Username: "admin", Email: "admin@example.com", Role: entity.UserRoleAdmin},
	}}
}

func (m *MockJWTService) GenerateAccessToken(user *entity.User) (string, error) {
	return "access-" + user.ID, nil
}

func (m *MockJWTService) GenerateRefreshToken(userID string, role entity.UserRole) (string, error) {
	return "refresh-" + userID, nil
}

func (m *MockJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	if c, ok := m.Tokens[token]; ok {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

func (m *MockJWTService) ParseRefreshToken(token string) (*entity.Claims, error) {
	return nil, errors.New("invalid token")
}
