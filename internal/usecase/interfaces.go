package usecase

import (
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

// JWTService defines the interface for bearer token operations.
type JWTService interface {
	GenerateAccessToken(user *entity.User) (string, error)
	GenerateRefreshToken(userID string, role entity.UserRole) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
	ParseRefreshToken(token string) (*entity.Claims, error)
}
