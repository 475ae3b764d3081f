package jwt

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

var _ usecase.JWTService = (*JWTServiceAdapter)(nil)

// GenerateAccessToken issues an access token carrying the user's identity.
func (a *JWTServiceAdapter) GenerateAccessToken(user *entity.User) (string, error) {
	return a.mgr.GenerateAccessToken(user.ID, user.Username, user.Email, string(user.Role))
}

// GenerateRefreshToken issues a refresh token for a user.
func (a *JWTServiceAdapter) GenerateRefreshToken(userID string, role entity.UserRole) (string, error) {
	return a.mgr.GenerateRefreshToken(uuid.NewString(), userID, string(role))
}

// ParseAccessToken validates an access token and returns Claims.
func (a *JWTServiceAdapter) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	c, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return toClaims(c), nil
}

// ParseRefreshToken validates a refresh token and returns Claims.
func (a *JWTServiceAdapter) ParseRefreshToken(tokenStr string) (*entity.Claims, error) {
	c, err := a.mgr.VerifyRefreshToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return toClaims(c), nil
}

func toClaims(c *CustomClaims) *entity.Claims {
	return &entity.Claims{
		UserID:           c.Subject,
		Username:         c.Username,
		Email:            c.Email,
		Role:             entity.UserRole(c.Role),
		RegisteredClaims: c.RegisteredClaims,
	}
}
