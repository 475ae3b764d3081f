package contract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser inserts a user. Returns ErrDuplicateKey on a unique index violation.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateUser writes every mutable field except the refresh token digest.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// SetRefreshTokenHash overwrites the stored refresh token digest unconditionally.
	SetRefreshTokenHash(ctx context.Context, id, hash string) error
	// SwapRefreshTokenHash replaces oldHash with newHash. Returns ErrStaleToken when
	// the stored digest is no longer oldHash.
	SwapRefreshTokenHash(ctx context.Context, id, oldHash, newHash string) error
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context, filter entity.UserListFilter) ([]*entity.User, int64, error)
	// ReplaceAll drops every user and inserts users.
	ReplaceAll(ctx context.Context, users []*entity.User) error
}
