package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

// IUserUseCase defines account lifecycle and user administration operations.
type IUserUseCase interface {
	// Register returns the created user and the plain confirmation code.
	Register(ctx context.Context, fullName, username, email, password string, avatar *entity.FileUpload) (*entity.User, string, error)
	// Login accepts a username or an email as identifier.
	Login(ctx context.Context, identifier, password string) (*entity.User, string, string, error)
	RefreshAccessToken(ctx context.Context, userID, refreshToken string) (string, string, error)
	Logout(ctx context.Context, userID string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, userID, resetToken, newPassword string) error
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	ChangeEmail(ctx context.Context, userID, newEmail, password string) error
	ConfirmChangeEmail(ctx context.Context, userID, token string) (*entity.User, error)
	GetAllUsers(ctx context.Context, filter entity.UserListFilter) ([]*entity.User, entity.Pagination, error)
	GetCurrentUser(ctx context.Context, userID, callerID string) (*entity.User, error)
	GetUserProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateAccountDetails(ctx context.Context, userID, callerID string, fullName, username *string, avatar *entity.FileUpload) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error
	ManageUserStatus(ctx context.Context, userID string, action entity.UserStatusAction) (*entity.User, error)
	LoginWithOAuth(ctx context.Context, fullName, email string, emailVerified bool) (*entity.User, string, string, error)
}
