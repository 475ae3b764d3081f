package mocks

import (
	"context"
	"time"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	ShouldFailLogin          bool
	ShouldFailRefresh        bool
	ShouldFailLogout         bool
	ShouldFailGetUser        bool
	ShouldFailForgotPassword bool
	ShouldFailResetPassword  bool
	ShouldFailUpdate         bool

	// Err replaces the default failure when set.
	Err error

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string
	MockConfirmToken string

	// Recorded arguments
	LastIdentifier    string
	LastUserID        string
	LastCallerID      string
	LastAvatar        *entity.FileUpload
	LastEmailVerified bool
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:                 "mock-user-id",
			FullName:           "Test User",
			Username:           "testuser",
			Email:              "test@example.com",
			Role:               entity.UserRoleUser,
			PasswordHash:       "secret-hash",
			RefreshTokenHash:   "refresh-digest",
			IsAccountConfirmed: true,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
		MockConfirmToken: "mock_confirmation_token",
	}
}

func (m *MockUserUsecase) fail(def error) error {
	if m.Err != nil {
		return m.Err
	}
	return def
}

func (m *MockUserUsecase) user() *entity.User {
	u := m.MockUser
	return &u
}

func (m *MockUserUsecase) Register(ctx context.Context, fullName, username, email, password string, avatar *entity.FileUpload) (*entity.User, string, error) {
	m.LastAvatar = avatar
	if m.ShouldFailRegister {
		return nil, "", m.fail(apperror.Conflict("email already exists"))
	}
	u := m.user()
	u.FullName, u.Username, u.Email = fullName, username, email
	u.IsAccountConfirmed = false
	return u, m.MockConfirmToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, string, error) {
	m.LastIdentifier = identifier
	if m.ShouldFailLogin {
		return nil, "", "", m.fail(apperror.Unauthorized("invalid credentials"))
	}
	return m.user(), m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) RefreshAccessToken(ctx context.Context, userID, refreshToken string) (string, string, error) {
	m.LastUserID = userID
	if m.ShouldFailRefresh {
		return "", "", m.fail(apperror.Unauthorized("invalid refresh token"))
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, userID string) error {
	m.LastUserID = userID
	if m.ShouldFailLogout {
		return m.fail(apperror.NotFound("user not found"))
	}
	return nil
}

func (m *MockUserUsecase) ForgotPassword(ctx context.Context, email string) error {
	if m.ShouldFailForgotPassword {
		return m.fail(apperror.NotFound("user not found"))
	}
	return nil
}

func (m *MockUserUsecase) ResetPassword(ctx context.Context, userID, resetToken, newPassword string) error {
	m.LastUserID = userID
	if m.ShouldFailResetPassword {
		return m.fail(apperror.Unauthorized("invalid reset password token"))
	}
	return nil
}

func (m *MockUserUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	m.LastUserID = userID
	if m.ShouldFailUpdate {
		return m.fail(apperror.BadRequest("old password is incorrect"))
	}
	return nil
}

func (m *MockUserUsecase) ChangeEmail(ctx context.Context, userID, newEmail, password string) error {
	m.LastUserID = userID
	if m.ShouldFailUpdate {
		return m.fail(apperror.Conflict("email already exists"))
	}
	return nil
}

func (m *MockUserUsecase) ConfirmChangeEmail(ctx context.Context, userID, token string) (*entity.User, error) {
	m.LastUserID = userID
	if m.ShouldFailUpdate {
		return nil, m.fail(apperror.Unauthorized("invalid confirmation token"))
	}
	return m.user(), nil
}

func (m *MockUserUsecase) GetAllUsers(ctx context.Context, filter entity.UserListFilter) ([]*entity.User, entity.Pagination, error) {
	if m.ShouldFailGetUser {
		return nil, entity.Pagination{}, m.fail(apperror.NotFound("no users found"))
	}
	return []*entity.User{m.user()}, entity.NewPagination(1, 10, 1), nil
}

func (m *MockUserUsecase) GetCurrentUser(ctx context.Context, userID, callerID string) (*entity.User, error) {
	m.LastUserID, m.LastCallerID = userID, callerID
	if m.ShouldFailGetUser {
		return nil, m.fail(apperror.NotFound("user not found"))
	}
	return m.user(), nil
}

func (m *MockUserUsecase) GetUserProfile(ctx context.Context, userID string) (*entity.User, error) {
	m.LastUserID = userID
	if m.ShouldFailGetUser {
		return nil, m.fail(apperror.NotFound("user not found"))
	}
	return m.user(), nil
}

func (m *MockUserUsecase) UpdateAccountDetails(ctx context.Context, userID, callerID string, fullName, username *string, avatar *entity.FileUpload) (*entity.User, error) {
	m.LastUserID, m.LastCallerID, m.LastAvatar = userID, callerID, avatar
	if m.ShouldFailUpdate {
		return nil, m.fail(apperror.Forbidden("you can only update your own account"))
	}
	u := m.user()
	if fullName != nil {
		u.FullName = *fullName
	}
	if username != nil {
		u.Username = *username
	}
	return u, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) error {
	m.LastUserID = userID
	if m.ShouldFailUpdate {
		return m.fail(apperror.NotFound("user not found"))
	}
	return nil
}

func (m *MockUserUsecase) ManageUserStatus(ctx context.Context, userID string, action entity.UserStatusAction) (*entity.User, error) {
	m.LastUserID = userID
	if m.ShouldFailUpdate {
		return nil, m.fail(apperror.BadRequest("invalid action"))
	}
	u := m.user()
	u.IsBanned = action == entity.UserActionBan
	return u, nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, fullName, email string, emailVerified bool) (*entity.User, string, string, error) {
	m.LastIdentifier = email
	m.LastEmailVerified = emailVerified
	if !emailVerified {
		return nil, "", "", m.fail(apperror.Forbidden("google email is not verified"))
	}
	if m.ShouldFailLogin {
		return nil, "", "", m.fail(apperror.Forbidden("your account has been banned"))
	}
	return m.user(), m.MockAccessToken, m.MockRefreshToken, nil
}
