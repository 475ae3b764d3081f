package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/validator"
	"github.com/mikiasgoitom/BazaarHub/internal/usecase"
	"github.com/mikiasgoitom/BazaarHub/internal/usecase/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userEnv struct {
	users   *mocks.UserRepository
	mailer  *mocks.Mailer
	storage *mocks.Storage
	uc      *usecase.UserUsecase
}

func newUserEnv(t *testing.T, users ...*entity.User) *userEnv {
	t.Helper()
	env := &userEnv{
		users:   mocks.NewUserRepository(users...),
		mailer:  &mocks.Mailer{},
		storage: mocks.NewStorage(),
	}
	gen := &mocks.SequenceGenerator{}
	emailUC := usecase.NewEmailVerificationUseCase(env.users, env.mailer, gen, mocks.Hasher{}, mocks.Config{}, mocks.Logger{})
	env.uc = usecase.NewUserUsecase(
		env.users, emailUC, mocks.Hasher{}, &mocks.JWTService{}, env.mailer, env.storage,
		mocks.Logger{}, mocks.Config{}, validator.NewValidator(), gen, gen,
	)
	return env
}

func confirmedUser(id, username, email, password string, role entity.UserRole) *entity.User {
	return &entity.User{
		ID:                 id,
		FullName:           "Test " + username,
		Username:           username,
		Email:              email,
		PasswordHash:       "bcrypt:" + password,
		Role:               role,
		IsAccountConfirmed: true,
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	return apperror.StatusOf(err)
}

// codeFromDigest recovers the plain code from the transparent test hasher.
func codeFromDigest(digest string) string {
	return strings.TrimPrefix(digest, "sha:")
}

func TestRegister_Success(t *testing.T) {
	env := newUserEnv(t)

	user, code, err := env.uc.Register(context.Background(), "  Alice Wonder ", "Alice_1", "Alice@Example.com", "secret1", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, code)
	assert.Equal(t, "alice_1", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice Wonder", user.FullName)
	assert.Equal(t, entity.UserRoleUser, user.Role)
	assert.Equal(t, "https://avatar.test/default.png", user.Avatar.URL)

	stored := env.users.Stored(user.ID)
	require.NotNil(t, stored)
	assert.False(t, stored.IsAccountConfirmed)
	assert.Equal(t, "bcrypt:secret1", stored.PasswordHash)
	assert.Equal(t, "sha:"+code, stored.ConfirmationTokenHash)

	mail := env.mailer.Last()
	assert.Equal(t, "alice@example.com", mail.To)
	assert.Contains(t, mail.Body, "userId="+user.ID)
	assert.Contains(t, mail.Body, "confirmationToken="+code)
}

func TestRegister_Conflicts(t *testing.T) {
	existing := confirmedUser("u-1", "bob", "bob@example.com", "secret1", entity.UserRoleUser)

	t.Run("email taken", func(t *testing.T) {
		env := newUserEnv(t, existing)
		_, _, err := env.uc.Register(context.Background(), "Bobby Two", "bobby", "BOB@example.com", "secret1", nil)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("username taken", func(t *testing.T) {
		env := newUserEnv(t, existing)
		_, _, err := env.uc.Register(context.Background(), "Bobby Two", "Bob", "other@example.com", "secret1", nil)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		assert.Contains(t, err.Error(), "username")
	})
}

func TestRegister_InvalidInput(t *testing.T) {
	tests := []struct {
		name                                string
		fullName, username, email, password string
	}{
		{"short full name", "Al", "alice", "alice@example.com", "secret1"},
		{"bad username", "Alice Wonder", "1alice", "alice@example.com", "secret1"},
		{"bad email", "Alice Wonder", "alice", "not-an-email", "secret1"},
		{"short password", "Alice Wonder", "alice", "alice@example.com", "123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newUserEnv(t)
			_, _, err := env.uc.Register(context.Background(), tt.fullName, tt.username, tt.email, tt.password, nil)
			assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		})
	}
}

func TestRegister_WithAvatar(t *testing.T) {
	env := newUserEnv(t)
	avatar := &entity.FileUpload{Filename: "me.PNG", ContentType: "image/png", Size: 3, Reader: strings.NewReader("png")}

	user, _, err := env.uc.Register(context.Background(), "Alice Wonder", "alice", "alice@example.com", "secret1", avatar)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.Avatar.ID, "avatars/"+user.ID))
	assert.True(t, strings.HasSuffix(user.Avatar.ID, ".png"))
	assert.Equal(t, "https://cdn.test/"+user.Avatar.ID, user.Avatar.URL)
	assert.Equal(t, "png", env.storage.Objects[user.Avatar.ID])
}

func TestRegister_RejectsNonImageAvatar(t *testing.T) {
	env := newUserEnv(t)
	file := &entity.FileUpload{Filename: "x.txt", ContentType: "text/plain", Reader: strings.NewReader("x")}

	_, _, err := env.uc.Register(context.Background(), "Alice Wonder", "alice", "alice@example.com", "secret1", file)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestRegister_MailFailure(t *testing.T) {
	env := newUserEnv(t)
	env.mailer.Fail = true

	ctx := context.Background()

	_, _, err := env.uc.Register(ctx, "Alice Wonder", "alice", "alice@example.com", "secret1", nil)
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	assert.Equal(t, "internal server error", apperror.From(err).Message)

	_, err = env.users.GetUserByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, contract.ErrUserNotFound, "failed registration leaves no user behind")

	env.mailer.Fail = false
	user, code, err := env.uc.Register(ctx, "Alice Wonder", "alice", "alice@example.com", "secret1", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, code)
	assert.NotNil(t, env.users.Stored(user.ID))
}

func TestLogin_ErrorOrder(t *testing.T) {
	banned := confirmedUser("u-1", "banned", "banned@example.com", "secret1", entity.UserRoleUser)
	banned.IsBanned = true
	unconfirmed := confirmedUser("u-2", "fresh", "fresh@example.com", "secret1", entity.UserRoleUser)
	unconfirmed.IsAccountConfirmed = false
	bannedUnconfirmed := confirmedUser("u-3", "both", "both@example.com", "secret1", entity.UserRoleUser)
	bannedUnconfirmed.IsBanned = true
	bannedUnconfirmed.IsAccountConfirmed = false

	tests := []struct {
		name       string
		identifier string
		password   string
		want       int
	}{
		{"unknown user", "ghost", "secret1", http.StatusNotFound},
		{"wrong password beats ban", "banned", "wrong!!", http.StatusUnauthorized},
		{"banned", "banned@example.com", "secret1", http.StatusForbidden},
		{"unconfirmed", "fresh", "secret1", http.StatusForbidden},
		{"ban checked before confirmation", "both", "secret1", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newUserEnv(t, banned, unconfirmed, bannedUnconfirmed)
			_, _, _, err := env.uc.Login(context.Background(), tt.identifier, tt.password)
			assert.Equal(t, tt.want, statusOf(t, err))
		})
	}
}

func TestLogin_Success(t *testing.T) {
	env := newUserEnv(t, confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser))

	for _, identifier := range []string{"alice", "ALICE@example.com"} {
		user, access, refresh, err := env.uc.Login(context.Background(), identifier, "secret1")
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.NotEmpty(t, access)
		assert.Equal(t, "sha:"+refresh, env.users.Stored("u-1").RefreshTokenHash)
	}
}

func TestRefreshAccessToken_Rotation(t *testing.T) {
	env := newUserEnv(t, confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser))
	ctx := context.Background()

	_, _, refresh, err := env.uc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	access2, refresh2, err := env.uc.RefreshAccessToken(ctx, "u-1", refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access2)
	assert.NotEqual(t, refresh, refresh2)
	assert.Equal(t, "sha:"+refresh2, env.users.Stored("u-1").RefreshTokenHash)

	_, _, err = env.uc.RefreshAccessToken(ctx, "u-1", refresh)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, _, err = env.uc.RefreshAccessToken(ctx, "u-1", refresh2)
	assert.NoError(t, err)
}

func TestRefreshAccessToken_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		env := newUserEnv(t)
		_, _, err := env.uc.RefreshAccessToken(ctx, "nobody", "refresh|nobody|user|1")
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("digest matches but token does not verify", func(t *testing.T) {
		u := confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser)
		u.RefreshTokenHash = "sha:garbage"
		env := newUserEnv(t, u)
		_, _, err := env.uc.RefreshAccessToken(ctx, "u-1", "garbage")
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("token of another user", func(t *testing.T) {
		u := confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser)
		u.RefreshTokenHash = "sha:refresh|u-2|user|1"
		env := newUserEnv(t, u)
		_, _, err := env.uc.RefreshAccessToken(ctx, "u-1", "refresh|u-2|user|1")
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("after logout", func(t *testing.T) {
		env := newUserEnv(t, confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser))
		_, _, refresh, err := env.uc.Login(ctx, "alice", "secret1")
		require.NoError(t, err)
		require.NoError(t, env.uc.Logout(ctx, "u-1"))
		assert.Empty(t, env.users.Stored("u-1").RefreshTokenHash)

		_, _, err = env.uc.RefreshAccessToken(ctx, "u-1", refresh)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})
}

func TestForgotAndResetPassword(t *testing.T) {
	env := newUserEnv(t, confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser))
	ctx := context.Background()

	err := env.uc.ForgotPassword(ctx, "ghost@example.com")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	require.NoError(t, env.uc.ForgotPassword(ctx, "alice@example.com"))
	first := codeFromDigest(env.users.Stored("u-1").ResetPasswordTokenHash)
	assert.Contains(t, env.mailer.Last().Body, "resetPasswordToken="+first)

	require.NoError(t, env.uc.ForgotPassword(ctx, "alice@example.com"))
	second := codeFromDigest(env.users.Stored("u-1").ResetPasswordTokenHash)
	require.NotEqual(t, first, second)

	err = env.uc.ResetPassword(ctx, "u-1", first, "newsecret")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err), "only the latest code is valid")

	_, _, _, err = env.uc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NoError(t, env.uc.ResetPassword(ctx, "u-1", second, "newsecret"))

	stored := env.users.Stored("u-1")
	assert.Equal(t, "bcrypt:newsecret", stored.PasswordHash)
	assert.Empty(t, stored.ResetPasswordTokenHash)
	assert.Empty(t, stored.RefreshTokenHash)

	err = env.uc.ResetPassword(ctx, "u-1", second, "another1")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err), "codes are single use")
}

func TestResetPassword_UnknownUser(t *testing.T) {
	env := newUserEnv(t)
	err := env.uc.ResetPassword(context.Background(), "ghost", "code", "newsecret")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestChangePassword(t *testing.T) {
	env := newUserEnv(t, confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser))
	ctx := context.Background()

	err := env.uc.ChangePassword(ctx, "u-1", "wrong!!", "newsecret")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	require.NoError(t, env.uc.ChangePassword(ctx, "u-1", "secret1", "newsecret"))
	assert.Equal(t, "bcrypt:newsecret", env.users.Stored("u-1").PasswordHash)
}

func TestChangeEmailFlow(t *testing.T) {
	env := newUserEnv(t,
		confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser),
		confirmedUser("u-2", "bob", "bob@example.com", "secret1", entity.UserRoleUser),
	)
	ctx := context.Background()

	err := env.uc.ChangeEmail(ctx, "u-1", "new@example.com", "wrong!!")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	err = env.uc.ChangeEmail(ctx, "u-1", "bob@example.com", "secret1")
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	require.NoError(t, env.uc.ChangeEmail(ctx, "u-1", "New@Example.com", "secret1"))
	stored := env.users.Stored("u-1")
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.Equal(t, "new@example.com", stored.TempMail)
	assert.Equal(t, "new@example.com", env.mailer.Last().To)
	code := codeFromDigest(stored.ChangeEmailTokenHash)

	_, err = env.uc.ConfirmChangeEmail(ctx, "u-1", "not-the-code")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	user, err := env.uc.ConfirmChangeEmail(ctx, "u-1", code)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Empty(t, env.users.Stored("u-1").TempMail)

	_, err = env.uc.ConfirmChangeEmail(ctx, "u-1", code)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestConfirmChangeEmail_AddressTakenMeanwhile(t *testing.T) {
	env := newUserEnv(t, confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser))
	ctx := context.Background()

	require.NoError(t, env.uc.ChangeEmail(ctx, "u-1", "new@example.com", "secret1"))
	code := codeFromDigest(env.users.Stored("u-1").ChangeEmailTokenHash)
	require.NoError(t, env.users.CreateUser(ctx, confirmedUser("u-2", "bob", "new@example.com", "secret1", entity.UserRoleUser)))

	_, err := env.uc.ConfirmChangeEmail(ctx, "u-1", code)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
}

func TestGetAllUsers_ExcludesAdmins(t *testing.T) {
	env := newUserEnv(t,
		confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser),
		confirmedUser("u-2", "root", "root@example.com", "secret1", entity.UserRoleAdmin),
	)

	users, page, err := env.uc.GetAllUsers(context.Background(), entity.UserListFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, int64(1), page.TotalPages)

	_, _, err = env.uc.GetAllUsers(context.Background(), entity.UserListFilter{Search: "nobody"})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestGetCurrentUser(t *testing.T) {
	banned := confirmedUser("u-2", "bob", "bob@example.com", "secret1", entity.UserRoleUser)
	banned.IsBanned = true
	env := newUserEnv(t, confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser), banned)
	ctx := context.Background()

	_, err := env.uc.GetCurrentUser(ctx, "u-1", "u-2")
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	_, err = env.uc.GetCurrentUser(ctx, "u-2", "u-2")
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	_, err = env.uc.GetCurrentUser(ctx, "u-9", "u-9")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	user, err := env.uc.GetCurrentUser(ctx, "u-1", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUpdateAccountDetails(t *testing.T) {
	alice := confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser)
	alice.Avatar = entity.Image{URL: "https://cdn.test/avatars/old.png", ID: "avatars/old.png"}
	env := newUserEnv(t, alice, confirmedUser("u-2", "bob", "bob@example.com", "secret1", entity.UserRoleUser))
	ctx := context.Background()
	name := "Alice Liddell"
	taken := "Bob"
	fresh := "alice_l"

	_, err := env.uc.UpdateAccountDetails(ctx, "u-1", "u-2", &name, nil, nil)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))

	_, err = env.uc.UpdateAccountDetails(ctx, "u-1", "u-1", nil, nil, nil)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	_, err = env.uc.UpdateAccountDetails(ctx, "u-1", "u-1", nil, &taken, nil)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	avatar := &entity.FileUpload{Filename: "new.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("jpg")}
	user, err := env.uc.UpdateAccountDetails(ctx, "u-1", "u-1", &name, &fresh, avatar)
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", user.FullName)
	assert.Equal(t, "alice_l", user.Username)
	assert.NotEqual(t, "avatars/old.png", user.Avatar.ID)
	assert.Contains(t, env.storage.Deleted, "avatars/old.png")
}

func TestDeleteUser(t *testing.T) {
	env := newUserEnv(t,
		confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser),
		confirmedUser("u-2", "root", "root@example.com", "secret1", entity.UserRoleAdmin),
	)
	ctx := context.Background()

	assert.Equal(t, http.StatusNotFound, statusOf(t, env.uc.DeleteUser(ctx, "u-9")))
	assert.Equal(t, http.StatusForbidden, statusOf(t, env.uc.DeleteUser(ctx, "u-2")))
	require.NoError(t, env.uc.DeleteUser(ctx, "u-1"))
	assert.Nil(t, env.users.Stored("u-1"))
}

func TestManageUserStatus(t *testing.T) {
	alice := confirmedUser("u-1", "alice", "alice@example.com", "secret1", entity.UserRoleUser)
	alice.RefreshTokenHash = "sha:refresh"
	env := newUserEnv(t, alice)
	ctx := context.Background()

	_, err := env.uc.ManageUserStatus(ctx, "u-1", "suspend")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	_, err = env.uc.ManageUserStatus(ctx, "u-9", entity.UserActionBan)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = env.uc.ManageUserStatus(ctx, "u-1", entity.UserActionUnban)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	user, err := env.uc.ManageUserStatus(ctx, "u-1", entity.UserActionBan)
	require.NoError(t, err)
	assert.True(t, user.IsBanned)
	assert.Empty(t, env.users.Stored("u-1").RefreshTokenHash)

	_, err = env.uc.ManageUserStatus(ctx, "u-1", entity.UserActionBan)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	user, err = env.uc.ManageUserStatus(ctx, "u-1", entity.UserActionUnban)
	require.NoError(t, err)
	assert.False(t, user.IsBanned)
}

func TestLoginWithOAuth(t *testing.T) {
	env := newUserEnv(t, confirmedUser("u-1", "alice", "someone@example.com", "secret1", entity.UserRoleUser))
	ctx := context.Background()

	user, access, refresh, err := env.uc.LoginWithOAuth(ctx, "Alice Google", "Alice@Gmail.com", true)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.True(t, user.IsAccountConfirmed)
	assert.Equal(t, "alice@gmail.com", user.Email)
	assert.True(t, strings.HasPrefix(user.Username, "alice_"), "taken username gets a suffix: %s", user.Username)

	again, _, _, err := env.uc.LoginWithOAuth(ctx, "Alice Google", "alice@gmail.com", true)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestLoginWithOAuth_Banned(t *testing.T) {
	u := confirmedUser("u-1", "alice", "alice@gmail.com", "secret1", entity.UserRoleUser)
	u.IsBanned = true
	env := newUserEnv(t, u)

	_, _, _, err := env.uc.LoginWithOAuth(context.Background(), "Alice", "alice@gmail.com", true)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}

func TestLoginWithOAuth_UnverifiedEmail(t *testing.T) {
	pending := confirmedUser("u-1", "alice", "alice@gmail.com", "secret1", entity.UserRoleUser)
	pending.IsAccountConfirmed = false
	pending.ConfirmationTokenHash = "sha:code1"
	env := newUserEnv(t, pending)
	ctx := context.Background()

	_, _, _, err := env.uc.LoginWithOAuth(ctx, "Alice", "alice@gmail.com", false)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	assert.False(t, env.users.Stored("u-1").IsAccountConfirmed)
	assert.Equal(t, "sha:code1", env.users.Stored("u-1").ConfirmationTokenHash)
	assert.Empty(t, env.users.Stored("u-1").RefreshTokenHash)

	_, _, _, err = env.uc.LoginWithOAuth(ctx, "Mallory", "mallory@gmail.com", false)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	_, err = env.users.GetUserByEmail(ctx, "mallory@gmail.com")
	assert.ErrorIs(t, err, contract.ErrUserNotFound)
}

func TestLoginWithOAuth_VerifiedEmailConfirmsPendingAccount(t *testing.T) {
	pending := confirmedUser("u-1", "alice", "alice@gmail.com", "secret1", entity.UserRoleUser)
	pending.IsAccountConfirmed = false
	env := newUserEnv(t, pending)

	user, _, _, err := env.uc.LoginWithOAuth(context.Background(), "Alice", "alice@gmail.com", true)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.True(t, env.users.Stored("u-1").IsAccountConfirmed)
}
