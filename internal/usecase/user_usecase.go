package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

const (
	errUserNotFound       = "user not found"
	errInvalidCredentials = "invalid credentials"
	errInvalidRefresh     = "invalid refresh token"
	minFullNameLength     = 4
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo        contract.IUserRepository
	emailUsecase    usecasecontract.IEmailVerificationUC
	hasher          contract.IHasher
	jwtService      JWTService
	mailService     contract.IEmailService
	images          imageUploader
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
	now             func() time.Time
}

// NewUserUsecase creates a new UserUsecase instance. storage may be nil, in
// which case avatars always fall back to the default image.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	emailUC usecasecontract.IEmailVerificationUC,
	hasher contract.IHasher,
	jwtService JWTService,
	mailService contract.IEmailService,
	storage contract.IFileStorage,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomgen contract.IRandomGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:        userRepo,
		emailUsecase:    emailUC,
		hasher:          hasher,
		jwtService:      jwtService,
		mailService:     mailService,
		images:          imageUploader{storage: storage, logger: logger},
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomgen,
		now:             time.Now,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register creates an unconfirmed account and mails its confirmation link.
func (uc *UserUsecase) Register(ctx context.Context, fullName, username, email, password string, avatar *entity.FileUpload) (*entity.User, string, error) {
	fullName = strings.TrimSpace(fullName)
	username = normalize(username)
	email = normalize(email)

	if utf8.RuneCountInString(fullName) < minFullNameLength {
		return nil, "", apperror.BadRequest("full name must be at least 4 characters")
	}
	if err := uc.validator.ValidateUsername(username); err != nil {
		return nil, "", apperror.BadRequest(err.Error())
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", apperror.BadRequest("invalid email format")
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, "", apperror.BadRequest(err.Error())
	}

	if err := uc.ensureEmailFree(ctx, email); err != nil {
		return nil, "", err
	}
	if err := uc.ensureUsernameFree(ctx, username); err != nil {
		return nil, "", err
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		return nil, "", internalError(uc.logger, "hash password", err)
	}

	now := uc.now().UTC()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		FullName:     fullName,
		Username:     username,
		Email:        email,
		Avatar:       entity.Image{URL: uc.config.GetDefaultAvatarURL()},
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if avatar != nil {
		if uc.images.enabled() {
			img, err := uc.images.upload(ctx, "avatars", user.ID, avatar)
			if err != nil {
				return nil, "", err
			}
			user.Avatar = img
		} else {
			uc.logger.Warnf("avatar upload skipped for %s: file storage is disabled", username)
		}
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.images.remove(ctx, user.Avatar)
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, "", apperror.Conflict("user with this email or username already exists")
		}
		return nil, "", internalError(uc.logger, "create user", err)
	}

	code, err := uc.emailUsecase.SendConfirmationEmail(ctx, user)
	if err != nil {
		if delErr := uc.userRepo.DeleteUser(ctx, user.ID); delErr != nil {
			uc.logger.Errorf("failed to roll back registration of %s: %v", user.ID, delErr)
		} else {
			uc.images.remove(ctx, user.Avatar)
		}
		return nil, "", err
	}
	return user, code, nil
}

// Login handles user login and token generation. identifier is a username or an email.
func (uc *UserUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, string, error) {
	identifier = normalize(identifier)

	var user *entity.User
	var err error
	if uc.validator.ValidateEmail(identifier) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, identifier)
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", "", apperror.NotFound(errUserNotFound)
		}
		return nil, "", "", internalError(uc.logger, "get user for login", err)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", apperror.Unauthorized(errInvalidCredentials)
	}
	if user.IsBanned {
		return nil, "", "", apperror.Forbidden("your account has been banned")
	}
	if !user.IsAccountConfirmed {
		return nil, "", "", apperror.Forbidden("please confirm your account before logging in")
	}

	accessToken, refreshToken, err := uc.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

// RefreshAccessToken rotates the session: the presented refresh token must be
// the one currently stored for the user, and it is replaced atomically.
func (uc *UserUsecase) RefreshAccessToken(ctx context.Context, userID, refreshToken string) (string, string, error) {
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if !uc.hasher.CheckHash(refreshToken, user.RefreshTokenHash) {
		return "", "", apperror.Unauthorized(errInvalidRefresh)
	}
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil || claims.UserID != user.ID {
		return "", "", apperror.Unauthorized("refresh token is expired or invalid")
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user)
	if err != nil {
		return "", "", internalError(uc.logger, "generate access token", err)
	}
	newRefreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return "", "", internalError(uc.logger, "generate refresh token", err)
	}

	err = uc.userRepo.SwapRefreshTokenHash(ctx, user.ID, user.RefreshTokenHash, uc.hasher.HashString(newRefreshToken))
	if err != nil {
		if errors.Is(err, contract.ErrStaleToken) || errors.Is(err, contract.ErrUserNotFound) {
			return "", "", apperror.Unauthorized(errInvalidRefresh)
		}
		return "", "", internalError(uc.logger, "rotate refresh token", err)
	}
	return accessToken, newRefreshToken, nil
}

// Logout invalidates the stored refresh token.
func (uc *UserUsecase) Logout(ctx context.Context, userID string) error {
	if err := uc.userRepo.SetRefreshTokenHash(ctx, userID, ""); err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return apperror.NotFound(errUserNotFound)
		}
		return internalError(uc.logger, "clear refresh token", err)
	}
	return nil
}

// ForgotPassword mails a reset link. Only the latest code is valid.
func (uc *UserUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetUserByEmail(ctx, normalize(email))
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return apperror.NotFound(errUserNotFound)
		}
		return internalError(uc.logger, "get user", err)
	}

	code, err := uc.randomGenerator.GenerateRandomToken(codeLength)
	if err != nil {
		return internalError(uc.logger, "generate reset code", err)
	}
	user.ResetPasswordTokenHash = uc.hasher.HashString(code)
	user.UpdatedAt = uc.now().UTC()
	if _, err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return internalError(uc.logger, "store reset code", err)
	}

	link := buildLink(uc.config.GetResetPasswordURL(), map[string]string{
		"userId":             user.ID,
		"resetPasswordToken": code,
	})
	m, err := resetPasswordMail(uc.config.GetProjectName(), user.FullName, link)
	if err != nil {
		return internalError(uc.logger, "render reset password email", err)
	}
	if err := uc.mailService.SendEmail(ctx, user.Email, m.subject, m.body); err != nil {
		return internalError(uc.logger, "send reset password email", err)
	}
	return nil
}

// ResetPassword sets a new password and ends the current session.
func (uc *UserUsecase) ResetPassword(ctx context.Context, userID, resetToken, newPassword string) error {
	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return apperror.BadRequest(err.Error())
	}
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if !uc.hasher.CheckHash(resetToken, user.ResetPasswordTokenHash) {
		return apperror.Unauthorized("invalid or expired reset token")
	}

	hashed, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		return internalError(uc.logger, "hash password", err)
	}
	user.PasswordHash = hashed
	user.ResetPasswordTokenHash = ""
	user.UpdatedAt = uc.now().UTC()
	if _, err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return internalError(uc.logger, "reset password", err)
	}
	if err := uc.userRepo.SetRefreshTokenHash(ctx, user.ID, ""); err != nil {
		uc.logger.Warnf("failed to end session for %s after password reset: %v", user.ID, err)
	}
	return nil
}

// LoginWithOAuth signs in the owner of a provider-verified email, creating a
// confirmed account on first use. Unverified provider emails are refused.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, fullName, email string, emailVerified bool) (*entity.User, string, string, error) {
	if !emailVerified {
		return nil, "", "", apperror.Forbidden("google email is not verified")
	}
	email = normalize(email)
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", "", apperror.BadRequest("invalid email format")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if user.IsBanned {
			return nil, "", "", apperror.Forbidden("your account has been banned")
		}
		if !user.IsAccountConfirmed {
			user.IsAccountConfirmed = true
			user.ConfirmationTokenHash = ""
			if user, err = uc.userRepo.UpdateUser(ctx, user); err != nil {
				return nil, "", "", internalError(uc.logger, "confirm oauth user", err)
			}
		}
	case errors.Is(err, contract.ErrUserNotFound):
		user, err = uc.createOAuthUser(ctx, fullName, email)
		if err != nil {
			return nil, "", "", err
		}
	default:
		return nil, "", "", internalError(uc.logger, "get user for oauth login", err)
	}

	accessToken, refreshToken, err := uc.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

func (uc *UserUsecase) createOAuthUser(ctx context.Context, fullName, email string) (*entity.User, error) {
	username, err := uc.availableUsername(ctx, usernameFromEmail(email))
	if err != nil {
		return nil, err
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		fullName = username
	}
	now := uc.now().UTC()
	user := &entity.User{
		ID:                 uc.uuidGenerator.NewUUID(),
		FullName:           fullName,
		Username:           username,
		Email:              email,
		Avatar:             entity.Image{URL: uc.config.GetDefaultAvatarURL()},
		Role:               entity.DefaultRole(),
		IsAccountConfirmed: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, apperror.Conflict("user with this email or username already exists")
		}
		return nil, internalError(uc.logger, "create oauth user", err)
	}
	return user, nil
}

// availableUsername returns base, or base with a short suffix when taken.
func (uc *UserUsecase) availableUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for attempt := 0; attempt < 5; attempt++ {
		_, err := uc.userRepo.GetUserByUsername(ctx, candidate)
		if errors.Is(err, contract.ErrUserNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", internalError(uc.logger, "check username", err)
		}
		suffix := strings.ReplaceAll(uc.uuidGenerator.NewUUID(), "-", "")
		candidate = base + "_" + suffix[:6]
	}
	return "", apperror.Conflict("could not derive a free username")
}

// usernameFromEmail keeps the letters, digits and underscores of the local part.
func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		name = "user" + name
	}
	if len(name) > 20 {
		name = name[:20]
	}
	return name
}

// issueTokens signs a new token pair and stores the refresh digest, replacing
// any previous session.
func (uc *UserUsecase) issueTokens(ctx context.Context, user *entity.User) (string, string, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(user)
	if err != nil {
		return "", "", internalError(uc.logger, "generate access token", err)
	}
	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return "", "", internalError(uc.logger, "generate refresh token", err)
	}
	if err := uc.userRepo.SetRefreshTokenHash(ctx, user.ID, uc.hasher.HashString(refreshToken)); err != nil {
		return "", "", internalError(uc.logger, "store refresh token", err)
	}
	return accessToken, refreshToken, nil
}

func (uc *UserUsecase) getUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, apperror.NotFound(errUserNotFound)
		}
		return nil, internalError(uc.logger, "get user", err)
	}
	return user, nil
}

func (uc *UserUsecase) ensureEmailFree(ctx context.Context, email string) error {
	_, err := uc.userRepo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return apperror.Conflict("user with this email already exists")
	case errors.Is(err, contract.ErrUserNotFound):
		return nil
	default:
		return internalError(uc.logger, "check email", err)
	}
}

func (uc *UserUsecase) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := uc.userRepo.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return apperror.Conflict("user with this username already exists")
	case errors.Is(err, contract.ErrUserNotFound):
		return nil
	default:
		return internalError(uc.logger, "check username", err)
	}
}
