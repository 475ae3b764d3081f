package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

// ChangePassword replaces the password after checking the current one.
func (uc *UserUsecase) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if err := uc.validator.ValidatePasswordStrength(newPassword); err != nil {
		return apperror.BadRequest(err.Error())
	}
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := uc.hasher.ComparePasswordHash(oldPassword, user.PasswordHash); err != nil {
		return apperror.BadRequest("old password is incorrect")
	}

	hashed, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		return internalError(uc.logger, "hash password", err)
	}
	user.PasswordHash = hashed
	user.UpdatedAt = uc.now().UTC()
	if _, err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return internalError(uc.logger, "change password", err)
	}
	return nil
}

// ChangeEmail parks newEmail as pending and mails a confirmation link to it.
func (uc *UserUsecase) ChangeEmail(ctx context.Context, userID, newEmail, password string) error {
	newEmail = normalize(newEmail)
	if err := uc.validator.ValidateEmail(newEmail); err != nil {
		return apperror.BadRequest("invalid email format")
	}
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return apperror.Unauthorized("password is incorrect")
	}
	if newEmail == user.Email {
		return apperror.BadRequest("new email must be different from the current one")
	}
	if err := uc.ensureEmailFree(ctx, newEmail); err != nil {
		return err
	}

	code, err := uc.randomGenerator.GenerateRandomToken(codeLength)
	if err != nil {
		return internalError(uc.logger, "generate change email code", err)
	}
	user.TempMail = newEmail
	user.ChangeEmailTokenHash = uc.hasher.HashString(code)
	user.UpdatedAt = uc.now().UTC()
	if _, err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return internalError(uc.logger, "store pending email", err)
	}

	link := buildLink(uc.config.GetChangeEmailConfirmationURL(), map[string]string{
		"userId":            user.ID,
		"confirmationToken": code,
	})
	m, err := changeEmailMail(uc.config.GetProjectName(), user.FullName, link)
	if err != nil {
		return internalError(uc.logger, "render change email confirmation", err)
	}
	if err := uc.mailService.SendEmail(ctx, newEmail, m.subject, m.body); err != nil {
		return internalError(uc.logger, "send change email confirmation", err)
	}
	return nil
}

// ConfirmChangeEmail promotes the pending email.
func (uc *UserUsecase) ConfirmChangeEmail(ctx context.Context, userID, token string) (*entity.User, error) {
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasPendingEmailChange() || !uc.hasher.CheckHash(token, user.ChangeEmailTokenHash) {
		return nil, apperror.Unauthorized("invalid or expired confirmation token")
	}
	if err := uc.ensureEmailFree(ctx, user.TempMail); err != nil {
		return nil, err
	}

	user.Email = user.TempMail
	user.TempMail = ""
	user.ChangeEmailTokenHash = ""
	user.UpdatedAt = uc.now().UTC()
	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, apperror.Conflict("user with this email already exists")
		}
		return nil, internalError(uc.logger, "confirm email change", err)
	}
	return updated, nil
}

// GetAllUsers lists non-admin accounts.
func (uc *UserUsecase) GetAllUsers(ctx context.Context, filter entity.UserListFilter) ([]*entity.User, entity.Pagination, error) {
	filter.ExcludeRole = entity.UserRoleAdmin
	users, total, err := uc.userRepo.ListUsers(ctx, filter)
	if err != nil {
		return nil, entity.Pagination{}, internalError(uc.logger, "list users", err)
	}
	if len(users) == 0 {
		return nil, entity.Pagination{}, apperror.NotFound("no users found")
	}
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(users)
	}
	return users, entity.NewPagination(page, limit, total), nil
}

// GetCurrentUser returns the caller's own account.
func (uc *UserUsecase) GetCurrentUser(ctx context.Context, userID, callerID string) (*entity.User, error) {
	if userID != callerID {
		return nil, apperror.Forbidden("you can only view your own account")
	}
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsBanned {
		return nil, apperror.Forbidden("your account has been banned")
	}
	return user, nil
}

func (uc *UserUsecase) GetUserProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.getUser(ctx, userID)
}

// UpdateAccountDetails changes the caller's name, username or avatar.
func (uc *UserUsecase) UpdateAccountDetails(ctx context.Context, userID, callerID string, fullName, username *string, avatar *entity.FileUpload) (*entity.User, error) {
	if userID != callerID {
		return nil, apperror.Forbidden("you can only update your own account")
	}
	if fullName == nil && username == nil && avatar == nil {
		return nil, apperror.BadRequest("nothing to update")
	}
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if fullName != nil {
		name := strings.TrimSpace(*fullName)
		if utf8.RuneCountInString(name) < minFullNameLength {
			return nil, apperror.BadRequest("full name must be at least 4 characters")
		}
		user.FullName = name
	}
	if username != nil {
		name := normalize(*username)
		if err := uc.validator.ValidateUsername(name); err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
		if name != user.Username {
			if err := uc.ensureUsernameFree(ctx, name); err != nil {
				return nil, err
			}
			user.Username = name
		}
	}

	oldAvatar := user.Avatar
	if avatar != nil {
		if !uc.images.enabled() {
			return nil, apperror.BadRequest("file uploads are disabled")
		}
		img, err := uc.images.upload(ctx, "avatars", user.ID, avatar)
		if err != nil {
			return nil, err
		}
		user.Avatar = img
	}

	user.UpdatedAt = uc.now().UTC()
	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		if avatar != nil {
			uc.images.remove(ctx, user.Avatar)
		}
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, apperror.Conflict("user with this username already exists")
		}
		return nil, internalError(uc.logger, "update account", err)
	}
	if avatar != nil {
		uc.images.remove(ctx, oldAvatar)
	}
	return updated, nil
}

// DeleteUser removes a regular user account.
func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != entity.UserRoleUser {
		return apperror.Forbidden("only regular users can be deleted")
	}
	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return apperror.NotFound(errUserNotFound)
		}
		return internalError(uc.logger, "delete user", err)
	}
	uc.images.remove(ctx, user.Avatar)
	return nil
}

// ManageUserStatus bans or unbans a user. Banning also ends the user's session.
func (uc *UserUsecase) ManageUserStatus(ctx context.Context, userID string, action entity.UserStatusAction) (*entity.User, error) {
	if action != entity.UserActionBan && action != entity.UserActionUnban {
		return nil, apperror.BadRequest("action must be either ban or unban")
	}
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	banned := action == entity.UserActionBan
	if user.IsBanned == banned {
		if banned {
			return nil, apperror.Conflict("user is already banned")
		}
		return nil, apperror.Conflict("user is not banned")
	}

	user.IsBanned = banned
	user.UpdatedAt = uc.now().UTC()
	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, internalError(uc.logger, "update user status", err)
	}
	if banned {
		if err := uc.userRepo.SetRefreshTokenHash(ctx, user.ID, ""); err != nil {
			uc.logger.Warnf("failed to end session of banned user %s: %v", user.ID, err)
		}
	}
	return updated, nil
}
