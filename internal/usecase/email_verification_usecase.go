package usecase

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/apperror"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

type EmailVerificationUseCase struct {
	userRepository  contract.IUserRepository
	emailService    contract.IEmailService
	randomGenerator contract.IRandomGenerator
	hasher          contract.IHasher
	config          usecasecontract.IConfigProvider
	logger          usecasecontract.IAppLogger
}

func NewEmailVerificationUseCase(
	ur contract.IUserRepository,
	es contract.IEmailService,
	rg contract.IRandomGenerator,
	hasher contract.IHasher,
	cfg usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *EmailVerificationUseCase {
	return &EmailVerificationUseCase{
		userRepository:  ur,
		emailService:    es,
		randomGenerator: rg,
		hasher:          hasher,
		config:          cfg,
		logger:          logger,
	}
}

var _ usecasecontract.IEmailVerificationUC = (*EmailVerificationUseCase)(nil)

func (eu *EmailVerificationUseCase) SendConfirmationEmail(ctx context.Context, user *entity.User) (string, error) {
	code, err := eu.randomGenerator.GenerateRandomToken(codeLength)
	if err != nil {
		return "", internalError(eu.logger, "generate confirmation code", err)
	}
	user.ConfirmationTokenHash = eu.hasher.HashString(code)
	if _, err := eu.userRepository.UpdateUser(ctx, user); err != nil {
		return "", internalError(eu.logger, "store confirmation code", err)
	}

	link := buildLink(eu.config.GetAccountConfirmationURL(), map[string]string{
		"userId":            user.ID,
		"confirmationToken": code,
	})
	m, err := confirmationMail(eu.config.GetProjectName(), user.FullName, link)
	if err != nil {
		return "", internalError(eu.logger, "render confirmation email", err)
	}
	if err := eu.emailService.SendEmail(ctx, user.Email, m.subject, m.body); err != nil {
		return "", internalError(eu.logger, "send confirmation email", err)
	}
	return code, nil
}

func (eu *EmailVerificationUseCase) ConfirmAccount(ctx context.Context, userID, token string) (*entity.User, error) {
	user, err := eu.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, apperror.NotFound(errUserNotFound)
		}
		return nil, internalError(eu.logger, "get user", err)
	}
	if user.IsAccountConfirmed {
		return nil, apperror.BadRequest("account is already confirmed")
	}
	if !eu.hasher.CheckHash(token, user.ConfirmationTokenHash) {
		return nil, apperror.BadRequest("invalid confirmation token")
	}

	user.IsAccountConfirmed = true
	user.ConfirmationTokenHash = ""
	updated, err := eu.userRepository.UpdateUser(ctx, user)
	if err != nil {
		return nil, internalError(eu.logger, "confirm account", err)
	}
	return updated, nil
}

func (eu *EmailVerificationUseCase) ResendConfirmationEmail(ctx context.Context, email string) error {
	user, err := eu.userRepository.GetUserByEmail(ctx, normalize(email))
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return apperror.NotFound(errUserNotFound)
		}
		return internalError(eu.logger, "get user", err)
	}
	if user.IsAccountConfirmed {
		return apperror.Conflict("account is already confirmed")
	}
	_, err = eu.SendConfirmationEmail(ctx, user)
	return err
}
