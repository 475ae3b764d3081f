package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

type IEmailVerificationUC interface {
	// SendConfirmationEmail issues a fresh confirmation code for user, replacing any
	// previous one, and mails the confirmation link. It returns the plain code.
	SendConfirmationEmail(ctx context.Context, user *entity.User) (string, error)
	ConfirmAccount(ctx context.Context, userID, token string) (*entity.User, error)
	ResendConfirmationEmail(ctx context.Context, email string) error
}
