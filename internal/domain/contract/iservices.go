package contract

import (
	"context"
	"io"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	// HashString is a fast digest for high-entropy tokens, not passwords.
	HashString(s string) string
	CheckHash(s, hash string) bool
}

type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}

type IUUIDGenerator interface {
	NewUUID() string
}

// IFileStorage keeps uploaded images in a blob store.
type IFileStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// IEventPublisher emits domain events to an external broker.
type IEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entity.OrderEvent) error
}

// ITransactionRunner runs fn as one unit of work. Repository calls made with
// the ctx passed to fn join the unit.
type ITransactionRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
