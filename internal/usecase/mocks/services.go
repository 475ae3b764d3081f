package mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/BazaarHub/internal/usecase/contract"
)

// Hasher is a transparent, deterministic IHasher.
type Hasher struct{}

var _ contract.IHasher = Hasher{}

func (Hasher) HashPassword(password string) (string, error) { return "bcrypt:" + password, nil }

func (Hasher) ComparePasswordHash(password, hashed string) error {
	if hashed == "" || "bcrypt:"+password != hashed {
		return errors.New("mismatch")
	}
	return nil
}

func (Hasher) HashString(s string) string {
	if s == "" {
		return ""
	}
	return "sha:" + s
}

func (h Hasher) CheckHash(s, hash string) bool {
	return s != "" && hash != "" && h.HashString(s) == hash
}

// SentEmail is one message captured by Mailer.
type SentEmail struct {
	To, Subject, Body string
}

type Mailer struct {
	mu   sync.Mutex
	Sent []SentEmail
	Fail bool
}

var _ contract.IEmailService = (*Mailer)(nil)

func (m *Mailer) SendEmail(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return ErrForced
	}
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *Mailer) Last() SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return SentEmail{}
	}
	return m.Sent[len(m.Sent)-1]
}

// SequenceGenerator returns predictable ids and codes.
type SequenceGenerator struct {
	n atomic.Int64
}

var (
	_ contract.IUUIDGenerator   = (*SequenceGenerator)(nil)
	_ contract.IRandomGenerator = (*SequenceGenerator)(nil)
)

func (g *SequenceGenerator) NewUUID() string {
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", g.n.Add(1))
}

func (g *SequenceGenerator) GenerateRandomToken(n int) (string, error) {
	return fmt.Sprintf("code%d", g.n.Add(1)), nil
}

// Storage records uploads and deletions.
type Storage struct {
	mu       sync.Mutex
	Objects  map[string]string
	Deleted  []string
	FailNext bool
}

var _ contract.IFileStorage = (*Storage)(nil)

func NewStorage() *Storage {
	return &Storage{Objects: map[string]string{}}
}

func (s *Storage) Upload(_ context.Context, key string, reader io.Reader, _ int64, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailNext {
		s.FailNext = false
		return "", ErrForced
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.Objects[key] = string(data)
	return "https://cdn.test/" + key, nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, key)
	s.Deleted = append(s.Deleted, key)
	return nil
}

type Publisher struct {
	mu     sync.Mutex
	Events []entity.OrderEvent
	Fail   bool
}

var _ contract.IEventPublisher = (*Publisher)(nil)

func (p *Publisher) PublishOrderEvent(_ context.Context, event entity.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Fail {
		return ErrForced
	}
	p.Events = append(p.Events, event)
	return nil
}

// TxRunner runs fn directly and counts invocations.
type TxRunner struct {
	Calls int
}

var _ contract.ITransactionRunner = (*TxRunner)(nil)

func (r *TxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	r.Calls++
	return fn(ctx)
}

// ProductCache is a map-backed IProductCache.
type ProductCache struct {
	mu    sync.Mutex
	Items map[string]entity.Product
}

var _ contract.IProductCache = (*ProductCache)(nil)

func NewProductCache() *ProductCache {
	return &ProductCache{Items: map[string]entity.Product{}}
}

func (c *ProductCache) GetProduct(_ context.Context, id string) (*entity.Product, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.Items[id]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (c *ProductCache) SetProduct(_ context.Context, product *entity.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Items[product.ID] = *product
	return nil
}

func (c *ProductCache) InvalidateProduct(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.Items, id)
	return nil
}

// JWTService issues readable tokens of the form "<kind>|<userID>|<role>|<n>".
type JWTService struct {
	n atomic.Int64
}

func (j *JWTService) GenerateAccessToken(user *entity.User) (string, error) {
	return fmt.Sprintf("access|%s|%s|%d", user.ID, user.Role, j.n.Add(1)), nil
}

func (j *JWTService) GenerateRefreshToken(userID string, role entity.UserRole) (string, error) {
	return fmt.Sprintf("refresh|%s|%s|%d", userID, role, j.n.Add(1)), nil
}

func (j *JWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	return parse("access", token)
}

func (j *JWTService) ParseRefreshToken(token string) (*entity.Claims, error) {
	return parse("refresh", token)
}

func parse(kind, token string) (*entity.Claims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 4 || parts[0] != kind {
		return nil, errors.New("invalid token")
	}
	return &entity.Claims{UserID: parts[1], Role: entity.UserRole(parts[2])}, nil
}

type Logger struct{}

var _ usecasecontract.IAppLogger = Logger{}

func (Logger) Debugf(string, ...interface{})   {}
func (Logger) Infof(string, ...interface{})    {}
func (Logger) Warnf(string, ...interface{})    {}
func (Logger) Warningf(string, ...interface{}) {}
func (Logger) Errorf(string, ...interface{})   {}
func (Logger) Fatalf(string, ...interface{})   {}

type Config struct {
	Environment string
}

var _ usecasecontract.IConfigProvider = Config{}

func (c Config) GetProjectName() string { return "BazaarHub" }
func (c Config) GetEnvironment() string {
	if c.Environment == "" {
		return "dev"
	}
	return c.Environment
}
func (c Config) GetAppBaseURL() string { return "http://localhost:3000" }
func (c Config) GetAccountConfirmationURL() string {
	return "http://localhost:3000/api/v1/users/confirm-account"
}
func (c Config) GetResetPasswordURL() string {
	return "http://localhost:3000/api/v1/users/reset-password"
}
func (c Config) GetChangeEmailConfirmationURL() string {
	return "http://localhost:3000/api/v1/users/confirm-change-email"
}
func (c Config) GetDefaultAvatarURL() string { return "https://avatar.test/default.png" }
