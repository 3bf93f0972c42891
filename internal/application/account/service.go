package account

import (
	"time"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner

	accessTTL time.Duration
}

type Config struct {
	AccessTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Service{
		users:     users,
		hasher:    hasher,
		signer:    signer,
		accessTTL: ttl,
	}
}

// AuthTokens is the common token output for handlers/DTO mapping.
type AuthTokens struct {
	AccessToken string
	ExpiresIn   int64  // seconds
	TokenType   string // "Bearer"
}

type SignUpResult struct {
	User domain.User
}

type AuthenticateResult struct {
	User   domain.User
	Tokens AuthTokens
}
