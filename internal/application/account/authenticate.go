package account

import (
	"context"
	"errors"
	"strings"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

// Authenticate verifies credentials and issues an access token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration).
func (s *Service) Authenticate(ctx context.Context, email, password string) (AuthenticateResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return AuthenticateResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials; infrastructure
		// failures stay what they are.
		var de *domain.Error
		if errors.As(err, &de) && de.Kind == domain.KindNotFound {
			return AuthenticateResult{}, domain.ErrInvalidCredentials()
		}
		return AuthenticateResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return AuthenticateResult{}, domain.ErrInvalidCredentials()
	}

	access, err := s.signer.SignAccessToken(u.ID, s.accessTTL)
	if err != nil {
		return AuthenticateResult{}, domain.ErrTokenSignFailed(err)
	}

	return AuthenticateResult{
		User: u,
		Tokens: AuthTokens{
			AccessToken: access,
			TokenType:   "Bearer",
			ExpiresIn:   int64(s.accessTTL.Seconds()),
		},
	}, nil
}
