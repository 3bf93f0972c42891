package account

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/acmehq/dashboard/services/billing-service/internal/domain"
)

type SignUpCmd struct {
	Name     string
	Email    string
	Password string
}

// SignUp creates a user with a bcrypt-hashed password. Duplicate email or
// name surfaces as a conflict error from the repo's constrained insert.
func (s *Service) SignUp(ctx context.Context, cmd SignUpCmd) (SignUpResult, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	if name == "" {
		return SignUpResult{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return SignUpResult{}, domain.ErrMissingField("email")
	}
	if len(cmd.Password) < 6 {
		return SignUpResult{}, domain.ErrInvalidField("password", "min length 6")
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return SignUpResult{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return SignUpResult{}, err
	}

	return SignUpResult{User: created}, nil
}
